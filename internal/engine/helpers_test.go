package engine

import (
	"testing"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

func moveStrings(moves []draughts.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
	}
	return g
}

func mustPlay(t *testing.T, g *Game, from, to draughts.Square) draughts.Move {
	t.Helper()
	m, ok := g.Move(from, to)
	if !ok {
		t.Fatalf("Move(%d, %d) rejected in %s, legal: %v", from, to, g.FEN(), moveStrings(g.Moves()))
	}
	return m
}

func mustParse(t *testing.T, fen string) (draughts.Board, draughts.Colour) {
	t.Helper()
	b, turn, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return b, turn
}
