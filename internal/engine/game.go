package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
)

// Game is a draughts game: the position, side to move, move number,
// the history of played moves and the header tags.
// A Game is not safe for concurrent use.
type Game struct {
	board      draughts.Board
	turn       draughts.Colour
	moveNumber int
	history    []draughts.HistoryEntry
	header     draughts.Header
	cfg        *config.Config
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfig sets the configuration used for diagnostics.
func WithConfig(cfg *config.Config) GameOption {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// NewGame creates a game at the starting position.
func NewGame(opts ...GameOption) *Game {
	g := &Game{cfg: config.NewConfig()}
	for _, opt := range opts {
		opt(g)
	}
	g.reset(draughts.InitialBoard(), draughts.White)
	return g
}

// NewGameFromFEN creates a game at the position described by fen.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	g := NewGame(opts...)
	if err := g.Load(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// reset installs a position with an empty history and header.
func (g *Game) reset(b draughts.Board, turn draughts.Colour) {
	g.board = b
	g.turn = turn
	g.moveNumber = 1
	g.history = nil
	g.header = draughts.Header{}
	g.updateSetup()
}

// Load replaces the game with the position in fen. On error the game is unchanged.
func (g *Game) Load(fen string) error {
	b, turn, err := ParseFEN(fen)
	if err != nil {
		g.logf(2, "Cannot load FEN %q: %v.\n", fen, err)
		return err
	}
	g.reset(b, turn)
	return nil
}

// Reset returns the game to the starting position.
func (g *Game) Reset() {
	g.reset(draughts.InitialBoard(), draughts.White)
}

// Clear empties the board, with White to move.
func (g *Game) Clear() {
	g.reset(draughts.NewBoard(), draughts.White)
}

// updateSetup keeps the SetUp and FEN tags in line with the starting position.
// It only acts before the first move.
func (g *Game) updateSetup() {
	if len(g.history) > 0 {
		return
	}
	if g.turn == draughts.White && g.board == draughts.InitialBoard() {
		delete(g.header, draughts.SetUpTag)
		delete(g.header, draughts.FENTag)
		return
	}
	g.header[draughts.SetUpTag] = "1"
	g.header[draughts.FENTag] = g.FEN()
}

// Turn returns the side to move.
func (g *Game) Turn() draughts.Colour {
	return g.turn
}

// MoveNumber returns the full move number, incremented after each Black move.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// Board returns a copy of the current position.
func (g *Game) Board() draughts.Board {
	return g.board
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	return GenerateFEN(g.board, g.turn)
}

// Position returns the 51 character position string.
func (g *Game) Position() string {
	return g.board.External(g.turn)
}

// Get returns the piece on sq, Empty for an empty square and Off for an invalid square.
func (g *Game) Get(sq draughts.Square) draughts.Piece {
	return g.board.Get(sq)
}

// Put places a piece on sq, replacing what was there.
func (g *Game) Put(p draughts.Piece, sq draughts.Square) bool {
	if !p.IsPiece() || !sq.Valid() {
		return false
	}
	g.board.Set(sq, p)
	g.updateSetup()
	return true
}

// Remove takes the piece off sq and returns it.
// It returns Empty if the square was empty and Off if sq is invalid.
func (g *Game) Remove(sq draughts.Square) draughts.Piece {
	p := g.board.Get(sq)
	if p.IsPiece() {
		g.board.Set(sq, draughts.Empty)
		g.updateSetup()
	}
	return p
}

// Moves returns the legal moves of the side to move.
func (g *Game) Moves() []draughts.Move {
	return LegalMoves(g.board, g.turn)
}

// MovesFrom returns the legal moves starting on sq.
// A piece with a shorter capture than the longest available has none.
func (g *Game) MovesFrom(sq draughts.Square) []draughts.Move {
	var moves []draughts.Move
	for _, m := range g.Moves() {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// GameOver reports whether the side to move has no legal move.
func (g *Game) GameOver() bool {
	return !HasLegalMoves(g.board, g.turn)
}

// Move plays the first legal move from one square to another.
// It returns the applied move and false if no legal move matches.
func (g *Game) Move(from, to draughts.Square) (draughts.Move, bool) {
	return g.MakeMove(draughts.Move{From: from, To: to})
}

// MakeMove plays the legal move matching m. If m lists captured squares,
// only a legal move taking exactly those squares in that order matches;
// this selects between capture paths with the same ends.
func (g *Game) MakeMove(m draughts.Move) (draughts.Move, bool) {
	for _, legal := range g.Moves() {
		if legal.From != m.From || legal.To != m.To {
			continue
		}
		if len(m.Takes) > 0 && !slices.Equal(legal.Takes, m.Takes) {
			continue
		}
		return g.play(legal), true
	}
	g.logf(2, "Illegal move %s for %s in %s.\n", m, g.turn, g.FEN())
	return draughts.Move{}, false
}

func (g *Game) play(m draughts.Move) draughts.Move {
	applied := ApplyMove(&g.board, m)
	g.history = append(g.history, draughts.HistoryEntry{
		Move:       applied,
		Turn:       g.turn,
		MoveNumber: g.moveNumber,
	})
	if g.turn == draughts.Black {
		g.moveNumber++
	}
	g.turn = g.turn.Opposite()
	return applied.Clone()
}

// Undo takes back the last move. It returns false when there is nothing to undo.
func (g *Game) Undo() (draughts.Move, bool) {
	if len(g.history) == 0 {
		g.logf(2, "Nothing to undo.\n")
		return draughts.Move{}, false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	UndoMove(&g.board, last.Move)
	g.turn = last.Turn
	g.moveNumber = last.MoveNumber
	return last.Move, true
}

// History returns the played moves in compact notation.
func (g *Game) History() []string {
	moves := make([]string, len(g.history))
	for i, h := range g.history {
		moves[i] = h.Move.String()
	}
	return moves
}

// HistoryVerbose returns the played moves as records.
func (g *Game) HistoryVerbose() []draughts.MoveRecord {
	records := make([]draughts.MoveRecord, len(g.history))
	for i, h := range g.history {
		records[i] = h.Move.Record()
	}
	return records
}

// HistoryEntries returns a copy of the history with the state before each move.
func (g *Game) HistoryEntries() []draughts.HistoryEntry {
	entries := make([]draughts.HistoryEntry, len(g.history))
	for i, h := range g.history {
		entries[i] = h
		entries[i].Move = h.Move.Clone()
	}
	return entries
}

// Header returns a copy of the header tags.
func (g *Game) Header() draughts.Header {
	return g.header.Clone()
}

// SetHeader merges tags into the header and returns the result.
func (g *Game) SetHeader(tags map[string]string) draughts.Header {
	for k, v := range tags {
		g.header[k] = v
	}
	return g.Header()
}

// Config returns the configuration of the game.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Clone returns an independent copy of the game sharing only its configuration.
func (g *Game) Clone() *Game {
	c := *g
	c.history = g.HistoryEntries()
	c.header = g.header.Clone()
	return &c
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity >= level && g.cfg.LogFile != nil {
		fmt.Fprintf(g.cfg.LogFile, format, args...)
	}
}
