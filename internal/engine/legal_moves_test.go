package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/testutil"
)

const forcedCaptureFEN = testutil.ForcedCaptureFEN

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "white opening moves",
			fen:  DefaultFEN,
			want: []string{"31-27", "31-26", "32-28", "32-27", "33-29", "33-28", "34-30", "34-29", "35-30"},
		},
		{
			name: "black opening moves",
			fen:  "B:W31-50:B1-20",
			want: []string{"16-21", "17-22", "17-21", "18-23", "18-22", "19-24", "19-23", "20-25", "20-24"},
		},
		{
			name: "capture is forced",
			fen:  forcedCaptureFEN,
			want: []string{"30x19"},
		},
		{
			name: "man captures backwards",
			fen:  "W:W28:B33",
			want: []string{"28x39"},
		},
		{
			name: "longest capture wins over a shorter one",
			fen:  testutil.LongestCaptureFEN,
			want: []string{"32x12"},
		},
		{
			name: "king captures with every landing square",
			fen:  "W:WK46:B37",
			want: []string{"46x32", "46x28", "46x23", "46x19", "46x14", "46x10", "46x5"},
		},
		{
			name: "king landing must continue the capture",
			fen:  "W:WK46:B18,37",
			want: []string{"46x12", "46x7", "46x1"},
		},
		{
			name: "unknown side to move has no moves",
			fen:  "?:W31-50:B1-20",
			want: []string{},
		},
		{
			name: "blocked side has no moves",
			fen:  "W:W46:B41,37",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, turn := mustParse(t, tt.fen)
			got := moveStrings(LegalMoves(b, turn))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves(%s) mismatch (-want +got):\n%s", tt.fen, diff)
			}
		})
	}
}

func TestLegalMoves_KingSlides(t *testing.T) {
	b, turn := mustParse(t, "W:WK28:B1")
	moves := LegalMoves(b, turn)
	if len(moves) != 17 {
		t.Fatalf("len(LegalMoves) = %d, want 17: %v", len(moves), moveStrings(moves))
	}
	// NE ray comes first, nearest square first.
	want := []string{"28-23", "28-19", "28-14", "28-10", "28-5"}
	if diff := cmp.Diff(want, moveStrings(moves[:5])); diff != "" {
		t.Errorf("first moves mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMoves_CaptureDetails(t *testing.T) {
	b, turn := mustParse(t, testutil.LongestCaptureFEN)
	moves := LegalMoves(b, turn)
	if len(moves) != 1 {
		t.Fatalf("len(LegalMoves) = %d, want 1", len(moves))
	}

	want := draughts.Move{
		From:           32,
		To:             12,
		Flags:          draughts.FlagCapture,
		Piece:          draughts.WhiteMan,
		Jumps:          []draughts.Square{32, 21, 12},
		Takes:          []draughts.Square{27, 17},
		PiecesTaken:    []draughts.Piece{draughts.BlackMan, draughts.BlackMan},
		Captures:       []draughts.Square{27, 17},
		PiecesCaptured: []draughts.Piece{draughts.BlackMan, draughts.BlackMan},
	}
	if diff := cmp.Diff(want, moves[0]); diff != "" {
		t.Errorf("capture mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMoves_KingCircuit(t *testing.T) {
	b, turn := mustParse(t, testutil.KingCircuitFEN)
	moves := LegalMoves(b, turn)
	if len(moves) != 10 {
		t.Fatalf("len(LegalMoves) = %d, want 10: %v", len(moves), moveStrings(moves))
	}

	returns := 0
	for _, m := range moves {
		if len(m.Takes) != 4 {
			t.Errorf("%s takes %d pieces, want 4", m, len(m.Takes))
		}
		if m.From == m.To {
			returns++
		}
	}
	if returns != 2 {
		t.Errorf("%d sequences end on the origin square, want 2", returns)
	}
}

func TestLongestCaptures(t *testing.T) {
	short := draughts.Move{From: 45, To: 34, Jumps: []draughts.Square{45, 34}}
	long := draughts.Move{From: 32, To: 12, Jumps: []draughts.Square{32, 21, 12}}
	none := draughts.Move{From: 31, To: 31, Jumps: []draughts.Square{31}}

	tests := []struct {
		name       string
		candidates []draughts.Move
		want       []draughts.Move
	}{
		{"no captures", []draughts.Move{none}, nil},
		{"keeps the longest", []draughts.Move{short, long, none}, []draughts.Move{long}},
		{"keeps ties", []draughts.Move{short, short}, []draughts.Move{short, short}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, LongestCaptures(tt.candidates)); diff != "" {
				t.Errorf("LongestCaptures() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCapturesAt_NoCapture(t *testing.T) {
	b := draughts.InitialBoard()
	cell := draughts.ToInternal(32)
	moves := CapturesAt(b, cell)
	if len(moves) != 1 {
		t.Fatalf("len(CapturesAt) = %d, want 1", len(moves))
	}
	if diff := cmp.Diff([]draughts.Square{32}, moves[0].Jumps); diff != "" {
		t.Errorf("Jumps mismatch (-want +got):\n%s", diff)
	}
	if len(moves[0].Takes) != 0 {
		t.Errorf("Takes = %v, want none", moves[0].Takes)
	}
}

func TestCapturesAt_DoesNotMutate(t *testing.T) {
	b, _ := mustParse(t, testutil.KingCircuitFEN)
	before := b
	CapturesAt(b, draughts.ToInternal(28))
	if b != before {
		t.Error("CapturesAt() changed the board")
	}
}

func TestForwardPanicsForKings(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("forward(WhiteKing) did not panic")
		}
	}()
	forward(draughts.WhiteKing, draughts.NE)
}
