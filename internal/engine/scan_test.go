package engine

import (
	"testing"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

func TestScanDirections(t *testing.T) {
	b := draughts.NewBoard()
	cell := draughts.ToInternal(27) // internal 29

	runs, ok := ScanDirections(b, cell, 0)
	if !ok {
		t.Fatal("ScanDirections() ok = false for a playable cell")
	}

	want := map[draughts.Direction]int{
		draughts.NE: 6, // 27, 22, 18, 13, 9, 4
		draughts.SE: 5, // 27, 32, 38, 43, 49
		draughts.SW: 3, // 27, 31, 36
		draughts.NW: 3, // 27, 21, 16
	}
	for dir, n := range want {
		if got := len(runs[dir]); got != n {
			t.Errorf("len(runs[%v]) = %d, want %d", dir, got, n)
		}
	}
}

func TestScanDirections_Contents(t *testing.T) {
	b, _ := mustParse(t, "W:W27,32:B22,K18")
	runs, _ := ScanDirections(b, draughts.ToInternal(27), 0)

	ne := runs[draughts.NE]
	wantNE := []draughts.Piece{draughts.WhiteMan, draughts.BlackMan, draughts.BlackKing, draughts.Empty, draughts.Empty, draughts.Empty}
	if len(ne) != len(wantNE) {
		t.Fatalf("len(NE) = %d, want %d", len(ne), len(wantNE))
	}
	for i := range wantNE {
		if ne[i] != wantNE[i] {
			t.Errorf("NE[%d] = %v, want %v", i, ne[i], wantNE[i])
		}
	}
	if got := runs[draughts.SE][1]; got != draughts.WhiteMan {
		t.Errorf("SE[1] = %v, want w", got)
	}
}

func TestScanDirections_Limit(t *testing.T) {
	runs, _ := ScanDirections(draughts.NewBoard(), draughts.ToInternal(27), 2)
	for _, dir := range draughts.Directions {
		if got := len(runs[dir]); got != 2 {
			t.Errorf("len(runs[%v]) = %d, want 2", dir, got)
		}
	}
}

func TestScanDirections_OffBoard(t *testing.T) {
	for _, cell := range []int{0, 11, 55, -3, 60} {
		if _, ok := ScanDirections(draughts.NewBoard(), cell, 0); ok {
			t.Errorf("ScanDirections(%d) ok = true, want false", cell)
		}
	}
}
