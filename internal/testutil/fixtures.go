package testutil

import "github.com/lgbarn/draughts-go/internal/draughts"

// Positions used across package tests.
const (
	// EmptyFEN is an empty board with White to move.
	EmptyFEN = "W:W:B"

	// ForcedCaptureFEN is an opening where White must take 24 with 30x19.
	ForcedCaptureFEN = "W:W30,31,32,33,34,35,36,37,38,39,40,41,42,43,44,45,46,47,48,49,50:B1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,20,24"

	// LongestCaptureFEN offers a single and a double capture; only 32x12 is legal.
	LongestCaptureFEN = "W:W32,45:B3,17,27,40"

	// KingCircuitFEN lets the king on 28 take four men and return to its square.
	KingCircuitFEN = "W:WK28:B12,13,22,23"

	// CapturePromotionFEN has a white man capture onto the back row.
	CapturePromotionFEN = "W:W12:B7,40"
)

// Squares is shorthand for a list of squares in tests.
func Squares(n ...int) []draughts.Square {
	out := make([]draughts.Square, len(n))
	for i, v := range n {
		out[i] = draughts.Square(v)
	}
	return out
}
