// Package engine implements the rules of international draughts:
// move generation, forced longest capture, move application and FEN.
package engine

import "github.com/lgbarn/draughts-go/internal/draughts"

// Runs holds the cells seen from one cell along each diagonal, indexed by Direction.
// Every run starts with the content of the origin cell.
type Runs [4][]draughts.Piece

// ScanDirections collects the contents along the four diagonals from cell.
// A run stops at the board edge or after maxLength cells; maxLength <= 0 means no limit.
// It reports false when cell is off the board.
func ScanDirections(b draughts.Board, cell int, maxLength int) (Runs, bool) {
	var runs Runs
	if draughts.IsOffBoard(cell) {
		return runs, false
	}
	for _, dir := range draughts.Directions {
		step := dir.Step()
		run := make([]draughts.Piece, 0, 10)
		for idx := cell; !draughts.IsOffBoard(idx); idx += step {
			if maxLength > 0 && len(run) == maxLength {
				break
			}
			run = append(run, b.At(idx))
		}
		runs[dir] = run
	}
	return runs, true
}
