package engine

import "github.com/lgbarn/draughts-go/internal/draughts"

// LongestCaptures keeps the candidates with the longest jump path.
// It returns nil when no candidate captures at least once.
func LongestCaptures(candidates []draughts.Move) []draughts.Move {
	longest := 0
	for _, m := range candidates {
		if len(m.Jumps) > longest {
			longest = len(m.Jumps)
		}
	}
	if longest < 2 {
		return nil
	}

	var best []draughts.Move
	for _, m := range candidates {
		if len(m.Jumps) == longest {
			best = append(best, m)
		}
	}
	return best
}

// Captures returns the captures turn must choose from: the longest sequences
// over all of its pieces. The result is empty when turn cannot capture.
func Captures(b draughts.Board, turn draughts.Colour) []draughts.Move {
	var candidates []draughts.Move
	for cell := range b {
		if p := b[cell]; p.IsPiece() && p.Colour() == turn {
			candidates = append(candidates, CapturesAt(b, cell)...)
		}
	}

	moves := LongestCaptures(candidates)
	for i := range moves {
		moves[i].Flags |= draughts.FlagCapture
		moves[i].Captures = append([]draughts.Square(nil), moves[i].Takes...)
		moves[i].PiecesCaptured = append([]draughts.Piece(nil), moves[i].PiecesTaken...)
	}
	return moves
}

// LegalMoves returns every legal move of turn in a fixed order:
// ascending origin cell, then NE, SE, SW, NW, then nearest landing first.
// If any capture exists only the longest captures are legal.
// NoColour has no moves.
func LegalMoves(b draughts.Board, turn draughts.Colour) []draughts.Move {
	if turn == draughts.NoColour {
		return nil
	}
	if moves := Captures(b, turn); len(moves) > 0 {
		return moves
	}

	var moves []draughts.Move
	for cell := range b {
		if p := b[cell]; p.IsPiece() && p.Colour() == turn {
			moves = append(moves, SimpleMoves(b, cell)...)
		}
	}
	return moves
}

// HasLegalMoves reports whether turn can move at all.
func HasLegalMoves(b draughts.Board, turn draughts.Colour) bool {
	return len(LegalMoves(b, turn)) > 0
}
