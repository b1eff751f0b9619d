package engine

import (
	"fmt"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

// forward reports whether a man may make a simple move in dir.
// White men move towards square 1, black men towards square 50.
func forward(p draughts.Piece, dir draughts.Direction) bool {
	switch p {
	case draughts.WhiteMan:
		return dir == draughts.NE || dir == draughts.NW
	case draughts.BlackMan:
		return dir == draughts.SE || dir == draughts.SW
	}
	panic(fmt.Sprintf("engine: direction check for non-man piece %v", p))
}

// SimpleMoves returns the non-capturing moves of the piece on cell.
// Men step one square forward; kings slide any distance over empty squares.
func SimpleMoves(b draughts.Board, cell int) []draughts.Move {
	piece := b.At(cell)
	if !piece.IsPiece() {
		return nil
	}

	limit := 0
	if piece.IsMan() {
		limit = 2
	}
	runs, ok := ScanDirections(b, cell, limit)
	if !ok {
		return nil
	}

	var moves []draughts.Move
	from := draughts.ToExternal(cell)
	for _, dir := range draughts.Directions {
		if piece.IsMan() && !forward(piece, dir) {
			continue
		}
		run := runs[dir]
		for dist := 1; dist < len(run) && run[dist] == draughts.Empty; dist++ {
			moves = append(moves, draughts.Move{
				From:  from,
				To:    draughts.ToExternal(cell + dist*dir.Step()),
				Piece: piece,
			})
		}
	}
	return moves
}
