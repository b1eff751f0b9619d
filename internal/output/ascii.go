package output

import (
	"strings"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

const boardBorder = "+------------------------------+\n"

var unicodePieces = map[draughts.Piece]string{
	draughts.WhiteMan:  "\u26C0",
	draughts.WhiteKing: "\u26C1",
	draughts.BlackMan:  "\u26C2",
	draughts.BlackKing: "\u26C3",
	draughts.Empty:     "  ",
}

// ASCII renders the board as a framed text diagram, square 1 top left.
// With unicode set, pieces are drawn with draughts glyphs.
func ASCII(b draughts.Board, unicode bool) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(boardBorder)

	sq := draughts.FirstSquare
	for row := 1; row <= 10; row++ {
		sb.WriteString("|\t")
		if row%2 != 0 {
			sb.WriteString("  ")
		}
		for col := 1; col <= 10; col++ {
			if col%2 == 0 {
				sb.WriteString("  ")
				sq++
				continue
			}
			sb.WriteString(" ")
			sb.WriteString(pieceGlyph(b.Get(sq), unicode))
		}
		if row%2 == 0 {
			sb.WriteString("  ")
		}
		sb.WriteString("\t|\n")
	}
	sb.WriteString(boardBorder)
	return sb.String()
}

func pieceGlyph(p draughts.Piece, unicode bool) string {
	if unicode {
		if s, ok := unicodePieces[p]; ok {
			return s
		}
	}
	return p.String()
}
