package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

// DefaultFEN is the FEN string for the standard starting position.
const DefaultFEN = "W:W31-50:B1-20"

// ParseFEN validates fen and decodes it into a board and side to move.
// Squares above 50 pass validation and are ignored.
func ParseFEN(fen string) (draughts.Board, draughts.Colour, error) {
	normalized, err := ValidateFEN(fen)
	if err != nil {
		return draughts.Board{}, draughts.NoColour, err
	}

	tokens := strings.Split(normalized, ":")
	turn, _ := draughts.ParseColour(tokens[0][0])
	b := draughts.NewBoard()

	for _, token := range tokens[1:3] {
		if token == "" {
			continue
		}
		colour, _ := draughts.ParseColour(token[0])
		placeSquares(&b, colour, token[1:])
	}
	return b, turn, nil
}

// placeSquares writes the pieces of one side from a validated square list.
func placeSquares(b *draughts.Board, colour draughts.Colour, list string) {
	if list == "" {
		return
	}
	for _, entry := range strings.Split(list, ",") {
		piece := draughts.Man(colour)
		if strings.HasPrefix(entry, "K") {
			piece = draughts.King(colour)
			entry = entry[1:]
		}
		first, last := entry, entry
		if r := strings.Split(entry, "-"); len(r) == 2 {
			first, last = r[0], r[1]
		}
		lo, _ := strconv.Atoi(first)
		hi, _ := strconv.Atoi(last)
		for sq := lo; sq <= hi; sq++ {
			b.Set(draughts.Square(sq), piece)
		}
	}
}

// GenerateFEN encodes a position as "T:W<list>:B<list>" with ascending squares
// and kings prefixed by K.
func GenerateFEN(b draughts.Board, turn draughts.Colour) string {
	var sb strings.Builder
	sb.WriteByte(turn.Letter())
	for _, side := range []draughts.Colour{draughts.White, draughts.Black} {
		sb.WriteByte(':')
		sb.WriteByte(side.Letter())
		for i, sq := range b.Squares(side) {
			if i > 0 {
				sb.WriteByte(',')
			}
			if b.Get(sq).IsKing() {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(int(sq)))
		}
	}
	return sb.String()
}
