package draughts

import (
	"fmt"
	"strings"

	"github.com/lgbarn/draughts-go/internal/errors"
)

// Board holds the 56 internal cells of a position.
// Cells 0, 11, 22, 33, 44 and 55 are Off; the rest map to squares 1-50.
type Board [BoardCells]Piece

// NewBoard creates a board with every playable square empty.
func NewBoard() Board {
	var b Board
	for cell := range b {
		if IsOffBoard(cell) {
			b[cell] = Off
		} else {
			b[cell] = Empty
		}
	}
	return b
}

// InitialBoard returns the standard starting layout:
// black men on 1-20 and white men on 31-50.
func InitialBoard() Board {
	b := NewBoard()
	for sq := Square(1); sq <= 20; sq++ {
		b.Set(sq, BlackMan)
	}
	for sq := Square(31); sq <= LastSquare; sq++ {
		b.Set(sq, WhiteMan)
	}
	return b
}

// Get returns the piece on an external square, or Off for an invalid square.
func (b Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Off
	}
	return b[ToInternal(sq)]
}

// Set places a piece on an external square. Invalid squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[ToInternal(sq)] = p
	}
}

// At returns the content of an internal cell, or Off outside the array.
func (b Board) At(cell int) Piece {
	if cell < 0 || cell >= BoardCells {
		return Off
	}
	return b[cell]
}

// SetAt writes an internal cell. Sentinels and out of range cells are ignored.
func (b *Board) SetAt(cell int, p Piece) {
	if !IsOffBoard(cell) {
		b[cell] = p
	}
}

// Count returns the number of pieces of the given colour.
func (b Board) Count(c Colour) int {
	n := 0
	for _, p := range b {
		if p.IsPiece() && p.Colour() == c {
			n++
		}
	}
	return n
}

// Squares returns the squares occupied by pieces of colour c, ascending.
func (b Board) Squares(c Colour) []Square {
	var squares []Square
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		if p := b.Get(sq); p.IsPiece() && p.Colour() == c {
			squares = append(squares, sq)
		}
	}
	return squares
}

// String returns the 56 character internal form, one symbol per cell.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardCells)
	for _, p := range b {
		sb.WriteByte(p.Symbol())
	}
	return sb.String()
}

// External returns the 51 character position string:
// the side to move letter followed by squares 1 to 50.
func (b Board) External(turn Colour) string {
	var sb strings.Builder
	sb.Grow(NumSquares + 1)
	sb.WriteByte(turn.Letter())
	for sq := FirstSquare; sq <= LastSquare; sq++ {
		sb.WriteByte(b.Get(sq).Symbol())
	}
	return sb.String()
}

// BoardFromExternal parses a 51 character position string.
func BoardFromExternal(s string) (Board, Colour, error) {
	if len(s) != NumSquares+1 {
		return Board{}, NoColour, fmt.Errorf("%d characters: %w", len(s), errors.ErrInvalidPosition)
	}
	turn, ok := ParseColour(s[0])
	if !ok {
		return Board{}, NoColour, fmt.Errorf("side to move %q: %w", s[0], errors.ErrInvalidPosition)
	}
	b := NewBoard()
	for i := 1; i < len(s); i++ {
		p, ok := parseCell(s[i])
		if !ok || p == Off {
			return Board{}, NoColour, fmt.Errorf("square %d symbol %q: %w", i, s[i], errors.ErrInvalidPosition)
		}
		b.Set(Square(i), p)
	}
	return b, turn, nil
}

// BoardFromInternal parses the 56 character internal form.
// Sentinel cells must hold '-' and playable cells must not.
func BoardFromInternal(s string) (Board, error) {
	if len(s) != BoardCells {
		return Board{}, fmt.Errorf("%d characters: %w", len(s), errors.ErrInvalidPosition)
	}
	var b Board
	for cell := 0; cell < BoardCells; cell++ {
		p, ok := parseCell(s[cell])
		if !ok || (p == Off) != IsOffBoard(cell) {
			return Board{}, fmt.Errorf("cell %d symbol %q: %w", cell, s[cell], errors.ErrInvalidPosition)
		}
		b[cell] = p
	}
	return b, nil
}
