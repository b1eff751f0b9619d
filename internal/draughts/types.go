// Package draughts provides core international draughts types and operations.
package draughts

import "fmt"

// Colour represents the colour of a piece or the side to move.
type Colour int

const (
	Black Colour = iota
	White
	NoColour // Side to move unknown ('?' in FEN)
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Letter returns the FEN letter for a colour.
func (c Colour) Letter() byte {
	switch c {
	case White:
		return 'W'
	case Black:
		return 'B'
	}
	return '?'
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// ParseColour converts a FEN side letter into a Colour.
func ParseColour(letter byte) (Colour, bool) {
	switch letter {
	case 'W':
		return White, true
	case 'B':
		return Black, true
	case '?':
		return NoColour, true
	}
	return NoColour, false
}

// Piece is the content of one board cell.
type Piece uint8

const (
	Off   Piece = iota // Off the board (sentinel cell)
	Empty              // Empty playable square
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
	NumPieceValues
)

var pieceSymbols = [NumPieceValues]byte{'-', '0', 'w', 'W', 'b', 'B'}

// Symbol returns the single character used for a piece in position strings.
func (p Piece) Symbol() byte {
	if p < NumPieceValues {
		return pieceSymbols[p]
	}
	return '?'
}

// String returns the symbol of the piece as a string.
func (p Piece) String() string {
	return string(p.Symbol())
}

// IsPiece reports whether p is a man or a king of either colour.
func (p Piece) IsPiece() bool {
	return p >= WhiteMan && p < NumPieceValues
}

// IsMan reports whether p is an unpromoted piece.
func (p Piece) IsMan() bool {
	return p == WhiteMan || p == BlackMan
}

// IsKing reports whether p is a promoted piece.
func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// Colour returns the owner of the piece, or NoColour for Off and Empty.
func (p Piece) Colour() Colour {
	switch p {
	case WhiteMan, WhiteKing:
		return White
	case BlackMan, BlackKing:
		return Black
	}
	return NoColour
}

// Promote returns the king of the same colour. Kings and non-pieces are unchanged.
func (p Piece) Promote() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	}
	return p
}

// Man returns the man of the given colour.
func Man(c Colour) Piece {
	if c == White {
		return WhiteMan
	}
	return BlackMan
}

// King returns the king of the given colour.
func King(c Colour) Piece {
	if c == White {
		return WhiteKing
	}
	return BlackKing
}

// ParsePiece converts a piece symbol (w, W, b, B) into a Piece.
func ParsePiece(symbol byte) (Piece, bool) {
	switch symbol {
	case 'w':
		return WhiteMan, true
	case 'W':
		return WhiteKing, true
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	}
	return Empty, false
}

// parseCell accepts every symbol that can appear in a position string.
func parseCell(symbol byte) (Piece, bool) {
	switch symbol {
	case '0':
		return Empty, true
	case '-':
		return Off, true
	}
	return ParsePiece(symbol)
}

// Direction is one of the four diagonal directions.
type Direction int

const (
	NoDirection Direction = iota - 1
	NE
	SE
	SW
	NW
)

// Directions lists the diagonals in scan order.
var Directions = [4]Direction{NE, SE, SW, NW}

// Step returns the internal cell offset for one step in the direction.
func (d Direction) Step() int {
	switch d {
	case NE:
		return -5
	case SE:
		return 6
	case SW:
		return 5
	case NW:
		return -6
	}
	panic(fmt.Sprintf("draughts: step of invalid direction %d", int(d)))
}

// Opposite returns the reverse diagonal.
func (d Direction) Opposite() Direction {
	switch d {
	case NE:
		return SW
	case SE:
		return NW
	case SW:
		return NE
	case NW:
		return SE
	}
	return NoDirection
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	}
	return "None"
}

// Square is an external square number, 1 to 50.
type Square int

// Constants for board dimensions and numbering.
const (
	FirstSquare Square = 1
	LastSquare  Square = 50
	NumSquares         = 50
	BoardCells         = 56 // Internal cells including sentinels
	RowLength          = 5  // Playable squares per row
)

// Valid reports whether s is a playable square.
func (s Square) Valid() bool {
	return s >= FirstSquare && s <= LastSquare
}

// Row returns the board row of the square, 1 at the top (Black's side).
func (s Square) Row() int {
	return (int(s)-1)/RowLength + 1
}

// IsPromotionSquare reports whether a man of colour c is promoted on s.
func (s Square) IsPromotionSquare(c Colour) bool {
	switch c {
	case White:
		return s.Row() == 1
	case Black:
		return s.Row() == 10
	}
	return false
}

// ToInternal converts an external square number to its internal cell.
func ToInternal(s Square) int {
	n := int(s)
	return n + (n-1)/10
}

// ToExternal converts an internal cell to its external square number.
func ToExternal(cell int) Square {
	return Square(cell - (cell-1)/11)
}

// IsOffBoard reports whether an internal cell is a sentinel or out of range.
func IsOffBoard(cell int) bool {
	return cell < 0 || cell >= BoardCells || cell%11 == 0
}
