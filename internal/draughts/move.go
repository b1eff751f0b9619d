package draughts

import (
	"fmt"
	"strings"
)

// Flags records what happened when a move was applied.
type Flags uint8

const (
	FlagCapture Flags = 1 << iota
	FlagPromotion

	FlagNormal Flags = 0
)

// String returns "n" for a normal move, otherwise "c", "p" or "cp".
func (f Flags) String() string {
	if f == FlagNormal {
		return "n"
	}
	var sb strings.Builder
	if f&FlagCapture != 0 {
		sb.WriteByte('c')
	}
	if f&FlagPromotion != 0 {
		sb.WriteByte('p')
	}
	return sb.String()
}

// Move is a candidate or applied move.
type Move struct {
	From  Square
	To    Square
	Flags Flags
	Piece Piece // The moving piece before the move

	// Jumps is the path of landed squares starting at From (captures only).
	Jumps []Square
	// Takes lists the captured squares in capture order, parallel to PiecesTaken.
	Takes       []Square
	PiecesTaken []Piece

	// Captures and PiecesCaptured mirror Takes once the move is applied.
	Captures       []Square
	PiecesCaptured []Piece
}

// IsCapture reports whether the move removes enemy pieces.
func (m Move) IsCapture() bool {
	return len(m.Takes) > 0 || len(m.Captures) > 0
}

// IsPromotion reports whether the move crowned the piece.
func (m Move) IsPromotion() bool {
	return m.Flags&FlagPromotion != 0
}

// String returns the compact notation, "32-28" or "27x16".
func (m Move) String() string {
	sep := '-'
	if m.IsCapture() {
		sep = 'x'
	}
	return fmt.Sprintf("%d%c%d", m.From, sep, m.To)
}

// Clone returns a deep copy that shares no slices with m.
func (m Move) Clone() Move {
	c := m
	c.Jumps = cloneSlice(m.Jumps)
	c.Takes = cloneSlice(m.Takes)
	c.PiecesTaken = cloneSlice(m.PiecesTaken)
	c.Captures = cloneSlice(m.Captures)
	c.PiecesCaptured = cloneSlice(m.PiecesCaptured)
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// MoveRecord is the verbose history form of a move.
type MoveRecord struct {
	From           Square   `json:"from"`
	To             Square   `json:"to"`
	Flags          string   `json:"flags"`
	Piece          string   `json:"piece"`
	Captures       []Square `json:"captures"`
	PiecesCaptured []string `json:"piecesCaptured"`
	Jumps          []Square `json:"jumps"`
	Takes          []Square `json:"takes"`
	PiecesTaken    []string `json:"piecesTaken"`
}

// Record converts the move into its verbose form. Slices are never nil.
func (m Move) Record() MoveRecord {
	return MoveRecord{
		From:           m.From,
		To:             m.To,
		Flags:          m.Flags.String(),
		Piece:          m.Piece.String(),
		Captures:       append([]Square{}, m.Captures...),
		PiecesCaptured: pieceStrings(m.PiecesCaptured),
		Jumps:          append([]Square{}, m.Jumps...),
		Takes:          append([]Square{}, m.Takes...),
		PiecesTaken:    pieceStrings(m.PiecesTaken),
	}
}

func pieceStrings(pieces []Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.String()
	}
	return out
}
