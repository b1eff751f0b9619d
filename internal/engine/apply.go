package engine

import "github.com/lgbarn/draughts-go/internal/draughts"

// ApplyMove plays a resolved legal move on b and returns it as applied:
// Piece holds the mover before the move, Flags records capture and promotion,
// and Captures lists the removed squares.
// The origin is cleared before captures are removed and the destination written,
// so a capture ending on its own origin square leaves the piece in place.
func ApplyMove(b *draughts.Board, m draughts.Move) draughts.Move {
	applied := m.Clone()
	applied.Piece = b.Get(m.From)
	applied.Flags = draughts.FlagNormal

	b.Set(m.From, draughts.Empty)

	if len(m.Takes) > 0 {
		applied.Flags |= draughts.FlagCapture
		applied.Captures = append([]draughts.Square(nil), m.Takes...)
		applied.PiecesCaptured = make([]draughts.Piece, len(m.Takes))
		for i, sq := range m.Takes {
			applied.PiecesCaptured[i] = b.Get(sq)
			b.Set(sq, draughts.Empty)
		}
	}

	landed := applied.Piece
	if landed.IsMan() && m.To.IsPromotionSquare(landed.Colour()) {
		landed = landed.Promote()
		applied.Flags |= draughts.FlagPromotion
	}
	b.Set(m.To, landed)

	return applied
}

// UndoMove reverses a move returned by ApplyMove.
func UndoMove(b *draughts.Board, m draughts.Move) {
	b.Set(m.To, draughts.Empty)
	for i, sq := range m.Captures {
		b.Set(sq, m.PiecesCaptured[i])
	}
	b.Set(m.From, m.Piece)
}
