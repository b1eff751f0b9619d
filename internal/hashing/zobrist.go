// Package hashing provides position hashing and transposition tables for draughts.
package hashing

import (
	"sync"

	"github.com/lgbarn/draughts-go/internal/draughts"
)

var (
	zobristOnce sync.Once

	zobristPieces [draughts.NumPieceValues][draughts.BoardCells]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for p := draughts.WhiteMan; p < draughts.NumPieceValues; p++ {
			for cell := 0; cell < draughts.BoardCells; cell++ {
				if !draughts.IsOffBoard(cell) {
					zobristPieces[p][cell] = next()
				}
			}
		}
		zobristSide = next()
	})
}

// Zobrist computes the hash of a position. Empty and sentinel cells contribute nothing,
// and the side key is mixed in when Black is to move.
func Zobrist(b draughts.Board, turn draughts.Colour) uint64 {
	initZobrist()

	var h uint64
	for cell, p := range b {
		if p.IsPiece() {
			h ^= zobristPieces[p][cell]
		}
	}
	if turn == draughts.Black {
		h ^= zobristSide
	}
	return h
}
