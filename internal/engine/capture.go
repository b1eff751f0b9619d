package engine

import "github.com/lgbarn/draughts-go/internal/draughts"

// chain is a capture sequence under construction, in internal cells.
type chain struct {
	jumps  []int
	takes  []int
	pieces []draughts.Piece
}

func (c chain) extend(landing, take int, taken draughts.Piece) chain {
	next := chain{
		jumps:  make([]int, len(c.jumps), len(c.jumps)+1),
		takes:  make([]int, len(c.takes), len(c.takes)+1),
		pieces: make([]draughts.Piece, len(c.pieces), len(c.pieces)+1),
	}
	copy(next.jumps, c.jumps)
	copy(next.takes, c.takes)
	copy(next.pieces, c.pieces)
	next.jumps = append(next.jumps, landing)
	next.takes = append(next.takes, take)
	next.pieces = append(next.pieces, taken)
	return next
}

func (c chain) hasTaken(cell int) bool {
	for _, t := range c.takes {
		if t == cell {
			return true
		}
	}
	return false
}

func (c chain) toMove(piece draughts.Piece) draughts.Move {
	m := draughts.Move{
		From:  draughts.ToExternal(c.jumps[0]),
		To:    draughts.ToExternal(c.jumps[len(c.jumps)-1]),
		Piece: piece,
		Jumps: make([]draughts.Square, len(c.jumps)),
	}
	for i, cell := range c.jumps {
		m.Jumps[i] = draughts.ToExternal(cell)
	}
	if len(c.takes) > 0 {
		m.Takes = make([]draughts.Square, len(c.takes))
		for i, cell := range c.takes {
			m.Takes[i] = draughts.ToExternal(cell)
		}
		m.PiecesTaken = append([]draughts.Piece(nil), c.pieces...)
	}
	return m
}

func isEnemy(mover, p draughts.Piece) bool {
	return p.IsPiece() && p.Colour() != mover.Colour()
}

// matchCapture looks for a capture along run, where run[0] is the mover.
// A man needs an enemy on the next cell and an empty cell behind it.
// A king may cross empty cells first and may land on any empty cell behind the enemy.
// It returns the distance to the enemy and every landing distance, nearest first.
func matchCapture(run []draughts.Piece, mover draughts.Piece) (int, []int) {
	i := 1
	if mover.IsKing() {
		for i < len(run) && run[i] == draughts.Empty {
			i++
		}
	}
	if i >= len(run) || !isEnemy(mover, run[i]) {
		return 0, nil
	}

	take := i
	var landings []int
	for j := take + 1; j < len(run) && run[j] == draughts.Empty; j++ {
		landings = append(landings, j)
		if mover.IsMan() {
			break
		}
	}
	if len(landings) == 0 {
		return 0, nil
	}
	return take, landings
}

// searchCaptures extends acc with every capture available from cell.
// The piece has already arrived on cell; from is the direction pointing back
// along its last jump and may not be taken again. Each branch plays the jump
// on its own copy of the board, so captured pieces are gone for the rest of it.
func searchCaptures(b draughts.Board, cell int, from draughts.Direction, acc chain) []chain {
	piece := b.At(cell)
	limit := 3
	if piece.IsKing() {
		limit = 0
	}
	runs, ok := ScanDirections(b, cell, limit)
	if !ok || !piece.IsPiece() {
		return []chain{acc}
	}

	var found []chain
	for _, dir := range draughts.Directions {
		if dir == from {
			continue
		}
		take, landings := matchCapture(runs[dir], piece)
		if take == 0 {
			continue
		}
		step := dir.Step()
		takeCell := cell + take*step
		if acc.hasTaken(takeCell) {
			continue
		}
		taken := b.At(takeCell)
		for _, dist := range landings {
			landing := cell + dist*step
			next := b
			next.SetAt(cell, draughts.Empty)
			next.SetAt(takeCell, draughts.Empty)
			next.SetAt(landing, piece)
			found = append(found, searchCaptures(next, landing, dir.Opposite(), acc.extend(landing, takeCell, taken))...)
		}
	}
	if len(found) == 0 {
		return []chain{acc}
	}
	return found
}

// CapturesAt returns every maximal capture sequence of the piece on cell,
// in scan order. Men and kings keep their rank for the whole sequence.
// When the piece cannot capture, the result is a single move with no takes
// whose jump path holds only the origin.
func CapturesAt(b draughts.Board, cell int) []draughts.Move {
	piece := b.At(cell)
	chains := searchCaptures(b, cell, draughts.NoDirection, chain{jumps: []int{cell}})
	moves := make([]draughts.Move, len(chains))
	for i, c := range chains {
		moves[i] = c.toMove(piece)
	}
	return moves
}
