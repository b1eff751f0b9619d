package engine

import (
	"context"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/hashing"
	"github.com/lgbarn/draughts-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree below a position.
func Perft(b draughts.Board, turn draughts.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(b, turn)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		applied := ApplyMove(&b, m)
		nodes += Perft(b, turn.Opposite(), depth-1)
		UndoMove(&b, applied)
	}
	return nodes
}

// PerftDivide is the node count below one root move.
type PerftDivide struct {
	Move  string
	Nodes uint64
}

// PerftResult is the outcome of a parallel perft run.
type PerftResult struct {
	Nodes  uint64
	Divide []PerftDivide // One entry per root move, in legal move order
}

// PerftParallel counts leaf nodes like Perft, expanding each root move on a worker pool
// and sharing a transposition table between workers. It stops early when ctx is done.
func PerftParallel(ctx context.Context, b draughts.Board, turn draughts.Colour, depth int, cfg *config.PerftConfig) (PerftResult, error) {
	if cfg == nil {
		cfg = config.NewPerftConfig()
	}
	if err := cfg.Validate(); err != nil {
		return PerftResult{}, err
	}
	if depth <= 0 {
		return PerftResult{Nodes: 1}, nil
	}

	moves := LegalMoves(b, turn)
	result := PerftResult{Divide: make([]PerftDivide, len(moves))}
	for i, m := range moves {
		result.Divide[i].Move = m.String()
	}

	var table *hashing.ThreadSafePerftTable
	if cfg.CacheEntries > 0 {
		table = hashing.NewThreadSafePerftTable(cfg.CacheEntries)
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Nodes: perftCached(item.Board, item.Turn, item.Depth, table),
		}
	}, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(cfg.BufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			next := b
			ApplyMove(&next, m)
			pool.Submit(worker.WorkItem{Index: i, Board: next, Turn: turn.Opposite(), Depth: depth - 1})
		}
	}()

	done := ctx.Done()
	for r := range pool.Results() {
		if done != nil {
			select {
			case <-done:
				pool.Stop()
				done = nil
			default:
			}
		}
		result.Divide[r.Index].Nodes = r.Nodes
		result.Nodes += r.Nodes
	}
	if err := ctx.Err(); err != nil {
		return PerftResult{}, err
	}
	return result, nil
}

func perftCached(b draughts.Board, turn draughts.Colour, depth int, table *hashing.ThreadSafePerftTable) uint64 {
	if table == nil || depth <= 1 {
		return Perft(b, turn, depth)
	}
	key := hashing.Zobrist(b, turn)
	if nodes, ok := table.Lookup(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range LegalMoves(b, turn) {
		applied := ApplyMove(&b, m)
		nodes += perftCached(b, turn.Opposite(), depth-1, table)
		UndoMove(&b, applied)
	}
	table.Store(key, depth, nodes)
	return nodes
}
