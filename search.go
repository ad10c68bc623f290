/*
search.go implements parallel negamax search: fail-soft alpha-beta with a
capture-only quiescence extension at the horizon, a shared atomic stop flag
checked at every node, and a best-move slot behind a mutex that the root
search holds for its entire run.

Root-level children fan out across goroutines via golang.org/x/sync/errgroup,
the idiomatic Go analogue of a parallel root-move iterator. Interior nodes
stay sequential.
*/
package corvid

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// negInf is one more than math.MinInt32, matching the fail-soft sentinel
// used throughout: it must be safely negatable without overflow.
const negInf = math.MinInt32 + 1
const posInf = math.MaxInt32 - 1

// BestMoveSlot is the mutex-protected best-move publication point shared
// between the root search and whatever worker ultimately prints "bestmove".
//
// This is the one correctness-critical lock in the search: the root search
// must hold it for the entire duration of its run, and a reader must hold it
// until it has finished consuming Move/Valid, or it risks publishing or
// printing a stale or zero-valued move.
type BestMoveSlot struct {
	mu    sync.Mutex
	Move  Move
	Valid bool
}

// Lock acquires the slot's mutex. Callers must Unlock when done.
func (s *BestMoveSlot) Lock() { s.mu.Lock() }

// Unlock releases the slot's mutex.
func (s *BestMoveSlot) Unlock() { s.mu.Unlock() }

// Read locks, copies out the current contents, and unlocks. Safe for use by
// a UCI adapter that only needs a momentary snapshot rather than exclusive
// access across its own multi-step operation.
func (s *BestMoveSlot) Read() (Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Move, s.Valid
}

// RootSearch runs one fixed-depth negamax search from pos and publishes the
// best move into slot. It acquires slot's lock before doing any work and
// does not release it until the result (or the "no legal move" sentinel) has
// been stored.
//
// threads bounds how many root moves are searched concurrently via the
// errgroup's SetLimit; a value <= 0 leaves the group unbounded.
func RootSearch(pos Position, mt *MoveTable, depth int, stop *atomic.Bool, threads int) *BestMoveSlot {
	slot := &BestMoveSlot{}
	slot.Lock()
	defer slot.Unlock()

	legal := GenLegalMoves(pos, mt)
	if len(legal) == 0 {
		slot.Valid = false
		return slot
	}

	alpha, beta := negInf, posInf
	type scored struct {
		score int
		move  Move
	}
	results := make([]scored, len(legal))

	var g errgroup.Group
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, lm := range legal {
		i, lm := i, lm
		g.Go(func() error {
			s := -negamax(depth-1, -beta, -alpha, lm.Move.Kind(), lm.Result, mt, stop)
			results[i] = scored{score: s, move: lm.Move}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].score < results[j].score })
	top := results[len(results)-1]
	slot.Move = top.move
	slot.Valid = true
	return slot
}

// negamax is the sequential interior-node search. When depth reaches zero or
// the stop flag has flipped false, it falls through to quiescence on the
// current node rather than returning an arbitrary sentinel, so partial work
// above it is preserved.
func negamax(depth int, alpha, beta int, lastMove MoveKind, pos Position, mt *MoveTable, stop *atomic.Bool) int {
	if !stop.Load() || depth == 0 {
		return quiescence(alpha, beta, lastMove, pos, mt)
	}

	legal := GenLegalMoves(pos, mt)
	if len(legal) == 0 {
		return negInf
	}

	score := negInf
	for _, lm := range legal {
		s := -negamax(depth-1, -beta, -alpha, lm.Move.Kind(), lm.Result, mt, stop)
		if s > score {
			score = s
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return score
}

// quiescence extends the search with captures only: stand-pat cutoff, then
// recurse on captures/EP captures/capture-promotions with a negated window.
func quiescence(alpha, beta int, lastMove MoveKind, pos Position, mt *MoveTable) int {
	eval := Evaluate(&pos, lastMove)
	if eval >= beta {
		return beta
	}
	if eval > alpha {
		alpha = eval
	}

	legal := GenLegalMoves(pos, mt)
	for _, lm := range legal {
		if !lm.Move.Kind().IsCapture() {
			continue
		}
		s := -quiescence(-beta, -alpha, lm.Move.Kind(), lm.Result, mt)
		if s >= beta {
			return beta
		}
		if s > alpha {
			alpha = s
		}
	}
	return alpha
}
