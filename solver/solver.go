// Package solver computes the presses an operator needs to type door codes
// through a chain of robots operating directional keypads.
package solver

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/go-ricrob/keypadsolver/internal/codes"
	"github.com/go-ricrob/keypadsolver/keypad"
)

const numCh = 100

// MaxCandidates limits the number of sequences returned by Candidates.
const MaxCandidates = 1 << 12

var (
	// ErrEmptyCode is returned for a code without keys.
	ErrEmptyCode = errors.New("empty code")
	// ErrTooManyCandidates is returned by Candidates beyond MaxCandidates.
	ErrTooManyCandidates = errors.New("too many candidate sequences")
)

var errLayoutMismatch = errors.New("memo built for another directional layout")

// Option configures a Solver.
type Option func(s *Solver)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option { return func(s *Solver) { s.log = log } }

// WithWorkers sets the number of codes solved in parallel by Answer.
func WithWorkers(n int) Option { return func(s *Solver) { s.numWorker = n } }

// WithMemo makes the solver use memo instead of a fresh one.
func WithMemo(memo *CostMemo) Option { return func(s *Solver) { s.memo = memo } }

// Solver solves door codes typed on the numeric keypad.
type Solver struct {
	numeric   *keypad.Layout
	memo      *CostMemo
	log       logrus.FieldLogger
	numWorker int
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// New returns a solver for codes typed on numeric by a robot controlled
// through directional keypads.
func New(numeric, directional *keypad.Layout, opts ...Option) (*Solver, error) {
	s := &Solver{
		numeric:   numeric,
		log:       discardLogger(),
		numWorker: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.memo == nil {
		table, err := keypad.NewPairTable(directional)
		if err != nil {
			return nil, err
		}
		s.memo = NewCostMemo(table)
	} else if s.memo.table.Layout() != directional {
		return nil, errLayoutMismatch
	}
	if s.numWorker < 1 {
		s.numWorker = 1
	}
	return s, nil
}

// Memo returns the memo shared by all solves of s.
func (s *Solver) Memo() *CostMemo { return s.memo }

// transitions returns the candidate sequences of every numeric keypad
// transition of code, starting with the arm at A.
func (s *Solver) transitions(code string) ([][]keypad.Sequence, error) {
	keys, err := s.numeric.ParseCode(code)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrEmptyCode
	}

	parts := make([][]keypad.Sequence, 0, len(keys))
	prev := keypad.KeyA
	for _, k := range keys {
		seqs, err := keypad.SequencesBetween(s.numeric, prev, k)
		if err != nil {
			return nil, err
		}
		parts = append(parts, seqs)
		prev = k
	}
	return parts, nil
}

// Candidates returns every minimal directional keypad sequence typing code
// on the numeric keypad, starting with the arm at A. The number of
// candidates doubles with most transitions; ErrTooManyCandidates is
// returned beyond MaxCandidates.
func (s *Solver) Candidates(code string) ([]keypad.Sequence, error) {
	parts, err := s.transitions(code)
	if err != nil {
		return nil, err
	}

	seqs := []keypad.Sequence{{}}
	for _, part := range parts {
		if len(seqs)*len(part) > MaxCandidates {
			return nil, ErrTooManyCandidates
		}
		next := make([]keypad.Sequence, 0, len(seqs)*len(part))
		for _, seq := range seqs {
			for _, p := range part {
				next = append(next, append(slices.Clip(seq), p...))
			}
		}
		seqs = next
	}
	return seqs, nil
}

func (s *Solver) sequenceCost(seq keypad.Sequence, layers int) (int, error) {
	total := 0
	for _, p := range seq.Pairs() {
		c, err := s.memo.Cost(p, layers)
		if err != nil {
			return 0, err
		}
		if total, err = addCost(total, c); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Solve returns the minimal number of operator presses typing code with
// layers directional keypads between the numeric keypad robot and the
// operator.
//
// Every transition sequence ends with a press of A, so all directional arms
// rest on A between transitions and the cheapest combination is the sum of
// the cheapest sequence per transition.
func (s *Solver) Solve(code string, layers int) (int, error) {
	if err := checkLayers(layers); err != nil {
		return 0, err
	}
	parts, err := s.transitions(code)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, part := range parts {
		best := -1
		for _, seq := range part {
			c, err := s.sequenceCost(seq, layers)
			if err != nil {
				return 0, err
			}
			if best < 0 || c < best {
				best = c
			}
		}
		if total, err = addCost(total, best); err != nil {
			return 0, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"code":        code,
		"layers":      layers,
		"transitions": len(parts),
		"length":      total,
	}).Debug("code solved")
	return total, nil
}

// Result is the outcome of Answer.
type Result struct {
	Run            uuid.UUID
	Layers         int
	Total          int   // sum of length times numeric value
	Lengths        []int // press count per code, in input order
	NumCachedCosts int
}

// Answer solves all codes in parallel and returns the sum of every press
// count multiplied with the numeric value of its code.
func (s *Solver) Answer(codeList []string, layers int) (*Result, error) {
	if err := checkLayers(layers); err != nil {
		return nil, err
	}

	r := &Result{Run: uuid.New(), Layers: layers, Lengths: make([]int, len(codeList))}

	numWorker := min(s.numWorker, len(codeList))
	idxCh := make(chan int, numCh)

	errs := make([]error, len(codeList))

	wg := new(sync.WaitGroup)
	wg.Add(numWorker)
	for i := 0; i < numWorker; i++ {
		go func() {
			defer wg.Done()
			for idx := range idxCh {
				n, err := s.Solve(codeList[idx], layers)
				if err != nil {
					errs[idx] = fmt.Errorf("code %q: %w", codeList[idx], err)
					continue
				}
				r.Lengths[idx] = n
			}
		}()
	}
	for idx := range codeList {
		idxCh <- idx
	}
	close(idxCh)
	wg.Wait()

	// report the first failing code in input order
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i, code := range codeList {
		v, err := codes.NumericValue(code)
		if err != nil {
			return nil, err
		}
		weighted, err := mulCost(r.Lengths[i], v)
		if err != nil {
			return nil, fmt.Errorf("code %q: %w", code, err)
		}
		if r.Total, err = addCost(r.Total, weighted); err != nil {
			return nil, err
		}
	}
	r.NumCachedCosts = s.memo.Size()

	s.log.WithFields(logrus.Fields{
		"run":    r.Run,
		"layers": layers,
		"codes":  len(codeList),
		"total":  r.Total,
		"cached": r.NumCachedCosts,
	}).Info("codes solved")
	return r, nil
}
