package solver

import (
	"errors"
	"math"

	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"github.com/go-ricrob/keypadsolver/keypad"
)

// MaxLayers is the largest supported number of directional keypad layers.
const MaxLayers = packed.MaxLayers

const numPart = 16

var (
	// ErrLayers is returned for a layer count outside [1, MaxLayers].
	ErrLayers = errors.New("layer count out of range")
	// ErrOverflow is returned if a press count does not fit into an int.
	ErrOverflow = errors.New("press count overflow")
)

func checkLayers(layers int) error {
	if layers < 1 || layers > MaxLayers {
		return ErrLayers
	}
	return nil
}

func addCost(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func mulCost(a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// CostMemo computes the number of operator presses needed to move a robot
// arm between two directional keys and press the second one, seen through a
// number of directional keypad layers. Results are memoized per pair and
// layer count. A CostMemo is safe for concurrent use.
type CostMemo struct {
	table *keypad.PairTable
	pm    *partmap.Map[packed.P3, int]
}

// NewCostMemo returns an empty memo over the transitions of t.
func NewCostMemo(t *keypad.PairTable) *CostMemo {
	return &CostMemo{table: t, pm: partmap.New[packed.P3, int](numPart)}
}

// Cost returns the presses the operator needs to realize p with layers
// keypads between p and the operator. With one layer the operator types one
// of the candidate sequences of p directly.
func (m *CostMemo) Cost(p keypad.Pair, layers int) (int, error) {
	if err := checkLayers(layers); err != nil {
		return 0, err
	}
	return m.cost(p, layers)
}

func (m *CostMemo) cost(p keypad.Pair, layers int) (int, error) {
	k := packed.Pack(p, layers)
	if c, ok := m.pm.Load(k); ok {
		return c, nil
	}

	seqs, err := m.table.Candidates(p)
	if err != nil {
		return 0, err
	}

	best := -1
	for _, s := range seqs {
		c := len(s)
		if layers > 1 {
			c = 0
			for _, sub := range s.Pairs() {
				subCost, err := m.cost(sub, layers-1)
				if err != nil {
					return 0, err
				}
				if c, err = addCost(c, subCost); err != nil {
					return 0, err
				}
			}
		}
		if best < 0 || c < best {
			best = c
		}
	}

	// a concurrent caller may have stored the same value already
	m.pm.StoreIfAbsent(k, best)
	return best, nil
}

// Store records cost for p at the given layer count unless a value is
// present already. It reports whether cost was stored.
func (m *CostMemo) Store(p keypad.Pair, layers, cost int) bool {
	if checkLayers(layers) != nil {
		return false
	}
	return m.pm.StoreIfAbsent(packed.Pack(p, layers), cost)
}

// Size returns the number of memoized subproblems.
func (m *CostMemo) Size() int { return m.pm.Size() }
