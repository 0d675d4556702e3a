package keypad

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sequence is a list of moves terminated by a single MoveActivate.
type Sequence []Move

// Pairs returns the directional keypad transitions needed to type s,
// starting at rest position A.
func (s Sequence) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s))
	prev := KeyA
	for _, m := range s {
		pairs = append(pairs, Pair{From: prev, To: m.Key()})
		prev = m.Key()
	}
	return pairs
}

func (s Sequence) String() string {
	var b strings.Builder
	for _, m := range s {
		b.WriteByte(byte(m))
	}
	return b.String()
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func between[T constraints.Ordered](v, a, b T) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

// onSegment reports whether p lies on the axis parallel segment a-b.
func onSegment(a, b, p Coordinate) bool {
	return between(p.Row, a.Row, b.Row) && between(p.Col, a.Col, b.Col)
}

func repeat(m Move, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = m
	}
	return moves
}

// SequencesBetween returns the minimal move sequences moving a robot arm on l
// from key from to key to and pressing it. Only L shaped paths are
// considered: horizontal first and vertical first. A path whose legs touch
// the gap is dropped.
func SequencesBetween(l *Layout, from, to Key) ([]Sequence, error) {
	start, err := l.PositionOf(from)
	if err != nil {
		return nil, err
	}
	end, err := l.PositionOf(to)
	if err != nil {
		return nil, err
	}
	if start == end {
		return []Sequence{{MoveActivate}}, nil
	}

	d := end.Sub(start)
	horizontal := repeat(MoveRight, abs(d.Col))
	if d.Col < 0 {
		horizontal = repeat(MoveLeft, abs(d.Col))
	}
	vertical := repeat(MoveDown, abs(d.Row))
	if d.Row < 0 {
		vertical = repeat(MoveUp, abs(d.Row))
	}

	candidates := []struct {
		corner        Coordinate
		first, second []Move
	}{
		{Coordinate{Row: start.Row, Col: end.Col}, horizontal, vertical},
		{Coordinate{Row: end.Row, Col: start.Col}, vertical, horizontal},
	}

	var seqs []Sequence
	for _, c := range candidates {
		if onSegment(start, c.corner, l.gap) || onSegment(c.corner, end, l.gap) {
			continue
		}
		seq := make(Sequence, 0, len(c.first)+len(c.second)+1)
		seq = append(seq, c.first...)
		seq = append(seq, c.second...)
		seq = append(seq, MoveActivate)
		if slices.ContainsFunc(seqs, func(s Sequence) bool { return slices.Equal(s, seq) }) {
			continue
		}
		seqs = append(seqs, seq)
	}
	if len(seqs) == 0 {
		return nil, &LayoutError{Layout: l.name, From: from, To: to}
	}
	return seqs, nil
}
