package keypad

// PairTable holds the candidate sequences for every ordered key pair of a
// layout. It is built once and read only afterwards.
type PairTable struct {
	layout *Layout
	m      map[Pair][]Sequence
}

// NewPairTable builds the table for all ordered pairs of keys of l,
// including pairs of identical keys.
func NewPairTable(l *Layout) (*PairTable, error) {
	t := &PairTable{layout: l, m: make(map[Pair][]Sequence, len(l.keys)*len(l.keys))}
	for _, from := range l.keys {
		for _, to := range l.keys {
			seqs, err := SequencesBetween(l, from, to)
			if err != nil {
				return nil, err
			}
			t.m[Pair{From: from, To: to}] = seqs
		}
	}
	return t, nil
}

// Layout returns the layout the table was built for.
func (t *PairTable) Layout() *Layout { return t.layout }

// Len returns the number of pairs.
func (t *PairTable) Len() int { return len(t.m) }

// Candidates returns the sequences realizing p. The result must not be
// modified.
func (t *PairTable) Candidates(p Pair) ([]Sequence, error) {
	seqs, ok := t.m[p]
	if !ok {
		k := p.From
		if _, err := t.layout.PositionOf(k); err == nil {
			k = p.To
		}
		return nil, &UnknownKeyError{Layout: t.layout.name, Key: k, Rune: rune(k)}
	}
	return seqs, nil
}
