package keypad

import "fmt"

const gapSymbol = ' '

// Layout is the immutable geometry of a keypad: the position of every key
// and the single gap no robot arm may pass.
type Layout struct {
	name      string
	keys      []Key // row-major
	positions map[Key]Coordinate
	gap       Coordinate
}

// NewNumeric returns the door keypad.
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
func NewNumeric() *Layout {
	return mustLayout("numeric", "789", "456", "123", " 0A")
}

// NewDirectional returns the keypad the robots are controlled with.
//
//	  ^ A
//	< v >
func NewDirectional() *Layout {
	return mustLayout("directional", " ^A", "<v>")
}

func mustLayout(name string, rows ...string) *Layout {
	l, err := newLayout(name, rows...)
	if err != nil {
		// fixed layouts, cannot fail
		panic(err)
	}
	return l
}

func newLayout(name string, rows ...string) (*Layout, error) {
	l := &Layout{name: name, positions: map[Key]Coordinate{}}
	numGap := 0
	for row, s := range rows {
		for col, r := range s {
			c := Coordinate{Row: row, Col: col}
			if r == gapSymbol {
				l.gap = c
				numGap++
				continue
			}
			k, err := ParseKey(r)
			if err != nil {
				return nil, fmt.Errorf("%s keypad: %w", name, err)
			}
			if _, ok := l.positions[k]; ok {
				return nil, fmt.Errorf("%s keypad: duplicate key %s", name, k)
			}
			l.positions[k] = c
			l.keys = append(l.keys, k)
		}
	}
	if numGap != 1 {
		return nil, fmt.Errorf("%s keypad: %d gaps, want 1", name, numGap)
	}
	return l, nil
}

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Gap returns the coordinate holding no key.
func (l *Layout) Gap() Coordinate { return l.gap }

// Keys returns the keys of the layout in row-major order.
func (l *Layout) Keys() []Key { return append([]Key(nil), l.keys...) }

// PositionOf returns the coordinate of k.
func (l *Layout) PositionOf(k Key) (Coordinate, error) {
	c, ok := l.positions[k]
	if !ok {
		return Coordinate{}, &UnknownKeyError{Layout: l.name, Key: k, Rune: rune(k)}
	}
	return c, nil
}

// ParseCode converts a code typed on l into keys.
func (l *Layout) ParseCode(code string) ([]Key, error) {
	keys := make([]Key, 0, len(code))
	for _, r := range code {
		k, err := ParseKey(r)
		if err != nil {
			return nil, err
		}
		if _, err := l.PositionOf(k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
