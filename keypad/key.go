// Package keypad provides the geometry of the numeric and directional keypads
// and the minimal move sequences between their keys.
package keypad

import "fmt"

// Key is a button on one of the keypads. Its value is the printed symbol.
type Key byte

// Numeric keypad keys.
const (
	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'
)

// Directional keypad keys. KeyA is shared by both keypads.
const (
	KeyA     Key = 'A'
	KeyUp    Key = '^'
	KeyDown  Key = 'v'
	KeyLeft  Key = '<'
	KeyRight Key = '>'
)

var knownKeys = map[rune]Key{
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
	'A': KeyA, '^': KeyUp, 'v': KeyDown, '<': KeyLeft, '>': KeyRight,
}

// ParseKey returns the key printed as r.
func ParseKey(r rune) (Key, error) {
	k, ok := knownKeys[r]
	if !ok {
		return 0, &UnknownKeyError{Rune: r}
	}
	return k, nil
}

func (k Key) String() string { return string(rune(k)) }

// Pair is an ordered key transition, the unit of the layered cost.
type Pair struct {
	From, To Key
}

func (p Pair) String() string { return p.From.String() + p.To.String() }

// Move is a press on the directional keypad of the controlling robot.
type Move byte

// Moves.
const (
	MoveUp       = Move(KeyUp)
	MoveDown     = Move(KeyDown)
	MoveLeft     = Move(KeyLeft)
	MoveRight    = Move(KeyRight)
	MoveActivate = Move(KeyA)
)

// Key returns the directional keypad key issuing m.
func (m Move) Key() Key { return Key(m) }

func (m Move) String() string { return string(rune(m)) }

// Coordinate is a (row, column) position on a keypad grid, rows top-down.
type Coordinate struct {
	Row, Col int
}

// Add returns c moved by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns the delta leading from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
