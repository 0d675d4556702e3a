package keypad

import "fmt"

// UnknownKeyError is returned for a key or symbol outside a keypad alphabet.
type UnknownKeyError struct {
	Layout string // empty if the symbol is no key at all
	Key    Key
	Rune   rune
}

func (e *UnknownKeyError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("unknown key %q", e.Rune)
	}
	return fmt.Sprintf("key %q is not on the %s keypad", rune(e.Key), e.Layout)
}

// LayoutError is returned if no minimal move sequence between two keys avoids
// the gap. It can only be caused by a malformed layout.
type LayoutError struct {
	Layout   string
	From, To Key
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s keypad: no gap free path from %s to %s", e.Layout, e.From, e.To)
}
