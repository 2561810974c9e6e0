package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1
)

// CharSet efficiently represents a set of lowercase letters 'a'-'z'.
//
// The zero value is the empty set.
type CharSet struct {
	bits uint32
}

// Add adds a letter to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all letters from another set to this set.
func (c *CharSet) AddAll(other CharSet) {
	c.bits |= other.bits
}

// Contains checks if a letter is in the set.
func (c CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// IsFull checks if the set holds every letter.
func (c CharSet) IsFull() bool {
	return c.Count() == numChars
}

// Capacity returns the number of distinct letters the set can hold.
func (c CharSet) Capacity() int {
	return numChars
}

// Count returns the number of letters in the set.
func (c CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

func (c CharSet) String() string {
	var sb strings.Builder
	for r := rune(minChar); r <= maxChar; r++ {
		if c.Contains(r) {
			sb.WriteRune(r)
		}
	}
	return fmt.Sprintf("CharSet(%s)", sb.String())
}
