// Package cards parses and labels playing cards for display alongside
// stored hand results. Nothing here feeds the PnL computation.
package cards

import "fmt"

type Card struct {
	Rank int
	Suit byte
} // e.g. "As" => rank 14, suit 's'

const rankChars = "  23456789TJQKA"

// Parse reads two-character card text like "As", "Td" or "9c".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("card %q: want rank+suit, e.g. As", s)
	}
	rank := 0
	for r := 2; r <= 14; r++ {
		if rankChars[r] == s[0] || (s[0] >= 'a' && s[0]-32 == rankChars[r]) {
			rank = r
			break
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("card %q: bad rank %q", s, s[0])
	}
	switch s[1] {
	case 'c', 'd', 'h', 's':
		return Card{Rank: rank, Suit: s[1]}, nil
	}
	return Card{}, fmt.Errorf("card %q: bad suit %q", s, s[1])
}

// ParseAll parses a slice of card strings, failing on the first bad one.
func ParseAll(ss []string) ([]Card, error) {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%c%c", rankChars[c.Rank], c.Suit)
}
