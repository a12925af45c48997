package cards

import (
	poker "github.com/paulhankin/poker"
)

// Convert our Card -> library card.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	case 's':
		s = poker.Spade
	default:
		s = poker.Club
	}
	// Our ranks: 2..14 (Ace=14). Library: 1..13 (Ace=1).
	var r poker.Rank
	if c.Rank == 14 {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// Describe labels the hand class (e.g. "two pair") for hole+board card
// strings, best-effort: the library describes 3, 5 and 7 card hands, so any
// other count, or unparsable cards, yields "".
func Describe(hole, board []string) string {
	all, err := ParseAll(append(append([]string{}, hole...), board...))
	if err != nil {
		return ""
	}
	n := len(all)
	if n != 3 && n != 5 && n != 7 {
		return ""
	}
	pcs := make([]poker.Card, n)
	for i, c := range all {
		pcs[i] = toPH(c)
	}
	d, err := poker.Describe(pcs)
	if err != nil {
		return ""
	}
	return d
}
