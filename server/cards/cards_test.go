package cards

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"As", "Kd", "Th", "9c", "2s"} {
		c, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", s, err)
		}
		if c.String() != s {
			t.Errorf("round trip %q -> %q", s, c.String())
		}
	}
}

func TestParseLowercaseRank(t *testing.T) {
	c, err := Parse("as")
	if err != nil {
		t.Fatalf("Parse(as) returned error: %v", err)
	}
	if c.Rank != 14 || c.Suit != 's' {
		t.Fatalf("expected ace of spades, got %+v", c)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "A", "Asx", "Zx", "Af", "1s"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestDescribeCardCounts(t *testing.T) {
	// 2 hole + 5 board = 7 cards: describable.
	if d := Describe([]string{"As", "Ad"}, []string{"Ah", "7c", "2d", "9s", "Jh"}); d == "" {
		t.Error("expected a label for a 7-card hand")
	}
	// 2 hole + 4 board = 6 cards: not a describable count.
	if d := Describe([]string{"As", "Ad"}, []string{"Ah", "7c", "2d", "9s"}); d != "" {
		t.Errorf("expected empty label for 6 cards, got %q", d)
	}
	// Unparsable card: best effort, empty label.
	if d := Describe([]string{"As", "??"}, []string{"Ah", "7c", "2d"}); d != "" {
		t.Errorf("expected empty label for bad card, got %q", d)
	}
}
