package spell

import "testing"

func TestTokenizeSplitsOnPunctuationAndWhitespace(t *testing.T) {
	tokens := tokenize("whereis th elove, hehad!", false)
	want := []string{"whereis", "th", "elove", "hehad"}
	if len(tokens) != len(want) {
		t.Fatalf("tokenize = %v, want %v", tokens, want)
	}
	for i, w := range want {
		if tokens[i].text != w {
			t.Errorf("token %d = %q, want %q", i, tokens[i].text, w)
		}
	}
}

func TestTokenizeKeepsApostropheContinuation(t *testing.T) {
	tokens := tokenize("couqdn'tread", false)
	if len(tokens) != 1 || tokens[0].text != "couqdn'tread" {
		t.Fatalf("tokenize apostrophe = %v", tokens)
	}
}

func TestTokenizeFlagsAcronymsWhenRequested(t *testing.T) {
	tokens := tokenize("the PLETY of 12 funn", true)
	var flagged []string
	for _, tok := range tokens {
		if tok.ignore {
			flagged = append(flagged, tok.text)
		}
	}
	if len(flagged) != 2 || flagged[0] != "PLETY" || flagged[1] != "12" {
		t.Fatalf("flagged acronyms/numbers = %v, want [PLETY 12]", flagged)
	}
}

func TestTokenizeDoesNotFlagLowercaseWords(t *testing.T) {
	tokens := tokenize("hello world", true)
	for _, tok := range tokens {
		if tok.ignore {
			t.Fatalf("token %q incorrectly flagged as an acronym", tok.text)
		}
	}
}

func TestIsAcronym(t *testing.T) {
	cases := []struct {
		term string
		want bool
	}{
		{"NASA", true},
		{"A1", true},
		{"12", true},
		{"a", false},
		{"the", false},
		{"I", false}, // single rune, below the length-2 floor
		{"Ok", false},
	}
	for _, c := range cases {
		if got := isAcronym(c.term); got != c.want {
			t.Errorf("isAcronym(%q) = %v, want %v", c.term, got, c.want)
		}
	}
}
