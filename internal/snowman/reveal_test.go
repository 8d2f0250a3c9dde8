package snowman

import "testing"

func TestMaskWord(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"ice", "___"},
		{"ice cream", "___ _____"},
		{" ", " "},
		{"", ""},
		{"Go", "__"},
	}

	for _, tt := range tests {
		got := string(MaskWord(tt.word))
		if got != tt.want {
			t.Errorf("MaskWord(%q) = %q, expected %q", tt.word, got, tt.want)
		}
		if len([]rune(got)) != len([]rune(tt.word)) {
			t.Errorf("MaskWord(%q) length %d, expected %d", tt.word, len([]rune(got)), len([]rune(tt.word)))
		}
	}
}

func TestMaskWordIdempotence(t *testing.T) {
	a := string(MaskWord("winter wonderland"))
	b := string(MaskWord("winter wonderland"))
	if a != b {
		t.Errorf("MaskWord is not deterministic: %q vs %q", a, b)
	}
}

func TestApplyGuessReveals(t *testing.T) {
	revealed := MaskWord("ice")

	revealed = ApplyGuess('i', "ice", revealed)
	if string(revealed) != "i__" {
		t.Errorf("after guessing 'i': %q, expected %q", string(revealed), "i__")
	}

	revealed = ApplyGuess('e', "ice", revealed)
	if string(revealed) != "i_e" {
		t.Errorf("after guessing 'e': %q, expected %q", string(revealed), "i_e")
	}
}

func TestApplyGuessRevealsAllOccurrences(t *testing.T) {
	got := ApplyGuess('s', "assess", MaskWord("assess"))
	if string(got) != "_ssess" {
		t.Errorf("ApplyGuess('s') = %q, expected %q", string(got), "_ssess")
	}
}

func TestApplyGuessCaseInsensitive(t *testing.T) {
	// Uppercase guess matches lowercase word position and vice versa;
	// the reveal always carries the word's original case.
	got := ApplyGuess('I', "Ice", MaskWord("Ice"))
	if string(got) != "I__" {
		t.Errorf("ApplyGuess('I', \"Ice\") = %q, expected %q", string(got), "I__")
	}

	got = ApplyGuess('c', "Ice", got)
	if string(got) != "Ic_" {
		t.Errorf("ApplyGuess('c', \"Ice\") = %q, expected %q", string(got), "Ic_")
	}
}

func TestApplyGuessAbsentLetter(t *testing.T) {
	before := MaskWord("ice")
	after := ApplyGuess('z', "ice", before)
	if string(after) != string(before) {
		t.Errorf("absent letter changed the reveal state: %q", string(after))
	}
}

func TestApplyGuessDoesNotMutateInput(t *testing.T) {
	revealed := MaskWord("ice")
	ApplyGuess('i', "ice", revealed)
	if string(revealed) != "___" {
		t.Errorf("ApplyGuess mutated its input: %q", string(revealed))
	}
}
