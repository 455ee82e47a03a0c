package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestPctDecoder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		feed     string
		wantOK   bool
		wantByte byte
	}{
		{"upper hex", "41", true, 'A'},
		{"lower hex", "4a", true, 'J'},
		{"mixed hex", "4A", true, 'J'},
		{"high byte", "bc", true, 0xbc},
		{"max byte", "FF", true, 0xff},
		{"zero byte", "00", true, 0},
		{"bad first digit", "X1", false, 0},
		{"bad second digit", "1X", false, 0},
		{"delimiter", "%1", false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var dec grammar.PctDecoder
			ok := true
			for i := 0; i < len(c.feed) && ok; i++ {
				ok = dec.Next(c.feed[i])
			}
			if ok != c.wantOK {
				t.Fatalf("dec.Next(%q) = %v, want %v", c.feed, ok, c.wantOK)
			}
			if !c.wantOK {
				return
			}
			if !dec.Done() {
				t.Fatalf("dec.Done() = false after %q, want true", c.feed)
			}
			if got := dec.Decoded(); got != c.wantByte {
				t.Errorf("dec.Decoded() = %#x, want %#x", got, c.wantByte)
			}
		})
	}
}

func TestPctDecoder_NotDoneAfterOneDigit(t *testing.T) {
	t.Parallel()

	var dec grammar.PctDecoder
	if !dec.Next('4') {
		t.Fatal("dec.Next('4') = false, want true")
	}
	if dec.Done() {
		t.Error("dec.Done() = true after one digit, want false")
	}
}

func TestPctDecoder_RejectsInputWhenDone(t *testing.T) {
	t.Parallel()

	var dec grammar.PctDecoder
	dec.Next('4')
	dec.Next('1')
	if dec.Next('2') {
		t.Error("dec.Next('2') = true after done, want false")
	}
	if got := dec.Decoded(); got != 'A' {
		t.Errorf("dec.Decoded() = %#x, want %#x", got, 'A')
	}
}
