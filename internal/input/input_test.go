package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"
)

// pollUntil polls the keyboard until the predicate passes or a deadline
// expires, absorbing the latency of the background reader goroutine.
func pollUntil(t *testing.T, k *Keyboard, pred func(Intent) bool) Intent {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		in := k.Poll()
		if pred(in) {
			return in
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("intent predicate never satisfied")
	return Intent{}
}

func TestKeyboardMapsKeys(t *testing.T) {
	k := NewKeyboard(bufio.NewReader(strings.NewReader("w")))
	in := pollUntil(t, k, func(i Intent) bool { return i.Thrust })
	if in.Fire || in.Quit || in.TurnLeft {
		t.Errorf("unexpected extra keys in %+v", in)
	}
}

func TestKeyboardChord(t *testing.T) {
	// Thrust, turn, and fire delivered in one read must all register.
	k := NewKeyboard(bufio.NewReader(strings.NewReader("wd ")))
	in := pollUntil(t, k, func(i Intent) bool { return i.Thrust && i.TurnRight && i.Fire })
	if in.TurnLeft || in.PauseToggle {
		t.Errorf("unexpected extra keys in %+v", in)
	}
}

func TestKeyboardArrowSequences(t *testing.T) {
	k := NewKeyboard(bufio.NewReader(strings.NewReader("\x1b[A\x1b[D")))
	pollUntil(t, k, func(i Intent) bool { return i.Thrust && i.TurnLeft })
}

func TestKeyboardNeutralWithoutInput(t *testing.T) {
	// A source with nothing behind it yields the neutral intent.
	pr, pw := io.Pipe()
	defer pw.Close()
	k := NewKeyboard(bufio.NewReader(pr))

	if in := k.Poll(); in != (Intent{}) {
		t.Errorf("Poll with no input = %+v, want neutral", in)
	}
}

func TestKeyboardHoldExpires(t *testing.T) {
	k := NewKeyboard(bufio.NewReader(strings.NewReader(" ")))
	pollUntil(t, k, func(i Intent) bool { return i.Fire })

	time.Sleep(keyHoldDuration + 10*time.Millisecond)
	if in := k.Poll(); in.Fire {
		t.Error("fire still held after hold window expired")
	}
}

func TestKeyboardReset(t *testing.T) {
	k := NewKeyboard(bufio.NewReader(strings.NewReader("r")))
	pollUntil(t, k, func(i Intent) bool { return i.Restart })

	k.Reset()
	if in := k.Poll(); in.Restart {
		t.Error("restart still held after Reset")
	}
}

func TestKeyboardQuitKeys(t *testing.T) {
	for _, seq := range []string{"q", "Q", "\x03"} {
		k := NewKeyboard(bufio.NewReader(strings.NewReader(seq)))
		pollUntil(t, k, func(i Intent) bool { return i.Quit })
	}
}
