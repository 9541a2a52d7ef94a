package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type fixedRNG float64

func (f fixedRNG) Float64() float64 { return float64(f) }

const (
	alwaysHit  = fixedRNG(0)
	alwaysMiss = fixedRNG(0.999)
)

func runSession(t *testing.T, input string, rng fixedRNG) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, rng, nil)
	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestSessionSingleMatchTranscript(t *testing.T) {
	out := runSession(t, "2\n1\n50\n3\n50\n0\n", alwaysHit)

	wantPlayer1 := "Player 1, it's your turn!\n" +
		promptMoneyBall + promptCapability +
		"Rack: M M M M M | 10 pts\n" +
		"Rack: X X X X M | 6 pts\n" +
		"Starry: S | 3 pts\n" +
		"Rack: X X X X M | 6 pts\n" +
		"Starry: S | 3 pts\n" +
		"Rack: X X X X M | 6 pts\n" +
		"Rack: X X X X M | 6 pts\n" +
		"Total score for Player 1: 40 pts\n"
	if !strings.Contains(out, wantPlayer1) {
		t.Fatalf("player 1 transcript missing; got:\n%s", out)
	}
	wantPlayer2Starry := "Rack: M M M M M | 10 pts\nStarry: S | 3 pts\n"
	if !strings.Contains(out, wantPlayer2Starry) {
		t.Fatalf("player 2 money-ball starry rack missing; got:\n%s", out)
	}
	if !strings.Contains(out, "Total score for Player 2: 40 pts\n") {
		t.Fatalf("player 2 total missing; got:\n%s", out)
	}
	if !strings.HasSuffix(out, "Highest score is: 40\n"+promptPlayAgain+msgFarewell+"\n") {
		t.Fatalf("unexpected ending; got:\n%s", out)
	}
}

func TestSessionDeclineEndsAfterOneFarewell(t *testing.T) {
	out := runSession(t, "2\n1\n50\n1\n50\n0\n", alwaysMiss)
	if n := strings.Count(out, msgFarewell); n != 1 {
		t.Fatalf("farewell printed %d times", n)
	}
	if n := strings.Count(out, promptPlayers); n != 1 {
		t.Fatalf("player count asked %d times, want 1", n)
	}
	if !strings.Contains(out, "Highest score is: 0\n") {
		t.Fatalf("expected zero highest score; got:\n%s", out)
	}
}

func TestSessionReplay(t *testing.T) {
	out := runSession(t, "2\n1\n50\n1\n50\n1\n3\n2\n10\n2\n10\n3\n10\n0\n", alwaysHit)
	if n := strings.Count(out, promptPlayers); n != 2 {
		t.Fatalf("player count asked %d times, want 2", n)
	}
	if n := strings.Count(out, "Highest score is: 40\n"); n != 2 {
		t.Fatalf("highest score printed %d times, want 2", n)
	}
	if !strings.Contains(out, "Total score for Player 3: 40 pts\n") {
		t.Fatalf("third player missing in second match; got:\n%s", out)
	}
	if n := strings.Count(out, msgFarewell); n != 1 {
		t.Fatalf("farewell printed %d times", n)
	}
}

func TestSessionTooFewPlayersRestarts(t *testing.T) {
	out := runSession(t, "1\n2\n1\n50\n1\n50\n0\n", alwaysHit)
	if n := strings.Count(out, msgTooFewPlayers); n != 1 {
		t.Fatalf("too-few message printed %d times", n)
	}
	if n := strings.Count(out, promptPlayers); n != 2 {
		t.Fatalf("player count asked %d times, want 2", n)
	}
	// a rejected count goes straight back to the count prompt
	if !strings.HasPrefix(out, promptPlayers+msgTooFewPlayers+"\n"+promptPlayers) {
		t.Fatalf("unexpected start; got:\n%s", out)
	}
	if n := strings.Count(out, promptPlayAgain); n != 1 {
		t.Fatalf("replay asked %d times, want 1", n)
	}
}

func TestSessionRepromptsInvalidInput(t *testing.T) {
	input := "two\n2\n" +
		"abc\n0\n6\n2\n" + // money-ball rack
		"100\n0\n\n40\n" + // capability
		"3\n40\n" +
		"7\nyes\n0\n"
	out := runSession(t, input, alwaysHit)

	if n := strings.Count(out, msgInvalidInput); n != 7 {
		t.Fatalf("invalid-input message printed %d times, want 7; got:\n%s", n, out)
	}
	if n := strings.Count(out, promptMoneyBall); n != 5 {
		t.Fatalf("money-ball prompt shown %d times, want 5", n)
	}
	if n := strings.Count(out, promptCapability); n != 5 {
		t.Fatalf("capability prompt shown %d times, want 5", n)
	}
	if n := strings.Count(out, msgInvalidChoice); n != 2 {
		t.Fatalf("invalid-choice message printed %d times, want 2", n)
	}
	if n := strings.Count(out, msgFarewell); n != 1 {
		t.Fatalf("farewell printed %d times", n)
	}
}

func TestSessionInputClosed(t *testing.T) {
	for _, input := range []string{"", "2\n1\n", "2\n1\n50\n1\n50\n"} {
		out := runSession(t, input, alwaysHit)
		if n := strings.Count(out, msgFarewell); n != 1 {
			t.Fatalf("input %q: farewell printed %d times", input, n)
		}
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("  42 \r")
	if err != nil || v != 42 {
		t.Fatalf("got %d, %v", v, err)
	}
	for _, s := range []string{"", "x", "4.5", "1 2"} {
		if _, err := ParseInt(s); !errors.Is(err, ErrNotANumber) {
			t.Fatalf("%q: err=%v want ErrNotANumber", s, err)
		}
	}
}

func TestParseChoice(t *testing.T) {
	if v, err := ParseChoice("1"); err != nil || !v {
		t.Fatalf("1: got %v, %v", v, err)
	}
	if v, err := ParseChoice("0"); err != nil || v {
		t.Fatalf("0: got %v, %v", v, err)
	}
	if _, err := ParseChoice("2"); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("2: err=%v want ErrInvalidChoice", err)
	}
	if _, err := ParseChoice("y"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("y: err=%v want ErrNotANumber", err)
	}
}

func TestSessionHugePlayerCount(t *testing.T) {
	out := runSession(t, "9223372036854775807\n1\n50\n", alwaysHit)
	if !strings.Contains(out, "Total score for Player 1: 40 pts\n") {
		t.Fatalf("first player should still play; got:\n%s", out)
	}
	if !strings.Contains(out, "Player 2, it's your turn!\n") {
		t.Fatalf("expected second turn before input closed; got:\n%s", out)
	}
	if n := strings.Count(out, msgFarewell); n != 1 {
		t.Fatalf("farewell printed %d times", n)
	}
}

func TestSessionOversizedLineIsInvalidInput(t *testing.T) {
	garbage := strings.Repeat("x", 70000)
	out := runSession(t, "2\n"+garbage+"\n1\n50\n1\n50\n0\n", alwaysHit)
	if n := strings.Count(out, msgInvalidInput); n != 1 {
		t.Fatalf("invalid-input message printed %d times, want 1", n)
	}
	if n := strings.Count(out, promptMoneyBall); n != 3 {
		t.Fatalf("money-ball prompt shown %d times, want 3", n)
	}
	if !strings.Contains(out, "Highest score is: 40\n") {
		t.Fatalf("match did not finish; got:\n%s", out)
	}
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("7\r\n8"), &out)
	for _, want := range []string{"7", "8"} {
		got, err := p.Ask("? ")
		if err != nil || got != want {
			t.Fatalf("got %q, %v want %q", got, err, want)
		}
	}
	if _, err := p.Ask("? "); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want io.EOF", err)
	}
}
