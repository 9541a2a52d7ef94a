package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNotANumber    = errors.New("input is not a number")
	ErrInvalidChoice = errors.New("choice must be 1 (yes) or 0 (no)")
)

// ParseInt reads one whole-number answer. Surrounding blanks are ignored.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}

// ParseChoice reads a replay answer: 1 => yes, 0 => no.
func ParseChoice(s string) (bool, error) {
	v, err := ParseInt(s)
	if err != nil {
		return false, err
	}
	switch v {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	return false, fmt.Errorf("%w: got %d", ErrInvalidChoice, v)
}

// Prompter writes prompts and reads one answer line per prompt.
// Lines of any length are accepted; parsing decides whether they are valid.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints prompt and returns the next input line without its newline.
// A closed input returns io.EOF; a final unterminated line is still returned.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskInt keeps asking until parse accepts an answer.
// Every rejected answer prints invalidMsg on its own line. There is no attempt limit.
func (p *Prompter) AskInt(prompt, invalidMsg string, parse func(string) (int, error)) (int, error) {
	for {
		line, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, invalidMsg)
	}
}

// ranged builds a parser that accepts integers passing check.
func ranged(check func(int) error) func(string) (int, error) {
	return func(s string) (int, error) {
		v, err := ParseInt(s)
		if err != nil {
			return 0, err
		}
		if err := check(v); err != nil {
			return 0, err
		}
		return v, nil
	}
}
