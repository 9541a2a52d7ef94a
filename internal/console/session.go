package console

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xtding233/threept/internal/contest"
)

// Player-facing text.
const (
	promptPlayers    = "Enter the number of players: "
	promptMoneyBall  = "Where do you want to put your money-ball rack? Enter 1-5: "
	promptCapability = "Enter your shooting capability (1-99): "
	promptPlayAgain  = "Do you want to play again? (1-yes, 0-no): "

	msgTooFewPlayers = "Number of players must be at least 2."
	msgInvalidInput  = "Invalid input, try again."
	msgInvalidChoice = "Sorry, that's not a valid input."
	msgFarewell      = "Thanks for playing!"
)

// errRestart asks the session loop to start over without a replay prompt.
var errRestart = errors.New("restart match")

// Session is one interactive run of the program: any number of matches.
type Session struct {
	prompt *Prompter
	out    io.Writer
	rng    contest.RandomSource
	log    *log.Logger

	// Debug logs every rack.
	Debug bool
}

// NewSession wires a session to its terminal, random source and diagnostic log.
// A nil logger discards diagnostics.
func NewSession(in io.Reader, out io.Writer, rng contest.RandomSource, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		prompt: NewPrompter(in, out),
		out:    out,
		rng:    rng,
		log:    logger,
	}
}

// Run plays matches until the user declines to continue or input ends,
// then prints the farewell line once.
func (s *Session) Run() error {
	s.log.Printf("[SESSION] started")
	matches := 0
	for {
		err := s.PlayMatch()
		if errors.Is(err, errRestart) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			s.log.Printf("[SESSION] input closed during match")
			break
		}
		if err != nil {
			return err
		}
		matches++

		again, err := s.askPlayAgain()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	fmt.Fprintln(s.out, msgFarewell)
	s.log.Printf("[SESSION] finished after %d match(es)", matches)
	return nil
}

// PlayMatch runs one full match: player count, each player's choices and
// round, then the highest score. An invalid player count returns errRestart.
func (s *Session) PlayMatch() error {
	line, err := s.prompt.Ask(promptPlayers)
	if err != nil {
		return err
	}
	n, err := ParseInt(line)
	if err != nil {
		fmt.Fprintln(s.out, msgInvalidInput)
		return errRestart
	}
	match, err := contest.NewMatch(n)
	if err != nil {
		fmt.Fprintln(s.out, msgTooFewPlayers)
		s.log.Printf("[MATCH] rejected: %v", err)
		return errRestart
	}
	s.log.Printf("[MATCH] %s started with %d players", match.ID, n)

	for i := 1; i <= n; i++ {
		fmt.Fprintf(s.out, "Player %d, it's your turn!\n", i)
		rack, err := s.prompt.AskInt(promptMoneyBall, msgInvalidInput, ranged(contest.ValidateMoneyBallRack))
		if err != nil {
			return err
		}
		capability, err := s.prompt.AskInt(promptCapability, msgInvalidInput, ranged(contest.ValidateCapability))
		if err != nil {
			return err
		}

		round, err := match.Play(rack, capability, s.rng)
		if err != nil {
			return fmt.Errorf("match %s player %d: %w", match.ID, i, err)
		}
		RenderRound(s.out, round)
		s.logRound(match, rack, capability, round)
	}

	score, seat := match.Result().Highest()
	RenderHighest(s.out, score)
	s.log.Printf("[MATCH] %s finished: highest=%d first reached by player %d", match.ID, score, seat+1)
	return nil
}

func (s *Session) askPlayAgain() (bool, error) {
	for {
		line, err := s.prompt.Ask(promptPlayAgain)
		if err != nil {
			return false, err
		}
		again, err := ParseChoice(line)
		if err == nil {
			return again, nil
		}
		fmt.Fprintln(s.out, msgInvalidChoice)
	}
}

func (s *Session) logRound(m *contest.Match, rack, capability int, r contest.Round) {
	s.log.Printf("[MATCH] %s player %d capability=%d money_rack=%d total=%d",
		m.ID, r.Player, capability, rack, r.Total)
	if !s.Debug {
		return
	}
	for _, l := range r.Racks {
		s.log.Printf("[MATCH] %s player %d rack %d money=%v shots=%v score=%d",
			m.ID, r.Player, l.Rack.Position, l.Rack.MoneyBall, l.Rack.Shots, l.Score())
	}
}
