package domain

import "fmt"

// MaxAttempts is the free-text budget per round in hard mode.
const MaxAttempts = 3

type Outcome struct {
	Final        bool
	Correct      bool
	AttemptsUsed int
	Stats        Stats
}

// AttemptController resolves rounds: hard-mode rounds allow MaxAttempts
// submissions and are committed on the first correct one or the last miss;
// easy-mode rounds are committed on the first submission.
type AttemptController struct {
	engine *RoundEngine
}

func NewAttemptController(engine *RoundEngine) *AttemptController {
	return &AttemptController{engine: engine}
}

func (c *AttemptController) MaxAttempts() int {
	if c.engine.Difficulty() == DifficultyEasy {
		return 1
	}
	return MaxAttempts
}

// AttemptsLeft is the number of submissions the current round still accepts.
func (c *AttemptController) AttemptsLeft() int {
	round := c.engine.current
	if round == nil || round.Resolved {
		return 0
	}
	return c.MaxAttempts() - round.AttemptsUsed
}

func (c *AttemptController) Submit(guess Guess) (Outcome, error) {
	round := c.engine.current
	if round == nil {
		return Outcome{}, ErrNoActiveRound
	}
	if round.Resolved {
		return Outcome{}, fmt.Errorf("submit to round %d: %w", round.Index, ErrRoundResolved)
	}

	correct, err := c.engine.Evaluate(guess)
	if err != nil {
		return Outcome{}, err
	}

	if correct || round.AttemptsUsed >= c.MaxAttempts()-1 {
		stats, err := c.engine.Commit(correct)
		if err != nil {
			return Outcome{}, err
		}
		round.AttemptsUsed++
		return Outcome{Final: true, Correct: correct, AttemptsUsed: round.AttemptsUsed, Stats: stats}, nil
	}

	round.AttemptsUsed++
	return Outcome{AttemptsUsed: round.AttemptsUsed, Stats: c.engine.Stats()}, nil
}
