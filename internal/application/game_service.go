package application

import (
	"errors"
	"fmt"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/google/uuid"
)

var ErrInvalidChoice = errors.New("invalid option choice")

type Settings struct {
	Mode       domain.Mode
	Difficulty domain.Difficulty
	Rounds     int
	Region     string
}

// RandomizerFactory returns the randomness source for a new session.
type RandomizerFactory func() domain.Randomizer

type GameService struct {
	newRandomizer RandomizerFactory
	newID         func() string
}

func NewGameService(newRandomizer RandomizerFactory) *GameService {
	if newRandomizer == nil {
		newRandomizer = domain.NewRandomizer
	}

	return &GameService{
		newRandomizer: newRandomizer,
		newID:         uuid.NewString,
	}
}

// NewSession filters pool by settings.Region and starts a session over it.
func (g *GameService) NewSession(pool []domain.Country, settings Settings) (*Session, error) {
	pool = FilterByRegion(pool, settings.Region)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no countries in region %q: %w", settings.Region, domain.ErrInsufficientData)
	}

	engine := domain.NewRoundEngine(g.newRandomizer())
	if err := engine.Start(pool, settings.Mode, settings.Difficulty, settings.Rounds); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	settings.Rounds = engine.TotalRounds()

	return &Session{
		id:       g.newID(),
		settings: settings,
		engine:   engine,
		attempts: domain.NewAttemptController(engine),
	}, nil
}

// Result is what a caller needs to render after one submission.
type Result struct {
	domain.Outcome
	// CorrectAnswer is only set once the round is final.
	CorrectAnswer string
	AttemptsLeft  int
	Points        int
}

// Session wraps one RoundEngine and its AttemptController. It is not safe for
// concurrent use; callers serialize access.
type Session struct {
	id       string
	settings Settings
	engine   *domain.RoundEngine
	attempts *domain.AttemptController
}

func (s *Session) ID() string { return s.id }

func (s *Session) Settings() Settings { return s.settings }

func (s *Session) HasNextRound() bool { return s.engine.HasNextRound() }

func (s *Session) NextRound() (domain.Round, error) {
	return s.engine.NextRound()
}

func (s *Session) Current() (domain.Round, bool) {
	return s.engine.Current()
}

func (s *Session) Stats() domain.Stats { return s.engine.Stats() }

func (s *Session) Status() domain.SessionStatus { return s.engine.Status() }

func (s *Session) TotalRounds() int { return s.engine.TotalRounds() }

func (s *Session) MaxAttempts() int { return s.attempts.MaxAttempts() }

func (s *Session) AttemptsLeft() int { return s.attempts.AttemptsLeft() }

func (s *Session) Submit(guess domain.Guess) (Result, error) {
	before := s.engine.Stats()

	outcome, err := s.attempts.Submit(guess)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Outcome:      outcome,
		AttemptsLeft: s.attempts.AttemptsLeft(),
	}
	if outcome.Final {
		round, _ := s.engine.Current()
		result.CorrectAnswer = s.settings.Mode.Answer(round.Target)
		result.Points = outcome.Stats.Score - before.Score
	}

	return result, nil
}

// SubmitOption resolves an easy-mode choice given as a 1-based option number.
func (s *Session) SubmitOption(choice int) (Result, error) {
	round, ok := s.engine.Current()
	if !ok {
		return Result{}, domain.ErrNoActiveRound
	}
	if choice < 1 || choice > len(round.Options) {
		return Result{}, fmt.Errorf("choice %d out of range 1-%d: %w", choice, len(round.Options), ErrInvalidChoice)
	}

	return s.Submit(domain.SelectionGuess(round.Options[choice-1]))
}

func (s *Session) End() (domain.Stats, error) {
	return s.engine.End()
}
