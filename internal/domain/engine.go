package domain

import "fmt"

const (
	DefaultRoundCount = 20
	OptionCount       = 4
	distractorCount   = OptionCount - 1
)

// RoundEngine builds the deck for one session, hands out rounds and checks
// guesses against the current target. It is not safe for concurrent use.
type RoundEngine struct {
	rng        Randomizer
	state      SessionState
	pool       []Country
	mode       Mode
	difficulty Difficulty
	deck       []Country
	next       int
	current    *Round
}

func NewRoundEngine(rng Randomizer) *RoundEngine {
	if rng == nil {
		rng = NewRandomizer()
	}

	return &RoundEngine{rng: rng, state: NewSessionState()}
}

// Start draws a new deck from pool and resets the score. A roundCount <= 0
// selects DefaultRoundCount; a pool smaller than roundCount yields fewer rounds.
func (e *RoundEngine) Start(pool []Country, mode Mode, difficulty Difficulty, roundCount int) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if !difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	if len(pool) == 0 {
		return fmt.Errorf("start session with empty pool: %w", ErrInsufficientData)
	}
	if difficulty == DifficultyEasy && distinctNames(pool) < OptionCount {
		return fmt.Errorf("easy mode needs %d distinct countries, got %d: %w", OptionCount, distinctNames(pool), ErrInsufficientData)
	}
	if roundCount <= 0 {
		roundCount = DefaultRoundCount
	}

	e.pool = make([]Country, len(pool))
	copy(e.pool, pool)

	deck := make([]Country, len(pool))
	copy(deck, pool)
	Shuffle(e.rng, deck)
	if roundCount < len(deck) {
		deck = deck[:roundCount]
	}

	e.deck = deck
	e.mode = mode
	e.difficulty = difficulty
	e.next = 0
	e.current = nil
	e.state.Start()

	return nil
}

func (e *RoundEngine) HasNextRound() bool {
	return e.state.Status() == SessionPlaying && e.next < len(e.deck)
}

// NextRound advances to the next deck entry. Any unresolved current round is discarded.
func (e *RoundEngine) NextRound() (Round, error) {
	if e.state.Status() != SessionPlaying {
		return Round{}, fmt.Errorf("next round in %s state: %w", e.state.Status(), ErrInvalidState)
	}
	if !e.HasNextRound() {
		return Round{}, fmt.Errorf("round %d of %d: %w", e.next+1, len(e.deck), ErrNoMoreRounds)
	}

	target := e.deck[e.next]
	round := Round{Index: e.next + 1, Target: target}

	if e.difficulty == DifficultyEasy {
		options, err := e.options(target)
		if err != nil {
			return Round{}, err
		}
		round.Options = options
	}

	e.next++
	e.current = &round

	return round.clone(), nil
}

func (e *RoundEngine) options(target Country) ([]Country, error) {
	candidates := make([]Country, 0, len(e.pool))
	seen := map[string]struct{}{target.Name: {}}
	for _, country := range e.pool {
		if _, ok := seen[country.Name]; ok {
			continue
		}
		seen[country.Name] = struct{}{}
		candidates = append(candidates, country)
	}

	if len(candidates) < distractorCount {
		return nil, fmt.Errorf("distractors for %q: %w", target.Name, ErrInsufficientData)
	}

	// Partial Fisher-Yates: only the first distractorCount slots need to be drawn.
	for i := 0; i < distractorCount; i++ {
		j := i + e.rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	options := make([]Country, 0, OptionCount)
	options = append(options, target)
	options = append(options, candidates[:distractorCount]...)
	Shuffle(e.rng, options)

	return options, nil
}

// Evaluate checks guess against the current round without touching score,
// streak or attempt counters.
func (e *RoundEngine) Evaluate(guess Guess) (bool, error) {
	if e.current == nil {
		return false, ErrNoActiveRound
	}
	if guess.Kind != e.difficulty.guessKind() {
		return false, fmt.Errorf("%s guess in %s mode: %w", guess.Kind, e.difficulty, ErrGuessKindMismatch)
	}

	target := e.current.Target
	if guess.Kind == GuessSelection {
		return guess.Selection.Name == target.Name, nil
	}

	return SameAnswer(guess.Text, e.mode.Answer(target)), nil
}

// Commit records the outcome of the current round and marks it resolved.
func (e *RoundEngine) Commit(correct bool) (Stats, error) {
	if e.current == nil {
		return Stats{}, ErrNoActiveRound
	}
	if e.current.Resolved {
		return Stats{}, fmt.Errorf("commit round %d: %w", e.current.Index, ErrRoundResolved)
	}

	stats, err := e.state.RecordOutcome(correct)
	if err != nil {
		return Stats{}, err
	}
	e.current.Resolved = true

	return stats, nil
}

func (e *RoundEngine) End() (Stats, error) {
	stats, err := e.state.End()
	if err != nil {
		return Stats{}, err
	}
	e.current = nil
	return stats, nil
}

// Current returns a copy of the round in progress, if any.
func (e *RoundEngine) Current() (Round, bool) {
	if e.current == nil {
		return Round{}, false
	}
	return e.current.clone(), true
}

func (e *RoundEngine) Stats() Stats { return e.state.Stats() }

func (e *RoundEngine) Status() SessionStatus { return e.state.Status() }

func (e *RoundEngine) Mode() Mode { return e.mode }

func (e *RoundEngine) Difficulty() Difficulty { return e.difficulty }

// TotalRounds is the deck size, which may be below the requested round count.
func (e *RoundEngine) TotalRounds() int { return len(e.deck) }

func distinctNames(countries []Country) int {
	seen := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		seen[country.Name] = struct{}{}
	}
	return len(seen)
}
