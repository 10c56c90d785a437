package domain

import "errors"

var (
	ErrInsufficientData  = errors.New("insufficient country data")
	ErrNoMoreRounds      = errors.New("no more rounds")
	ErrInvalidState      = errors.New("invalid session state")
	ErrNoActiveRound     = errors.New("no active round")
	ErrRoundResolved     = errors.New("round already resolved")
	ErrGuessKindMismatch = errors.New("guess kind does not match difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrCacheMiss         = errors.New("countries cache miss")
	ErrCacheCorrupt      = errors.New("countries cache corrupt")
)
