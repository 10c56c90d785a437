package httpapi

import (
	"net/http"
	"strings"

	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type createSessionRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
	Rounds     int    `json:"rounds"`
	Region     string `json:"region"`
}

type guessRequest struct {
	Choice *int    `json:"choice"`
	Text   *string `json:"text"`
}

type sessionResponse struct {
	ID           string         `json:"id"`
	Mode         string         `json:"mode"`
	Difficulty   string         `json:"difficulty"`
	Region       string         `json:"region,omitempty"`
	TotalRounds  int            `json:"total_rounds"`
	Status       string         `json:"status"`
	Score        int            `json:"score"`
	Streak       int            `json:"streak"`
	HasNextRound bool           `json:"has_next_round"`
	Round        *roundResponse `json:"round,omitempty"`
}

type roundResponse struct {
	Index        int              `json:"index"`
	TotalRounds  int              `json:"total_rounds"`
	FlagURL      string           `json:"flag_url,omitempty"`
	Country      string           `json:"country,omitempty"`
	Options      []optionResponse `json:"options,omitempty"`
	AttemptsLeft int              `json:"attempts_left"`
	MaxAttempts  int              `json:"max_attempts"`
	Resolved     bool             `json:"resolved"`
}

type optionResponse struct {
	Choice int    `json:"choice"`
	Label  string `json:"label"`
}

type guessResponse struct {
	Correct       bool   `json:"correct"`
	Final         bool   `json:"final"`
	AttemptsUsed  int    `json:"attempts_used"`
	AttemptsLeft  int    `json:"attempts_left"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Score         int    `json:"score"`
	Streak        int    `json:"streak"`
	HasNextRound  bool   `json:"has_next_round"`
}

type statsResponse struct {
	Score  int `json:"score"`
	Streak int `json:"streak"`
}

func handleHealth(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": sessions.Len(),
		})
	}
}

func handleCreateSession(logger zerolog.Logger, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Mode == "" {
			req.Mode = string(domain.ModeFlags)
		}
		if req.Difficulty == "" {
			req.Difficulty = string(domain.DifficultyEasy)
		}
		if req.Rounds < 0 {
			writeError(w, http.StatusBadRequest, "rounds must not be negative")
			return
		}

		mode, err := domain.ParseMode(req.Mode)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		difficulty, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		countries, err := deps.Countries.AllCountries(r.Context())
		if err != nil {
			logger.Error().Err(err).Msg("load countries")
			writeError(w, http.StatusServiceUnavailable, "countries unavailable")
			return
		}

		session, err := deps.Games.NewSession(countries, application.Settings{
			Mode:       mode,
			Difficulty: difficulty,
			Rounds:     req.Rounds,
			Region:     strings.TrimSpace(req.Region),
		})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		deps.Sessions.Put(session)

		logger.Debug().Str("session", session.ID()).Str("mode", string(mode)).Str("difficulty", string(difficulty)).Msg("session created")
		writeJSON(w, http.StatusCreated, toSessionResponse(session))
	}
}

func handleGetSession(logger zerolog.Logger, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp sessionResponse
		err := sessions.With(chi.URLParam(r, "id"), func(session *application.Session) error {
			resp = toSessionResponse(session)
			return nil
		})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleNextRound(logger zerolog.Logger, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp roundResponse
		err := sessions.With(chi.URLParam(r, "id"), func(session *application.Session) error {
			round, err := session.NextRound()
			if err != nil {
				return err
			}
			resp = toRoundResponse(session, round)
			return nil
		})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleGuess(logger zerolog.Logger, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req guessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if (req.Choice == nil) == (req.Text == nil) {
			writeError(w, http.StatusBadRequest, "exactly one of choice or text is required")
			return
		}

		var resp guessResponse
		err := sessions.With(chi.URLParam(r, "id"), func(session *application.Session) error {
			var (
				result application.Result
				err    error
			)
			if req.Choice != nil {
				result, err = session.SubmitOption(*req.Choice)
			} else {
				result, err = session.Submit(domain.TextGuess(*req.Text))
			}
			if err != nil {
				return err
			}

			resp = guessResponse{
				Correct:       result.Correct,
				Final:         result.Final,
				AttemptsUsed:  result.AttemptsUsed,
				AttemptsLeft:  result.AttemptsLeft,
				Points:        result.Points,
				CorrectAnswer: result.CorrectAnswer,
				Score:         result.Stats.Score,
				Streak:        result.Stats.Streak,
				HasNextRound:  session.HasNextRound(),
			}
			return nil
		})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleEndSession(logger zerolog.Logger, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var resp statsResponse
		err := sessions.With(id, func(session *application.Session) error {
			stats, err := session.End()
			if err != nil {
				return err
			}
			resp = statsResponse{Score: stats.Score, Streak: stats.Streak}
			return nil
		})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		sessions.Delete(id)

		writeJSON(w, http.StatusOK, resp)
	}
}

func toSessionResponse(session *application.Session) sessionResponse {
	settings := session.Settings()
	stats := session.Stats()
	resp := sessionResponse{
		ID:           session.ID(),
		Mode:         string(settings.Mode),
		Difficulty:   string(settings.Difficulty),
		Region:       settings.Region,
		TotalRounds:  session.TotalRounds(),
		Status:       string(session.Status()),
		Score:        stats.Score,
		Streak:       stats.Streak,
		HasNextRound: session.HasNextRound(),
	}
	if round, ok := session.Current(); ok {
		roundResp := toRoundResponse(session, round)
		resp.Round = &roundResp
	}
	return resp
}

// toRoundResponse never exposes the target's name in flags mode or its
// capital in capitals mode.
func toRoundResponse(session *application.Session, round domain.Round) roundResponse {
	settings := session.Settings()
	resp := roundResponse{
		Index:        round.Index,
		TotalRounds:  session.TotalRounds(),
		FlagURL:      round.Target.FlagURL,
		AttemptsLeft: session.AttemptsLeft(),
		MaxAttempts:  session.MaxAttempts(),
		Resolved:     round.Resolved,
	}
	if settings.Mode == domain.ModeCapitals {
		resp.Country = round.Target.Name
	}
	for i, option := range round.Options {
		resp.Options = append(resp.Options, optionResponse{Choice: i + 1, Label: settings.Mode.Answer(option)})
	}
	return resp
}
