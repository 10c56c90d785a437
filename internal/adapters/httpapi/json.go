package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/rs/zerolog"
)

const maxRequestBytes = 1 << 16

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// readJSON decodes the request body into v. An empty body leaves v untouched.
func readJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps engine and session errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrUnknownDifficulty),
		errors.Is(err, domain.ErrGuessKindMismatch),
		errors.Is(err, domain.ErrInsufficientData),
		errors.Is(err, application.ErrInvalidChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoMoreRounds),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrNoActiveRound),
		errors.Is(err, domain.ErrRoundResolved):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error().Err(err).Msg("unhandled api error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
