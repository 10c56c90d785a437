package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	roundadapter "github.com/bnema/geoquiz-cli/internal/adapters/render/round"
	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/spf13/cobra"
)

const quitCommand = "quit"

type playOptions struct {
	mode       string
	difficulty string
	region     string
	rounds     int
	delay      time.Duration
	seed       uint64
}

func newPlayCmd(app *app) *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a flags or capitals quiz in the terminal",
		Long:  "Play a quiz session. Easy rounds offer four numbered options and take one answer; hard rounds take free text with three attempts. Type quit to end early.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", string(domain.ModeFlags), "Game mode: flags or capitals")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", string(domain.DifficultyEasy), "Difficulty: easy or hard")
	cmd.Flags().StringVar(&opts.region, "region", "", "Restrict the pool to one region (see countries regions)")
	cmd.Flags().IntVar(&opts.rounds, "rounds", app.cfg.GetInt(gameRoundsKey), "Number of rounds")
	cmd.Flags().DurationVar(&opts.delay, "delay", app.cfg.GetDuration(gameRoundDelayKey), "Pause between rounds")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible session (0 picks a random one)")

	return cmd
}

func runPlay(cmd *cobra.Command, app *app, opts playOptions) error {
	mode, err := domain.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	difficulty, err := domain.ParseDifficulty(opts.difficulty)
	if err != nil {
		return err
	}
	if opts.rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", opts.rounds)
	}

	countries, err := app.countries.AllCountries(cmd.Context())
	if err != nil {
		return err
	}

	games := app.games
	if opts.seed != 0 {
		games = application.NewGameService(func() domain.Randomizer {
			return domain.NewSeededRandomizer(opts.seed)
		})
	}

	session, err := games.NewSession(countries, application.Settings{
		Mode:       mode,
		Difficulty: difficulty,
		Rounds:     opts.rounds,
		Region:     opts.region,
	})
	if err != nil {
		return err
	}
	app.logger.Debug().Str("session", session.ID()).Int("rounds", session.TotalRounds()).Msg("session started")

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	played := 0

	for session.HasNextRound() {
		round, err := session.NextRound()
		if err != nil {
			return err
		}
		quit, err := playRound(out, in, session, round)
		if err != nil {
			return err
		}
		if current, ok := session.Current(); ok && current.Resolved {
			played++
		}
		if quit {
			break
		}

		if session.HasNextRound() {
			if err := sleepContext(cmd.Context(), opts.delay); err != nil {
				return err
			}
		}
	}

	stats, err := session.End()
	if err != nil {
		return err
	}

	rendered, err := roundadapter.RenderSummary(roundadapter.SummaryView{
		Stats:       stats,
		Played:      played,
		TotalRounds: session.TotalRounds(),
	})
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}

// playRound prompts until the round is resolved. It reports quit when the
// player typed quit or input ran out.
func playRound(out io.Writer, in *bufio.Scanner, session *application.Session, round domain.Round) (bool, error) {
	settings := session.Settings()
	rendered, err := roundadapter.RenderRound(roundadapter.RoundView{
		Round:        round,
		Mode:         settings.Mode,
		Difficulty:   settings.Difficulty,
		TotalRounds:  session.TotalRounds(),
		Stats:        session.Stats(),
		AttemptsLeft: session.AttemptsLeft(),
		MaxAttempts:  session.MaxAttempts(),
	})
	if err != nil {
		return false, fmt.Errorf("render round: %w", err)
	}
	if _, err := fmt.Fprintln(out, "\n"+rendered); err != nil {
		return false, err
	}

	for {
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return false, err
		}
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			_, _ = fmt.Fprintln(out)
			return true, nil
		}

		line := strings.TrimSpace(in.Text())
		if strings.EqualFold(line, quitCommand) {
			return true, nil
		}
		if line == "" {
			continue
		}

		result, err := submitLine(session, round, line)
		if errors.Is(err, application.ErrInvalidChoice) {
			if _, err := fmt.Fprintf(out, "enter a number between 1 and %d\n", len(round.Options)); err != nil {
				return false, err
			}
			continue
		}
		if err != nil {
			return false, err
		}

		feedback, err := roundadapter.RenderFeedback(result, session.MaxAttempts())
		if err != nil {
			return false, fmt.Errorf("render feedback: %w", err)
		}
		if _, err := fmt.Fprintln(out, feedback); err != nil {
			return false, err
		}

		if result.Final {
			return false, nil
		}
	}
}

func submitLine(session *application.Session, round domain.Round, line string) (application.Result, error) {
	if session.Settings().Difficulty == domain.DifficultyHard {
		return session.Submit(domain.TextGuess(line))
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		return application.Result{}, fmt.Errorf("parse choice %q: %w", line, application.ErrInvalidChoice)
	}
	return session.SubmitOption(choice)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
