package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	roundadapter "github.com/bnema/geoquiz-cli/internal/adapters/render/round"
	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCountriesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Inspect and manage the cached country list",
	}

	cmd.AddCommand(
		newCountriesListCmd(app),
		newCountriesRegionsCmd(app),
		newCountriesRefreshCmd(app),
		newCountriesClearCmd(app),
	)

	return cmd
}

func newCountriesListCmd(app *app) *cobra.Command {
	var region string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List playable countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries, err := app.countries.AllCountries(cmd.Context())
			if err != nil {
				return err
			}
			countries = application.FilterByRegion(countries, region)

			return writeCountriesOutput(cmd, countries, asJSON)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Only list countries in this region (e.g. Europe)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCountriesRegionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions accepted by --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries, err := app.countries.AllCountries(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(application.Regions(countries), "\n"))
			return err
		},
	}
}

func newCountriesRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch countries from upstream and rewrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var countries []domain.Country
			err := runCountriesFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching countries...", func(ctx context.Context) error {
				var err error
				countries, err = app.countries.Refresh(ctx)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d countries into %s\n", len(countries), app.cache.Path())
			return err
		},
	}
}

func newCountriesClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the countries cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.countries.ClearCache(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", app.cache.Path())
			return err
		},
	}
}

func writeCountriesOutput(cmd *cobra.Command, countries []domain.Country, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(countries)
	}

	rendered, err := roundadapter.RenderCountries(countries)
	if err != nil {
		return fmt.Errorf("render countries: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
