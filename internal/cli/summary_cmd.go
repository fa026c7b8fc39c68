package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dataset totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			summary, err := app.Datasets.Summary(ctx)
			if err != nil {
				return err
			}
			byRegion, err := app.Datasets.CountBy(ctx, repository.DimRegion)
			if err != nil {
				return err
			}
			load, err := latestLoad(ctx, app)
			if err != nil {
				return err
			}
			return printScreen(cmd, formatter.FormatSummary(summary, byRegion, load)+"\n")
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown recruitment report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			data, err := reportData(ctx, app)
			if err != nil {
				return err
			}
			md := formatter.ReportMarkdown(data)
			if raw {
				return printScreen(cmd, md)
			}

			termWidth, styled := terminalWidth(cmd.OutOrStdout())
			if width <= 0 {
				width = termWidth
			}
			out, err := formatter.RenderMarkdown(md, width, styled)
			if err != nil {
				return err
			}
			return printScreen(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width (default terminal width or 80)")
	return cmd
}

func reportData(ctx context.Context, app *App) (formatter.ReportData, error) {
	var d formatter.ReportData
	var err error
	if d.Summary, err = app.Datasets.Summary(ctx); err != nil {
		return d, err
	}
	if d.ByRegion, err = app.Datasets.CountBy(ctx, repository.DimRegion); err != nil {
		return d, err
	}
	if d.ByStaff, err = app.Datasets.CountBy(ctx, repository.DimStaff); err != nil {
		return d, err
	}
	if d.Vacancies, err = app.Datasets.Vacancies(ctx); err != nil {
		return d, err
	}
	if d.Load, err = latestLoad(ctx, app); err != nil {
		return d, err
	}
	return d, nil
}

// latestLoad returns the newest load record, or nil when none is stored.
func latestLoad(ctx context.Context, app *App) (*domain.DatasetLoad, error) {
	load, err := app.Datasets.LatestLoad(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading latest load: %w", err)
	}
	return load, nil
}
