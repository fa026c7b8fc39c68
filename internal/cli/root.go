package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/catalog"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/service"
)

// App holds the services used by CLI commands and the TUI.
type App struct {
	Datasets service.DatasetService
	Session  *service.Session

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the TUI when it returns true.
	IsInteractive func() bool
}

// ensureLoaded starts the session on first use.
func (a *App) ensureLoaded(ctx context.Context) error {
	if a.Session.Loaded() {
		return nil
	}
	_, err := a.Session.Start(ctx)
	return err
}

// NewRootCmd creates the top-level "recruitdash" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "recruitdash",
		Short:         "Company recruitment dashboard",
		Long:          "Browse open positions by region and by recruitment staff.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBrowse(cmd, app)
			}
			return runScreen(cmd, app)
		},
	}

	root.AddCommand(
		newBrowseCmd(app),
		newRegionsCmd(app),
		newStaffCmd(app),
		newRegionCmd(app),
		newStaffMemberCmd(app),
		newSummaryCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}

// resolveName matches arg against candidates exactly, then case-insensitively,
// then against display names.
func resolveName(arg string, candidates []string, display func(string) string) (string, bool) {
	arg = strings.TrimSpace(arg)
	for _, c := range candidates {
		if c == arg {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c, arg) || (display != nil && strings.EqualFold(display(c), arg)) {
			return c, true
		}
	}
	return "", false
}

func unknownNameError(kind, arg string, candidates []string) error {
	return fmt.Errorf("unknown %s %q (have: %s)", kind, arg, catalog.FormatList(candidates, "none"))
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, true
	}
	return width, true
}

func printScreen(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), s)
	return err
}

func runScreen(cmd *cobra.Command, app *App) error {
	if err := app.ensureLoaded(cmd.Context()); err != nil {
		return err
	}
	return printScreen(cmd, formatter.FormatScreen(app.Session.Model()))
}
