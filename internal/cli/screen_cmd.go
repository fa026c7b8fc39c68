package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/catalog"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/cli/formatter"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/navigation"
	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/repository"
)

func newRegionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions with their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			counts, err := app.Datasets.CountBy(ctx, repository.DimRegion)
			if err != nil {
				return err
			}
			byCode := countMap(counts)

			ds := app.Session.Dataset()
			var rows [][]string
			for _, code := range catalog.OrderRegions(catalog.Distinct(ds.Records(), catalog.RegionOf)) {
				projects := catalog.Distinct(ds.Where(domain.Match{Region: code}), catalog.ProjectOf)
				rows = append(rows, []string{
					code,
					domain.RegionDisplayName(code),
					strconv.Itoa(len(projects)),
					strconv.Itoa(byCode[code]),
				})
			}
			return printScreen(cmd, formatter.RenderTable(
				[]string{"CODE", "REGION", "PROJECTS", "RECORDS"}, rows,
				formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight))
		},
	}
}

func newStaffCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "staff",
		Short: "List recruitment staff with their regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			counts, err := app.Datasets.CountBy(ctx, repository.DimStaff)
			if err != nil {
				return err
			}
			byName := countMap(counts)

			ds := app.Session.Dataset()
			var rows [][]string
			for _, name := range catalog.OrderStaff(catalog.Distinct(ds.Records(), catalog.StaffOf)) {
				regions := catalog.OrderRegions(catalog.Distinct(ds.Where(domain.Match{StaffLead: name}), catalog.RegionOf))
				rows = append(rows, []string{name, strings.Join(regions, ", "), strconv.Itoa(byName[name])})
			}
			return printScreen(cmd, formatter.RenderTable(
				[]string{"STAFF", "REGIONS", "RECORDS"}, rows,
				formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight))
		},
	}
}

func newRegionCmd(app *App) *cobra.Command {
	var project, subdivision string

	cmd := &cobra.Command{
		Use:   "region <code>",
		Short: "Show a region screen",
		Long:  "Show the projects of a region. Open a project with --project and one of its sub-divisions with --subdivision.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			ds := app.Session.Dataset()
			regions := catalog.OrderRegions(catalog.Distinct(ds.Records(), catalog.RegionOf))
			code, ok := resolveName(args[0], regions, domain.RegionDisplayName)
			if !ok {
				return unknownNameError("region", args[0], regions)
			}

			events := []navigation.Event{navigation.RegionSelected{Region: code}}
			if project != "" {
				events = append(events, navigation.ProjectToggled{Project: project})
			}
			if subdivision != "" {
				if project == "" {
					return fmt.Errorf("--subdivision needs --project")
				}
				events = append(events, navigation.SubdivisionToggled{Subdivision: subdivision})
			}
			for _, ev := range events {
				app.Session.Dispatch(ctx, ev)
			}
			return printScreen(cmd, formatter.FormatScreen(app.Session.Model()))
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "open this project")
	cmd.Flags().StringVar(&subdivision, "subdivision", "", "open this sub-division of --project")
	return cmd
}

func newStaffMemberCmd(app *App) *cobra.Command {
	var open string

	cmd := &cobra.Command{
		Use:   "staff-member <name>",
		Short: "Show a recruitment staff screen",
		Long: "Show everything a staff member manages. Open a group with --open REGION/PROJECT " +
			"for a simple project or --open REGION/PROJECT/SUB_DIVISION.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			ds := app.Session.Dataset()
			staff := catalog.OrderStaff(catalog.Distinct(ds.Records(), catalog.StaffOf))
			name, ok := resolveName(args[0], staff, nil)
			if !ok {
				return unknownNameError("staff member", args[0], staff)
			}

			app.Session.Dispatch(ctx, navigation.StaffSelected{Staff: name})
			if open != "" {
				key, err := parseGroupKey(open)
				if err != nil {
					return err
				}
				app.Session.Dispatch(ctx, navigation.StaffGroupToggled{Key: key})
			}
			return printScreen(cmd, formatter.FormatScreen(app.Session.Model()))
		},
	}
	cmd.Flags().StringVar(&open, "open", "", "open a group: REGION/PROJECT or REGION/PROJECT/SUB_DIVISION")
	return cmd
}

// parseGroupKey reads REGION/PROJECT (a simple project) or
// REGION/PROJECT/SUB_DIVISION.
func parseGroupKey(s string) (navigation.GroupKey, error) {
	parts := strings.Split(s, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return navigation.GroupKey{}, fmt.Errorf("invalid group %q: empty segment", s)
		}
	}
	switch len(parts) {
	case 2:
		return navigation.SimpleKey(parts[0], parts[1]), nil
	case 3:
		return navigation.GroupKey{Region: parts[0], Project: parts[1], SubDivision: parts[2]}, nil
	}
	return navigation.GroupKey{}, fmt.Errorf("invalid group %q: want REGION/PROJECT or REGION/PROJECT/SUB_DIVISION", s)
}

func countMap(counts []repository.Count) map[string]int {
	m := make(map[string]int, len(counts))
	for _, c := range counts {
		m[c.Value] = c.Count
	}
	return m
}
