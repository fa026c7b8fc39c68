package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/catalog"
)

// exportDoc is the document written by the export command.
type exportDoc struct {
	Source   string               `yaml:"source" json:"source"`
	LoadedAt *time.Time           `yaml:"loaded_at,omitempty" json:"loaded_at,omitempty"`
	Records  int                  `yaml:"records" json:"records"`
	Regions  []catalog.RegionNode `yaml:"regions" json:"regions"`
}

func newExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset grouped by region, project and sub-division",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.ensureLoaded(ctx); err != nil {
				return err
			}
			ds := app.Session.Dataset()
			doc := exportDoc{Records: ds.Len(), Regions: catalog.Tree(ds)}
			load, err := latestLoad(ctx, app)
			if err != nil {
				return err
			}
			if load != nil {
				doc.Source = load.Source
				doc.LoadedAt = &load.LoadedAt
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return writeExport(w, strings.ToLower(format), doc)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q (want yaml or json)", format)
}
