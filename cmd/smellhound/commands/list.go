package commands

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/smellhound/internal/registry"
)

// ListCommand holds the flags for the list command.
type ListCommand struct {
	noColor bool
}

// NewListCommand creates and configures the list command.
func NewListCommand() *cobra.Command {
	cmd := &ListCommand{}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the analyzer catalog",
		Long:  "Show every pattern and metric code, its display name, and its default exclusion state",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Run(os.Stdout)
		},
	}

	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run renders the catalog tables.
func (c *ListCommand) Run(writer io.Writer) error {
	if c.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	reg, err := registry.Default()
	if err != nil {
		return err
	}

	renderCatalog(writer, "Patterns", patternRows(reg))
	renderCatalog(writer, "Metrics", metricRows(reg))

	return nil
}

type catalogRow struct {
	code     string
	name     string
	excluded bool
}

func patternRows(reg *registry.Registry) []catalogRow {
	excluded := toSet(reg.PatternsExclude())

	entries := reg.Patterns()
	rows := make([]catalogRow, 0, len(entries))

	for _, entry := range entries {
		_, isExcluded := excluded[entry.Code]
		rows = append(rows, catalogRow{code: entry.Code, name: entry.Name, excluded: isExcluded})
	}

	return rows
}

func metricRows(reg *registry.Registry) []catalogRow {
	excluded := toSet(reg.MetricsExclude())

	entries := reg.Metrics()
	rows := make([]catalogRow, 0, len(entries))

	for _, entry := range entries {
		_, isExcluded := excluded[entry.Code]
		rows = append(rows, catalogRow{code: entry.Code, name: entry.Name, excluded: isExcluded})
	}

	return rows
}

func renderCatalog(writer io.Writer, title string, rows []catalogRow) {
	tableWriter := table.NewWriter()
	tableWriter.SetOutputMirror(writer)
	tableWriter.SetTitle(title)
	tableWriter.AppendHeader(table.Row{"Code", "Name", "Default"})

	enabled := color.New(color.FgGreen).Sprint("on")
	disabled := color.New(color.FgYellow).Sprint("off")

	for _, row := range rows {
		state := enabled
		if row.excluded {
			state = disabled
		}

		tableWriter.AppendRow(table.Row{row.code, row.name, state})
	}

	tableWriter.SetStyle(table.StyleLight)
	tableWriter.Render()
}

func toSet(codes []string) map[string]struct{} {
	codeSet := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		codeSet[code] = struct{}{}
	}

	return codeSet
}
