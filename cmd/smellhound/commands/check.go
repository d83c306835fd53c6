package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/smellhound/internal/harness"
	"github.com/Sumatoshi-tech/smellhound/internal/registry"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

// Output format values.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// CheckCommand holds the flags for the check command.
type CheckCommand struct {
	only    []string
	without []string
	format  string
	output  string
	timeout time.Duration
	workers int
	verbose bool
	noColor bool
}

// NewCheckCommand creates and configures the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &CheckCommand{}

	cobraCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run the analyzer working set against a UAST document",
		Long: "Run the selected pattern and metric working set against a serialized " +
			"UAST document read from a file or stdin (-)",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			inputPath := "-"
			if len(args) == 1 {
				inputPath = args[0]
			}

			return cmd.Run(inputPath)
		},
	}

	cobraCmd.Flags().StringSliceVar(&cmd.only, "only", nil,
		"Run exactly these codes, overriding default exclusions (comma-separated)")
	cobraCmd.Flags().StringSliceVar(&cmd.without, "without", nil,
		"Drop these codes from the default working set (comma-separated)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", formatText, "Output format: text, json, or yaml")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().DurationVar(&cmd.timeout, "timeout", 0, "Overall analysis deadline (0 = none)")
	cobraCmd.Flags().IntVar(&cmd.workers, "workers", 0, "Parallel analyzer invocations (0 = NumCPU)")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Log working set details to stderr")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the check command.
func (c *CheckCommand) Run(inputPath string) error {
	if c.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, c.logOptions()))

	root, err := c.loadDocument(inputPath)
	if err != nil {
		return err
	}

	reg, err := registry.Default()
	if err != nil {
		return err
	}

	patternReq, metricReq := splitRequest(c.only, c.without)

	ctx := context.Background()

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	runner := &harness.Runner{Workers: c.workers}

	started := time.Now()

	report, err := runner.Run(ctx, reg, patternReq, metricReq, root)
	if err != nil {
		return err
	}

	logger.Debug("analysis complete",
		"patterns", len(report.Patterns),
		"metrics", len(report.Metrics),
		"elapsed", time.Since(started))

	writer, closeWriter, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeWriter()

	return c.render(writer, report)
}

func (c *CheckCommand) logOptions() *slog.HandlerOptions {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	return &slog.HandlerOptions{Level: level}
}

func (c *CheckCommand) loadDocument(inputPath string) (*node.Node, error) {
	if inputPath == "-" {
		return node.Load(os.Stdin)
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	return node.Load(inputFile)
}

func (c *CheckCommand) openOutput() (io.Writer, func(), error) {
	if c.output == "" {
		return os.Stdout, func() {}, nil
	}

	outputFile, err := os.Create(c.output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return outputFile, func() { _ = outputFile.Close() }, nil
}

// splitRequest routes selection codes to their namespace by prefix: P codes
// address the pattern catalog, everything else the metric catalog. Unknown
// codes surface as selection errors in their namespace.
func splitRequest(only, without []string) (patternReq, metricReq registry.Request) {
	for _, code := range only {
		if strings.HasPrefix(code, "P") {
			patternReq.Only = append(patternReq.Only, code)
		} else {
			metricReq.Only = append(metricReq.Only, code)
		}
	}

	for _, code := range without {
		if strings.HasPrefix(code, "P") {
			patternReq.Without = append(patternReq.Without, code)
		} else {
			metricReq.Without = append(metricReq.Without, code)
		}
	}

	// A namespace with an Only list runs exactly those codes; a namespace
	// the request never names keeps its default selection.
	return patternReq, metricReq
}

type patternView struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Lines []int  `json:"lines" yaml:"lines"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type metricView struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type reportView struct {
	Patterns []patternView `json:"patterns" yaml:"patterns"`
	Metrics  []metricView  `json:"metrics" yaml:"metrics"`
}

func (c *CheckCommand) render(writer io.Writer, report *harness.Report) error {
	view := buildView(report)

	switch c.format {
	case formatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")

		return encoder.Encode(view)
	case formatYAML:
		encoder := yaml.NewEncoder(writer)
		defer encoder.Close()

		return encoder.Encode(view)
	case formatText:
		renderText(writer, view)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.format)
	}
}

func buildView(report *harness.Report) reportView {
	view := reportView{
		Patterns: make([]patternView, 0, len(report.Patterns)),
		Metrics:  make([]metricView, 0, len(report.Metrics)),
	}

	for _, result := range report.Patterns {
		item := patternView{Code: result.Code, Name: result.Name, Lines: result.Lines}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}

		view.Patterns = append(view.Patterns, item)
	}

	for _, result := range report.Metrics {
		item := metricView{Code: result.Code, Name: result.Name, Score: result.Score}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}

		view.Metrics = append(view.Metrics, item)
	}

	return view
}

func renderText(writer io.Writer, view reportView) {
	codeColor := color.New(color.FgCyan)
	failColor := color.New(color.FgRed)

	findings := 0

	for _, item := range view.Patterns {
		switch {
		case item.Error != "":
			failColor.Fprintf(writer, "%s %s: %s\n", item.Code, item.Name, item.Error)
		case len(item.Lines) > 0:
			findings += len(item.Lines)

			codeColor.Fprintf(writer, "%s", item.Code)
			fmt.Fprintf(writer, " %s: lines %s\n", item.Name, joinLines(item.Lines))
		}
	}

	for _, item := range view.Metrics {
		if item.Error != "" {
			failColor.Fprintf(writer, "%s %s: %s\n", item.Code, item.Name, item.Error)

			continue
		}

		codeColor.Fprintf(writer, "%s", item.Code)
		fmt.Fprintf(writer, " %s: %d\n", item.Name, item.Score)
	}

	fmt.Fprintf(writer, "\n%s pattern findings across %s codes\n",
		humanize.Comma(int64(findings)), humanize.Comma(int64(len(view.Patterns))))
}

func joinLines(lines []int) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%d", line))
	}

	return strings.Join(parts, ", ")
}
