package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rcview/internal/logging"
	"github.com/yaklabco/rcview/pkg/config"
	"github.com/yaklabco/rcview/pkg/report"
	"github.com/yaklabco/rcview/pkg/reportfile"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

type reportFlags struct {
	out string
}

func newReportCommand() *cobra.Command {
	var cfg config.Config
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report <report-file>",
		Short: "Emit a violation report as plain text",
		Long: `Render a DRC or ERC violation report as plain text, one finding per
block, suitable for sharing or CI logs.

Examples:
  rcview report drc.json                  # Print to stdout
  rcview report drc.json --out drc.rpt    # Write to a file
  rcview report drc.json --severity error # Errors only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&cfg.Severities, "severity", "",
		"severities to include: all or a comma list of error, warning, info, action")
	cmd.Flags().StringVar(&cfg.Units, "units", "", "coordinate units: mm, in, mils")
	cmd.Flags().IntSliceVar(&cfg.ExcludedCodes, "exclude-code", nil,
		"violation codes to load pre-excluded")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "write report to file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, path string, cliCfg *config.Config, flags *reportFlags) error {
	logger := logging.Default()

	finalCfg, err := resolveConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	dataset, err := loadDataset(path, finalCfg)
	if err != nil {
		return err
	}

	mask, err := finalCfg.SeverityMask()
	if err != nil {
		return fmt.Errorf("invalid severity filter: %w", err)
	}
	unitOpts, err := finalCfg.UnitOptions()
	if err != nil {
		return fmt.Errorf("invalid units: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
		logger.Debug("writing report", logging.FieldOutput, flags.out)
	}

	provider := dataset.Provider()
	provider.SetSeverityFilter(mask)

	// Accumulate through the buffer sink so head and tail lines land in
	// their places regardless of emission order.
	sink := &report.Buffer{}
	if err := emitReport(sink, dataset, provider, mask, unitOpts); err != nil {
		return err
	}
	if sink.HasMessage() {
		if _, err := fmt.Fprint(out, sink.String()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if ExitCodeFromStats(violation.Tally(provider)) != ExitSuccess {
		return ErrViolationsFound
	}
	return nil
}

// emitReport streams the report through the sink: a head line naming the
// source, one block per finding, and a tail line with the count.
func emitReport(sink report.Reporter, dataset *reportfile.Dataset, provider violation.Provider,
	mask severity.Mask, unitOpts units.Options) error {

	source := dataset.Source
	if source == "" {
		source = "rule check"
	}
	sink.ReportHead(fmt.Sprintf("** %s violation report **", source), severity.Info)

	count := provider.Count(mask)
	for i := 0; i < count; i++ {
		rec, err := provider.ItemAt(i)
		if err != nil {
			return fmt.Errorf("read finding %d: %w", i, err)
		}
		text := rec.ShowReport(unitOpts, dataset.Items)
		if rec.Excluded() {
			text = "[excluded] " + text
		}
		sink.Report(text, rec.Severity())
	}

	sink.ReportTail(fmt.Sprintf("** End of report, %d violations **", count), severity.Info)
	return nil
}
