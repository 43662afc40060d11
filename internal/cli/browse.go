package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rcview/internal/configloader"
	"github.com/yaklabco/rcview/internal/logging"
	"github.com/yaklabco/rcview/internal/ui/pretty"
	"github.com/yaklabco/rcview/internal/ui/treeview"
	"github.com/yaklabco/rcview/pkg/config"
	"github.com/yaklabco/rcview/pkg/reportfile"
	"github.com/yaklabco/rcview/pkg/tree"
	"github.com/yaklabco/rcview/pkg/violation"
)

// ErrViolationsFound is returned when the report contains unexcluded
// error-severity findings. It carries no message for the user; it only
// drives the exit code.
var ErrViolationsFound = errors.New("violations found")

type browseFlags struct {
	hideExcluded bool
}

func newBrowseCommand() *cobra.Command {
	var cfg config.Config
	flags := &browseFlags{}

	cmd := &cobra.Command{
		Use:   "browse <report-file>",
		Short: "Browse a violation report as a tree",
		Long: `Browse a DRC or ERC violation report.

Findings that share a board marker are grouped under a single tree node.
By default the tree is printed once; with --interactive an in-terminal
browser opens where findings can be folded, excluded, and deleted.

Examples:
  rcview browse drc.json                      # Print the violation tree
  rcview browse drc.json --interactive        # Open the tree browser
  rcview browse drc.json --severity error     # Errors only
  rcview browse erc.json --units mils         # Positions in mils`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args[0], &cfg, flags)
		},
	}

	addBrowseFlags(cmd, &cfg, flags)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command, cfg *config.Config, flags *browseFlags) {
	cmd.Flags().StringVar(&cfg.Severities, "severity", "",
		"severities to show: all or a comma list of error, warning, info, action")
	cmd.Flags().StringVar(&cfg.Units, "units", "", "coordinate units: mm, in, mils")
	cmd.Flags().IntSliceVar(&cfg.ExcludedCodes, "exclude-code", nil,
		"violation codes to load pre-excluded")
	cmd.Flags().BoolVarP(&cfg.Interactive, "interactive", "i", false,
		"open the interactive tree browser")
	cmd.Flags().BoolVar(&flags.hideExcluded, "hide-excluded", false,
		"drop excluded findings instead of de-emphasizing them")
}

func runBrowse(cmd *cobra.Command, path string, cliCfg *config.Config, flags *browseFlags) error {
	logger := logging.Default()

	finalCfg, err := resolveConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	if flags.hideExcluded {
		finalCfg.ShowExcluded = false
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

	provider := dataset.Provider()
	stats := violation.Tally(provider)

	logger.Debug("report loaded",
		logging.FieldPath, path,
		logging.FieldSource, dataset.Source,
		logging.FieldViolations, stats.Total,
		logging.FieldExcluded, stats.Excluded,
	)

	model := tree.New(tree.Options{
		Units: unitOpts,
		Items: dataset.Items,
	})
	model.SetProvider(provider)
	model.SetSeverityFilter(mask)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = string(config.ColorAuto)
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	if finalCfg.Interactive {
		if err := treeview.Run(model, provider, styles); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		rendered, err := styles.RenderTree(model, pretty.TerminalWidth(out))
		if err != nil {
			return fmt.Errorf("render tree: %w", err)
		}
		fmt.Fprint(out, rendered)
		fmt.Fprint(out, styles.FormatSummaryOneLine(stats))
	}

	// Re-tally: interactive sessions may have deleted or excluded findings.
	if ExitCodeFromStats(violation.Tally(provider)) != ExitSuccess {
		return ErrViolationsFound
	}
	return nil
}

// resolveConfig merges configuration from all sources below the CLI flags.
func resolveConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	logger := logging.Default()
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// loadDataset reads a report file and applies configured exclusions.
func loadDataset(path string, cfg *config.Config) (*reportfile.Dataset, error) {
	dataset, err := reportfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	for _, rec := range dataset.Records {
		if cfg.CodeExcluded(rec.Code()) {
			rec.SetExcluded(true)
		}
	}

	if !cfg.ShowExcluded {
		kept := dataset.Records[:0]
		for _, rec := range dataset.Records {
			if !rec.Excluded() {
				kept = append(kept, rec)
			}
		}
		dataset.Records = kept
	}

	return dataset, nil
}
