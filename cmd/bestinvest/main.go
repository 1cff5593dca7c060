package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/marketdata"
	"github.com/rgehrsitz/bestinvest/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bestinvest %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Version
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "bestinvest",
	Short: "Mortgage prepayment vs investing calculator",
	Long: `Compare paying down a mortgage with a lump sum against investing the same
amount in a set of assets under conservative, moderate and aggressive
market conditions, on an after-tax basis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// engineFor builds a compare engine that logs through the command's flags
func engineFor(cmd *cobra.Command) (*compare.CompareEngine, error) {
	debugMode, _ := cmd.Flags().GetBool("debug")
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := newLogger(cmd.ErrOrStderr(), level, debugMode)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	return compare.NewCompareEngine(engine), nil
}

// loadConfiguration reads the input file, or the defaults when no file is given
func loadConfiguration(parser *config.InputParser, args []string) (*domain.Configuration, error) {
	if len(args) == 0 {
		cfg := domain.DefaultConfiguration()
		return &cfg, nil
	}
	return parser.LoadFromFile(args[0])
}

// loadDataset resolves --assets over the file's assets_file and reports a
// fallback to the embedded dataset on stderr
func loadDataset(cmd *cobra.Command, cfg *domain.Configuration) *marketdata.Dataset {
	path, _ := cmd.Flags().GetString("assets")
	if path == "" {
		path = cfg.Investment.AssetsFile
	}
	ds, err := marketdata.LoadOrEmbedded(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing the embedded asset dataset.\n", err)
	}
	return ds
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Compare mortgage prepayment against every asset and scenario",
	Long: `Compare mortgage prepayment against every asset and scenario.

Examples:
  bestinvest calculate examples/input.yaml
  bestinvest calculate examples/input.toml --scenario aggressive --format html --save
  bestinvest calculate --format csv --out report.csv
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := loadConfiguration(parser, args)
		if err != nil {
			return err
		}

		if name, _ := cmd.Flags().GetString("scenario"); name != "" {
			s, ok := domain.ParseScenario(strings.ToLower(name))
			if !ok {
				return fmt.Errorf("unknown scenario %q (valid: conservative, moderate, aggressive)", name)
			}
			cfg.ViewScenario = string(s)
		}

		engine, err := engineFor(cmd)
		if err != nil {
			return err
		}
		result, err := engine.CompareConfiguration(context.Background(), parser, cfg, loadDataset(cmd, cfg))
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		allScenarios, _ := cmd.Flags().GetBool("all-scenarios")

		var data []byte
		f := output.GetFormatterByName(formatName)
		switch {
		case allScenarios:
			data = []byte((&compare.TableFormatter{Scenarios: domain.AllScenarios}).Format(result))
		case f == nil:
			return fmt.Errorf("unknown output format: %s (valid: %s)", formatName, strings.Join(output.AvailableFormatterNames(), ", "))
		default:
			if data, err = f.Format(result); err != nil {
				return err
			}
		}

		if save, _ := cmd.Flags().GetBool("save"); save && f != nil {
			name, err := output.WriteFormatted(f, result, output.Extension(f))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
			return nil
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init [output-file]",
	Short: "Write a configuration file with the default inputs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "input.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		if _, err := os.Stat(filename); err == nil {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
			}
		}

		cfg := domain.DefaultConfiguration()
		if err := output.SaveConfiguration(&cfg, filename); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", filename)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of calculation stages")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	calculateCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	calculateCmd.Flags().StringP("scenario", "s", "", "Scenario tab for the detailed breakdown (conservative, moderate, aggressive)")
	calculateCmd.Flags().String("assets", "", "Path to the asset dataset JSON (default: embedded dataset)")
	calculateCmd.Flags().StringP("out", "o", "", "Write the report to this file instead of stdout")
	calculateCmd.Flags().Bool("save", false, "Write the report to a timestamped file in the working directory")
	calculateCmd.Flags().Bool("all-scenarios", false, "Print the ranked table with a breakdown for every scenario")

	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(irrCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
