package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/output"
)

const defaultShareBaseURL = "http://localhost:8080/"

var shareCmd = &cobra.Command{
	Use:   "share [input-file]",
	Short: "Print a shareable link for the inputs, or decode one",
	Long: `Print a shareable link for the inputs, or decode one.

Examples:
  bestinvest share examples/input.yaml
  bestinvest share --decode "balance=250000&rate=5.5&amount=10000" --out input.yaml
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()

		if query, _ := cmd.Flags().GetString("decode"); query != "" {
			cfg := domain.DefaultConfiguration()
			if err := config.ApplyQuery(&cfg, query); err != nil {
				return err
			}
			if err := parser.ValidateConfiguration(&cfg); err != nil {
				return fmt.Errorf("shared inputs are invalid: %w", err)
			}
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				if err := output.SaveConfiguration(&cfg, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", out)
				return nil
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(&cfg); err != nil {
				return err
			}
			return enc.Close()
		}

		cfg, err := loadConfiguration(parser, args)
		if err != nil {
			return err
		}
		baseURL, _ := cmd.Flags().GetString("base-url")
		fmt.Fprintln(cmd.OutOrStdout(), config.ShareLink(baseURL, cfg))
		return nil
	},
}

func init() {
	shareCmd.Flags().String("base-url", defaultShareBaseURL, "Calculator URL the query string is appended to")
	shareCmd.Flags().String("decode", "", "Decode a shared query string into a configuration")
	shareCmd.Flags().StringP("out", "o", "", "With --decode, write the configuration to this file")
}
