package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// run executes the root command with args and returns stdout and stderr.
// Flags keep their values between runs, so every test passes the flags it
// depends on.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "bestinvest" {
		t.Errorf("Expected root command use to be 'bestinvest', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" || rootCmd.Long == "" {
		t.Error("Expected root command to have short and long descriptions")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "validate", "init", "assets", "schedule", "project", "share", "irr", "version"}

	registered := map[string]*cobra.Command{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = c
	}
	for _, name := range expected {
		if _, ok := registered[name]; !ok {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestCalculateDefaults(t *testing.T) {
	out, _, err := run(t, "calculate", "--format", "console", "--scenario", "moderate", "--assets", "")
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	for _, want := range []string{"BESTINVESTMENT DETAILED REPORT", "MORTGAGE ANALYSIS", "DETAILED BREAKDOWN (MODERATE)", "PRIORITIES"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestCalculateFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"analysis"`},
		{"csv", "Scenario"},
		{"html", "<html"},
		{"summary", "MORTGAGE PREPAYMENT SUMMARY"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := run(t, "calculate", "--format", tt.format, "--scenario", "moderate", "--assets", "")
			if err != nil {
				t.Fatalf("calculate --format %s failed: %v", tt.format, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %s output to contain %q", tt.format, tt.want)
			}
		})
	}
}

func TestCalculateAllScenarios(t *testing.T) {
	out, _, err := run(t, "calculate", "--format", "console", "--all-scenarios", "--scenario", "moderate", "--assets", "")
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	for _, want := range []string{"DETAILED BREAKDOWN (CONSERVATIVE)", "DETAILED BREAKDOWN (AGGRESSIVE)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	rootCmd.SetArgs(nil)
	if err := calculateCmd.Flags().Set("all-scenarios", "false"); err != nil {
		t.Fatal(err)
	}
}

func TestCalculateErrors(t *testing.T) {
	if _, _, err := run(t, "calculate", "--format", "pdf", "--scenario", "moderate", "--assets", ""); err == nil {
		t.Error("Expected error for unknown format")
	}
	if _, _, err := run(t, "calculate", "--format", "console", "--scenario", "bullish", "--assets", ""); err == nil {
		t.Error("Expected error for unknown scenario")
	}
	if _, _, err := run(t, "calculate", "--format", "console", "--scenario", "", "--log-level", "loud", "--assets", ""); err == nil {
		t.Error("Expected error for unknown log level")
	}
	run(t, "calculate", "--log-level", "warn", "--format", "console")
}

func TestCalculateMissingAssetsWarns(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	_, stderr, err := run(t, "calculate", "--format", "csv", "--scenario", "", "--assets", missing)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if !strings.Contains(stderr, "embedded asset dataset") {
		t.Errorf("Expected fallback warning on stderr, got %q", stderr)
	}
}

func TestCalculateWritesOutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	stdout, _, err := run(t, "calculate", "--format", "json", "--scenario", "", "--assets", "", "--out", out)
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if !strings.Contains(stdout, "Report written to") {
		t.Errorf("Expected confirmation, got %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected report file: %v", err)
	}
	if !strings.Contains(string(data), `"views"`) {
		t.Error("Expected JSON report in file")
	}
	if err := calculateCmd.Flags().Set("out", ""); err != nil {
		t.Fatal(err)
	}
}

func TestInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")

	if _, _, err := run(t, "init", path); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, _, err := run(t, "init", path); err == nil {
		t.Error("Expected init to refuse to overwrite")
	}

	out, _, err := run(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("Expected validation message, got %q", out)
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("loan:\n  balance: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "validate", path); err == nil {
		t.Error("Expected validation error for a negative balance")
	}
}

func TestAssetsCommand(t *testing.T) {
	out, _, err := run(t, "assets", "--assets", "")
	if err != nil {
		t.Fatalf("assets failed: %v", err)
	}
	for _, want := range []string{"ASSET DATASET", "Ticker", "Conservative", "Returns as of:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected assets output to contain %q", want)
		}
	}
}

func TestScheduleCommand(t *testing.T) {
	out, _, err := run(t, "schedule", "--limit", "3", "--with-prepayment", "--csv=false")
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if !strings.Contains(out, "AMORTIZATION SCHEDULE") {
		t.Errorf("Expected schedule header, got %q", out)
	}

	out, _, err = run(t, "schedule", "--limit", "2", "--csv")
	if err != nil {
		t.Fatalf("schedule --csv failed: %v", err)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines < 2 {
		t.Errorf("Expected header and rows, got %q", out)
	}
}

func TestProjectCommand(t *testing.T) {
	out, _, err := run(t, "project", "--principal", "10000", "--years", "10", "--return", "8", "--dividend-yield", "0", "--ltcg", "0", "--qdiv", "0", "--inflation", "0")
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}
	if !strings.Contains(out, "INVESTMENT PROJECTION") {
		t.Errorf("Expected projection header, got %q", out)
	}

	if _, _, err := run(t, "project", "--principal", "0"); err == nil {
		t.Error("Expected error for zero principal")
	}
	if err := projectCmd.Flags().Set("principal", "20000"); err != nil {
		t.Fatal(err)
	}
}

func TestShareRoundTrip(t *testing.T) {
	out, _, err := run(t, "share", "--base-url", "http://example.test/", "--decode", "")
	if err != nil {
		t.Fatalf("share failed: %v", err)
	}
	link := strings.TrimSpace(out)
	if !strings.HasPrefix(link, "http://example.test/?") {
		t.Fatalf("Expected link with base URL, got %q", link)
	}

	query := link[strings.Index(link, "?")+1:]
	path := filepath.Join(t.TempDir(), "shared.yaml")
	if _, _, err := run(t, "share", "--decode", query, "--out", path); err != nil {
		t.Fatalf("share --decode failed: %v", err)
	}
	if _, _, err := run(t, "validate", path); err != nil {
		t.Errorf("Expected decoded configuration to validate: %v", err)
	}
	if err := shareCmd.Flags().Set("decode", ""); err != nil {
		t.Fatal(err)
	}
}

func TestIRRCommand(t *testing.T) {
	out, _, err := run(t, "irr", "--json=false")
	if err != nil {
		t.Fatalf("irr failed: %v", err)
	}
	if !strings.Contains(out, "IRR SOLVER DIAGNOSTICS") || !strings.Contains(out, "Cashflow months: 360") {
		t.Errorf("Expected solver diagnostics, got %q", out)
	}

	out, _, err = run(t, "irr", "--json")
	if err != nil {
		t.Fatalf("irr --json failed: %v", err)
	}
	if !strings.Contains(out, `"found"`) {
		t.Errorf("Expected JSON diagnostics, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "bestinvest dev") {
		t.Errorf("Expected version line, got %q", out)
	}
}
