package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/bestinvest/internal/compare"
)

// ConsoleFormatter renders the short summary: the mortgage line, the active
// scenario's quick result and its top options
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *compare.Result) ([]byte, error) {
	var buf bytes.Buffer
	a := result.Analysis
	view := result.ActiveView()

	fmt.Fprintln(&buf, "MORTGAGE PREPAYMENT SUMMARY")
	fmt.Fprintln(&buf, "===========================")
	fmt.Fprintln(&buf, compare.MortgageSummary(a))
	if view.QuickResult != "" {
		fmt.Fprintln(&buf, view.QuickResult)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Top options (%s):\n", view.Scenario.Title())
	for i, row := range view.Top {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, compare.TopItem(row))
	}
	fmt.Fprintln(&buf)

	for _, p := range a.Priorities {
		fmt.Fprintf(&buf, "• %s\n", p)
	}
	return buf.Bytes(), nil
}
