package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TableFormatter formats solver diagnostics for the console
type TableFormatter struct{}

// Format renders a solve result with its annualized equivalent
func (tf *TableFormatter) Format(result SolveResult) string {
	var sb strings.Builder

	sb.WriteString("IRR SOLVER DIAGNOSTICS\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	sb.WriteString(fmt.Sprintf("Status:          %s\n", tf.formatStatus(result)))
	if !result.Found {
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("Iterations:      %d\n", result.Iterations))
	sb.WriteString(fmt.Sprintf("Monthly rate:    %.8f\n", result.Rate))
	sb.WriteString(fmt.Sprintf("Annualized:      %.4f%%\n", AnnualizeMonthly(result.Rate)*100))
	sb.WriteString(fmt.Sprintf("Residual NPV:    %.3e\n", result.Residual))
	return sb.String()
}

func (tf *TableFormatter) formatStatus(result SolveResult) string {
	switch {
	case !result.Found:
		return "no root in bracket"
	case result.Converged:
		return "converged"
	default:
		return "iteration budget exhausted"
	}
}

// JSONFormatter formats solver diagnostics as JSON
type JSONFormatter struct{}

// Format renders the result as indented JSON
func (jf *JSONFormatter) Format(result SolveResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
