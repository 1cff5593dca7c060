package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ScheduleFormatter renders an amortization schedule
type ScheduleFormatter struct {
	// Limit caps the number of monthly rows; zero prints all of them
	Limit int
}

// WriteTable writes the schedule as an aligned console table followed by totals
func (s ScheduleFormatter) WriteTable(w io.Writer, schedule *domain.AmortizationResult) error {
	var sb strings.Builder
	sb.WriteString("AMORTIZATION SCHEDULE\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Scheduled payment: %s   Months to payoff: %d\n\n",
		FormatCurrency(schedule.ScheduledPayment), schedule.MonthsToPayoff))
	sb.WriteString(fmt.Sprintf("%5s %14s %12s %12s %9s %12s %11s %14s\n",
		"Month", "Balance", "Interest", "Principal", "PMI", "Payment", "Tax Shield", "After-Tax"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for i, r := range schedule.Records {
		if s.Limit > 0 && i >= s.Limit {
			sb.WriteString(fmt.Sprintf("... %d more months\n", len(schedule.Records)-s.Limit))
			break
		}
		sb.WriteString(fmt.Sprintf("%5d %14s %12s %12s %9s %12s %11s %14s\n",
			r.Month,
			fixed(r.BalanceStart, 2),
			fixed(r.Interest, 2),
			fixed(r.Principal, 2),
			fixed(r.PMI, 2),
			fixed(r.PaymentActual, 2),
			fixed(r.TaxShield, 2),
			fixed(r.AfterTaxOutflow, 2)))
	}

	sb.WriteString(strings.Repeat("-", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Total interest: %s   Total PMI: %s   Total after-tax outflow: %s\n",
		FormatCurrency(schedule.TotalInterest), FormatCurrency(schedule.TotalPMI), FormatCurrency(schedule.TotalAfterTaxOutflow)))

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCSV writes every schedule record as CSV
func (s ScheduleFormatter) WriteCSV(w io.Writer, schedule *domain.AmortizationResult) error {
	cw := csv.NewWriter(w)
	header := []string{"Month", "BalanceStart", "Interest", "Principal", "PMI", "PaymentActual", "TaxShield", "AfterTaxOutflow", "BalanceEnd"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, r := range schedule.Records {
		if s.Limit > 0 && i >= s.Limit {
			break
		}
		row := []string{
			strconv.Itoa(r.Month),
			fixed(r.BalanceStart, 2),
			fixed(r.Interest, 2),
			fixed(r.Principal, 2),
			fixed(r.PMI, 2),
			fixed(r.PaymentActual, 2),
			fixed(r.TaxShield, 2),
			fixed(r.AfterTaxOutflow, 2),
			fixed(r.BalanceEnd(), 2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
