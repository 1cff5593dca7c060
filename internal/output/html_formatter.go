package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct {
	Now func() time.Time
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"signed": FormatSignedCurrency,
	"pct":    FormatPercentage,
	"yesno":  yesNo,
	"title":  func(s domain.Scenario) string { return s.Title() },
}).Parse(htmlTemplateSource))

type htmlReport struct {
	*compare.Result
	Generated       string
	Active          compare.ScenarioView
	MortgageSummary string
	MortgageDetail  string
	TaxNote         string
	AssumptionsNote string
	Disclaimer      string
}

func (h HTMLFormatter) Format(result *compare.Result) ([]byte, error) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	a := result.Analysis
	data := htmlReport{
		Result:          result,
		Generated:       now().Format("2006-01-02 15:04:05"),
		Active:          result.ActiveView(),
		MortgageSummary: compare.MortgageSummary(a),
		MortgageDetail:  compare.MortgageDetail(a),
		TaxNote:         compare.TaxNote(a),
		AssumptionsNote: compare.AssumptionsNote(a),
		Disclaimer:      compare.Disclaimer,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
