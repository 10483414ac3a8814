// Package renderer turns calculator states into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/tokensense"
)

//go:embed *.md
var templates embed.FS

// Report holds the display values of a calculator state.
type Report struct {
	InitialSupply      string
	BurnPercentage     string
	PricePerToken      string
	PersonalHoldings   string
	HoldingsPercentage string

	CirculatingSupply string
	MarketCap         string
	HoldingsValue     string
}

// ReportRenderOptions holds configuration for rendering a report.
type ReportRenderOptions struct {
	SkipTitle bool // Do not render the title section.
}

// NewReport formats s and its derived figures for display.
func NewReport(s tokensense.State) *Report {
	f := tokensense.Derive(s)
	return &Report{
		InitialSupply:      tokensense.FormatGroupedInteger(s.InitialSupply),
		BurnPercentage:     strconv.FormatFloat(float64(s.BurnPercentage), 'f', -1, 64) + "%",
		PricePerToken:      s.PricePerToken.Symbol() + s.PricePerToken.Amount(),
		PersonalHoldings:   tokensense.FormatGroupedInteger(s.PersonalHoldings),
		HoldingsPercentage: tokensense.FormatPercentage(s.HoldingsPercentage),
		CirculatingSupply:  tokensense.FormatGroupedInteger(f.CirculatingSupply),
		MarketCap:          tokensense.FormatCurrency(f.MarketCap),
		HoldingsValue:      tokensense.FormatAbbreviatedCurrency(f.HoldingsValue),
	}
}

// RenderReport renders the Report struct to a markdown string.
func RenderReport(r *Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_inputs":  "report_inputs.md",
		"report_figures": "report_figures.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipTitle {
		partials["report_title"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// StateMarkdown renders the full report of s.
func StateMarkdown(s tokensense.State) string {
	return RenderReport(NewReport(s), ReportRenderOptions{})
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
