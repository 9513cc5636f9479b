package planner

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// reportSections orders the plan sections for rendering.
func (p *Plan) reportSections() []struct{ title, body string } {
	return []struct{ title, body string }{
		{"Your Personalized Travel Plan", p.Summary},
		{"Current Flight & Travel Info", p.Research},
		{"Daily Itinerary", p.Itinerary},
		{"Budget & Deals", p.Budget},
		{"Local Events & Tips", p.LocalInsights},
	}
}

// Filename returns the download filename for the plan, e.g.
// "travel_plan_Paris,_France_2026-09-01.txt".
func (p *Plan) Filename(ext string) string {
	dest := strings.ReplaceAll(p.Request.Destination, " ", "_")
	return fmt.Sprintf("travel_plan_%s_%s.%s", dest, p.Request.StartDate, ext)
}

// Text renders the plan as plain text for download.
func (p *Plan) Text() string {
	var b strings.Builder

	title := fmt.Sprintf("Travel Plan: %s to %s", p.Request.Origin, p.Request.Destination)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	fmt.Fprintf(&b, "Dates: %s to %s\n", p.Request.StartDate, p.Request.EndDate)
	fmt.Fprintf(&b, "Budget: %s\n", p.Request.Budget)
	fmt.Fprintf(&b, "Interests: %s\n\n", p.Request.Interests)

	for _, s := range p.reportSections() {
		if s.body == "" {
			continue
		}
		b.WriteString(s.title + "\n")
		b.WriteString(strings.Repeat("-", len(s.title)) + "\n")
		b.WriteString(s.body + "\n\n")
	}

	return b.String()
}

// PDF renders the plan as a PDF document for download.
func (p *Plan) PDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, fmt.Sprintf("Travel Plan: %s to %s", p.Request.Origin, p.Request.Destination), "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Dates: %s to %s", p.Request.StartDate, p.Request.EndDate), "", "", false)
	pdf.MultiCell(0, 6, "Budget: "+p.Request.Budget, "", "", false)
	pdf.MultiCell(0, 6, "Interests: "+p.Request.Interests, "", "", false)
	pdf.Ln(4)

	for _, s := range p.reportSections() {
		if s.body == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 7, s.title, "", "", false)
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, s.body, "", "", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
