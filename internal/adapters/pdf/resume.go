// Package pdf renders resume content into a downloadable PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

const (
	pageMargin     = 15.0
	nameSize       = 22.0
	labelSize      = 12.0
	sectionSize    = 13.0
	bodySize       = 10.0
	lineHeight     = 5.0
	sectionSpacing = 4.0
)

// Renderer produces A4 resume PDFs.
// Implements ports.ResumeRenderer.
type Renderer struct{}

// NewRenderer creates a resume PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPDF renders the resume as PDF bytes.
// Implements ports.ResumeRenderer.
func (r *Renderer) RenderPDF(resume *domain.Resume) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	r.writeHeader(doc, tr, resume)
	r.writeSummary(doc, tr, resume)
	r.writeSkills(doc, tr, resume)
	r.writeExperience(doc, tr, resume)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering resume pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) writeHeader(doc *fpdf.Fpdf, tr func(string) string, resume *domain.Resume) {
	doc.SetFont("Helvetica", "B", nameSize)
	doc.CellFormat(0, 10, tr(resume.Name), "", 1, "L", false, 0, "")

	if resume.Label != "" {
		doc.SetFont("Helvetica", "", labelSize)
		doc.SetTextColor(90, 90, 90)
		doc.CellFormat(0, 6, tr(resume.Label), "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}

	contact := make([]string, 0, 3)
	for _, part := range []string{resume.Email, resume.Location, resume.Website} {
		if part != "" {
			contact = append(contact, part)
		}
	}

	if len(contact) > 0 {
		doc.SetFont("Helvetica", "", bodySize)
		doc.CellFormat(0, lineHeight, tr(strings.Join(contact, "  |  ")), "", 1, "L", false, 0, "")
	}

	doc.Ln(sectionSpacing)
}

func (r *Renderer) writeSummary(doc *fpdf.Fpdf, tr func(string) string, resume *domain.Resume) {
	if resume.Summary == "" {
		return
	}

	r.writeSectionTitle(doc, tr, "Summary")
	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, lineHeight, tr(resume.Summary), "", "L", false)
	doc.Ln(sectionSpacing)
}

func (r *Renderer) writeSkills(doc *fpdf.Fpdf, tr func(string) string, resume *domain.Resume) {
	if len(resume.Skills) == 0 {
		return
	}

	r.writeSectionTitle(doc, tr, "Skills")

	for _, group := range resume.Skills {
		doc.SetFont("Helvetica", "B", bodySize)
		doc.CellFormat(40, lineHeight, tr(group.Category), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", bodySize)
		doc.MultiCell(0, lineHeight, tr(strings.Join(group.Items, ", ")), "", "L", false)
	}

	doc.Ln(sectionSpacing)
}

func (r *Renderer) writeExperience(doc *fpdf.Fpdf, tr func(string) string, resume *domain.Resume) {
	if len(resume.Work) == 0 {
		return
	}

	r.writeSectionTitle(doc, tr, "Experience")

	for _, job := range resume.Work {
		doc.SetFont("Helvetica", "B", bodySize+1)
		doc.CellFormat(0, lineHeight+1, tr(job.Position), "", 1, "L", false, 0, "")

		meta := job.Company
		if job.Location != "" {
			meta += "  |  " + job.Location
		}
		meta += "  |  " + formatPeriod(job.Start, job.End)

		doc.SetFont("Helvetica", "I", bodySize)
		doc.SetTextColor(90, 90, 90)
		doc.CellFormat(0, lineHeight, tr(meta), "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)

		if job.Summary != "" {
			doc.SetFont("Helvetica", "", bodySize)
			doc.MultiCell(0, lineHeight, tr(job.Summary), "", "L", false)
		}

		doc.Ln(2)
	}
}

func (r *Renderer) writeSectionTitle(doc *fpdf.Fpdf, tr func(string) string, title string) {
	doc.SetFont("Helvetica", "B", sectionSize)
	doc.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	doc.Ln(1)
}

// formatPeriod renders an employment period, treating an empty end date as
// the present.
func formatPeriod(start, end string) string {
	if end == "" {
		end = "Present"
	}

	return start + " - " + end
}
