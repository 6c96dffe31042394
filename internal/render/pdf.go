// Package render lays out the final resume PDF. The candidate profile
// drives structure and ordering; the extracted document supplies the
// generated content, joined on by normalized keys. Missing content never
// fails a render, it degrades to a visible placeholder.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/profile"
)

const fontFamily = "Helvetica"

// missingContent marks a project the generator produced no bullets for.
// Rendering it keeps the layout intact and makes the gap obvious on review.
const missingContent = "- [No content generated for this project]"

// PDF renders a resume for the profile using the extracted document content.
func PDF(p *profile.Profile, doc *extract.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	lm, _, _, _ := pdf.GetMargins()

	writeHeader(pdf, tr, lm, p)
	writeSummary(pdf, tr, lm, doc.Summary)
	writeSkills(pdf, tr, lm, doc.Skills)
	writeExperience(pdf, tr, lm, p, doc)
	writeProjects(pdf, tr, lm, p, doc)
	writeEducation(pdf, tr, lm, p)
	writeList(pdf, tr, lm, "CERTIFICATIONS", p.Certifications)
	writeList(pdf, tr, lm, "ACHIEVEMENTS", p.Achievements)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, lm float64, title string) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetX(lm)
	pdf.CellFormat(0, 8, title, "", 1, "", false, 0, "")
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, lm float64, p *profile.Profile) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetX(lm)
	pdf.CellFormat(0, 10, tr(p.Name), "", 1, "", false, 0, "")

	var contact []string
	for _, part := range []string{p.Email, p.Phone, p.Links.LinkedIn, p.Links.GitHub} {
		if part = strings.TrimSpace(part); part != "" {
			contact = append(contact, part)
		}
	}

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetX(lm)
	pdf.MultiCell(0, 6, tr(strings.Join(contact, " | ")), "", "", false)
	pdf.Ln(2)

	if p.Title != "" {
		pdf.SetFont(fontFamily, "B", 12)
		pdf.SetX(lm)
		pdf.MultiCell(0, 6, tr(p.Title), "", "", false)
	}
	pdf.Ln(3)
}

func writeSummary(pdf *fpdf.Fpdf, tr func(string) string, lm float64, summary []string) {
	sectionTitle(pdf, lm, "SUMMARY")

	text := "No summary generated"
	if len(summary) > 0 {
		text = strings.Join(summary, "\n")
	}
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetX(lm)
	pdf.MultiCell(0, 5, tr(text), "", "", false)
	pdf.Ln(2)
}

func writeSkills(pdf *fpdf.Fpdf, tr func(string) string, lm float64, skills []string) {
	sectionTitle(pdf, lm, "SKILLS")

	text := "No skills generated"
	if deduped := extract.DedupeSkills(skills); len(deduped) > 0 {
		text = strings.Join(deduped, ", ")
	}
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetX(lm)
	pdf.MultiCell(0, 5, tr(text), "", "", false)
	pdf.Ln(2)
}

func writeExperience(pdf *fpdf.Fpdf, tr func(string) string, lm float64, p *profile.Profile, doc *extract.Document) {
	sectionTitle(pdf, lm, "EXPERIENCE")

	for i := range p.Experience {
		exp := &p.Experience[i]

		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetX(lm)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s | %s | %s - %s", exp.Role, exp.Company, exp.Start, exp.End)), "", "", false)

		roleProjects := doc.Experience[exp.RoleKey()]

		for j := range exp.Projects {
			proj := &exp.Projects[j]
			bullets := roleProjects[proj.Key()]

			// Project title always renders, bullets or not.
			pdf.SetFont(fontFamily, "B", 9)
			pdf.SetX(lm + 5)
			pdf.MultiCell(0, 4, tr(proj.Title), "", "", false)

			if len(bullets) > 0 {
				pdf.SetFont(fontFamily, "", 9)
				for _, b := range bullets {
					pdf.SetX(lm + 5)
					pdf.MultiCell(0, 5, tr("• "+b), "", "", false)
				}
			} else {
				pdf.SetFont(fontFamily, "", 8)
				pdf.SetX(lm + 5)
				pdf.MultiCell(0, 5, missingContent, "", "", false)
			}
		}

		// Bullets the generator attached to the role without a project marker.
		if general := roleProjects["general"]; len(general) > 0 {
			pdf.SetFont(fontFamily, "", 9)
			for _, b := range general {
				pdf.SetX(lm + 5)
				pdf.MultiCell(0, 5, tr("• "+b), "", "", false)
			}
		}

		pdf.Ln(2)
	}
}

func writeProjects(pdf *fpdf.Fpdf, tr func(string) string, lm float64, p *profile.Profile, doc *extract.Document) {
	if len(p.Projects) == 0 {
		return
	}
	sectionTitle(pdf, lm, "PROJECTS")

	for i := range p.Projects {
		proj := &p.Projects[i]
		if i > 0 {
			pdf.Ln(2)
		}

		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetX(lm)
		pdf.MultiCell(0, 4, tr(proj.Title), "", "", false)

		bullets := doc.Projects[proj.Key()]
		if len(bullets) > 0 {
			pdf.SetFont(fontFamily, "", 9)
			for _, b := range bullets {
				pdf.SetX(lm)
				pdf.MultiCell(0, 5, tr("• "+b), "", "", false)
			}
		} else {
			pdf.SetFont(fontFamily, "", 8)
			pdf.SetX(lm)
			pdf.MultiCell(0, 5, missingContent, "", "", false)
		}
	}
}

func writeEducation(pdf *fpdf.Fpdf, tr func(string) string, lm float64, p *profile.Profile) {
	sectionTitle(pdf, lm, "EDUCATION")

	pdf.SetFont(fontFamily, "", 10)
	for i := range p.Education {
		edu := &p.Education[i]
		pdf.SetX(lm)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s | %s | %s | %s", edu.Degree, edu.School, edu.CGPA, edu.Year)), "", "", false)
	}
}

func writeList(pdf *fpdf.Fpdf, tr func(string) string, lm float64, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sectionTitle(pdf, lm, title)

	pdf.SetFont(fontFamily, "", 9)
	for _, item := range items {
		pdf.SetX(lm)
		pdf.MultiCell(0, 5, tr("• "+item), "", "", false)
	}
}
