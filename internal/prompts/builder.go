package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/profile"
)

// PromptFile is the embedded file holding the resume generation prompt.
const PromptFile = "resume.json"

// PromptKey is the key of the tailoring prompt within PromptFile.
const PromptKey = "tailor"

// BuildResumePrompt assembles the full generation prompt for a profile and
// job description. The experience and projects sections of the output format
// are expanded from the profile so the model echoes back the exact ROLE_ID
// and PROJECT markers the extractor keys on.
func BuildResumePrompt(p *profile.Profile, jobDescription string) (string, error) {
	template, err := Get(PromptFile, PromptKey)
	if err != nil {
		return "", err
	}

	profileJSON, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	return Format(template, map[string]string{
		"ProfileJSON":        string(profileJSON),
		"JobDescription":     jobDescription,
		"ExperienceTemplate": buildExperienceTemplate(p),
		"ProjectsTemplate":   buildProjectsTemplate(p),
	}), nil
}

// buildExperienceTemplate renders the required output skeleton for every
// role in the profile. Each role is introduced by a ROLE_ID line carrying
// its normalized key, and each of its projects by a PROJECT line.
func buildExperienceTemplate(p *profile.Profile) string {
	var b strings.Builder
	for i := range p.Experience {
		exp := &p.Experience[i]
		fmt.Fprintf(&b, "ROLE_ID=%s\n", exp.RoleKey())
		fmt.Fprintf(&b, "%s | %s | %s\n", exp.Role, exp.Company, formatDates(exp.Start, exp.End))
		for j := range exp.Projects {
			fmt.Fprintf(&b, "PROJECT: %s\n", exp.Projects[j].Title)
			writeBulletSlots(&b)
		}
		if len(exp.Projects) == 0 {
			writeBulletSlots(&b)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildProjectsTemplate renders the output skeleton for standalone projects.
// Titles are emitted bare, not as PROJECT: markers: the projects section is
// parsed by the title heuristic, and a marker prefix would become part of
// the normalized key and break the join back to the profile.
func buildProjectsTemplate(p *profile.Profile) string {
	if len(p.Projects) == 0 {
		return "[No standalone projects]"
	}
	var b strings.Builder
	for i := range p.Projects {
		fmt.Fprintf(&b, "%s\n", p.Projects[i].Title)
		writeBulletSlots(&b)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeBulletSlots(b *strings.Builder) {
	b.WriteString("- [bullet 1 with quantified metrics]\n")
	b.WriteString("- [bullet 2 with quantified metrics]\n")
	b.WriteString("- [bullet 3 with quantified metrics]\n")
}

func formatDates(start, end string) string {
	switch {
	case start == "" && end == "":
		return "[dates]"
	case end == "":
		return start + " - Present"
	default:
		return start + " - " + end
	}
}
