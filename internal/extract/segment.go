package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxTitleLength is the longest line the projects sub-loop will accept as a
// new project title.
const maxTitleLength = 80

// EventKind classifies a single segmenter decision.
type EventKind string

// Event kinds emitted to an Observer, one per classification decision.
const (
	EventHeader  EventKind = "header"
	EventRole    EventKind = "role"
	EventProject EventKind = "project"
	EventTitle   EventKind = "title"
	EventBullet  EventKind = "bullet"
	EventDropped EventKind = "dropped"
)

// Event describes one classification decision during segmentation.
type Event struct {
	Line   int // zero-based index into the input lines
	Kind   EventKind
	Detail string
}

// Observer receives one Event per classification decision. It exists purely
// for diagnostics; segmentation behaves identically whether or not anything
// observes it.
type Observer func(Event)

// Exit-header sets per sub-loop. Each sub-loop runs until it sees a header
// token from its own set; the token is left for the outer loop to re-read.
// A sub-loop never exits on its own header (re-entering is harmless for
// summary/skills and would drop state for experience/projects).
var (
	summaryExits    = headerSet("skills", "experience", "projects", "education")
	skillsExits     = headerSet("summary", "experience", "projects", "education")
	experienceExits = headerSet("summary", "skills", "projects", "education", "certifications")
	projectsExits   = headerSet("summary", "skills", "experience", "education", "certifications", "achievements")
)

func headerSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// Segment walks the input text once and reconstructs a Document. It is total
// over any input: empty strings, binary garbage, and absent structure all
// yield a valid (possibly empty) Document, never an error. Ambiguous lines
// are dropped rather than guessed into the wrong bucket; the one fail-open
// exception is the project title heuristic (see isLikelyTitle).
func Segment(text string) *Document {
	return SegmentObserved(text, nil)
}

// SegmentObserved is Segment with an optional per-decision Observer.
func SegmentObserved(text string, obs Observer) *Document {
	doc := NewDocument()
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		switch normalizeHeader(line) {
		case "summary":
			emit(obs, Event{Line: i, Kind: EventHeader, Detail: "summary"})
			i = segmentSummary(doc, lines, i+1)
		case "skills":
			emit(obs, Event{Line: i, Kind: EventHeader, Detail: "skills"})
			i = segmentSkills(doc, lines, i+1)
		case "experience":
			emit(obs, Event{Line: i, Kind: EventHeader, Detail: "experience"})
			i = segmentExperience(doc, lines, i+1, obs)
		case "projects":
			emit(obs, Event{Line: i, Kind: EventHeader, Detail: "projects"})
			i = segmentProjects(doc, lines, i+1, obs)
		default:
			// Preamble, trailing prose, and unknown headers are ignored.
			i++
		}
	}

	return doc
}

// segmentSummary appends every non-header line verbatim to the summary.
// Returns the index of the line that ended the section.
func segmentSummary(doc *Document, lines []string, i int) int {
	for i < len(lines) {
		l := strings.TrimSpace(lines[i])
		if l == "" {
			i++
			continue
		}
		if summaryExits[normalizeHeader(l)] {
			break
		}
		doc.Summary = append(doc.Summary, l)
		i++
	}
	return i
}

// segmentSkills splits every non-header line on comma, pipe, or period and
// appends each non-empty trimmed fragment in order.
func segmentSkills(doc *Document, lines []string, i int) int {
	for i < len(lines) {
		l := strings.TrimSpace(lines[i])
		if l == "" {
			i++
			continue
		}
		if skillsExits[normalizeHeader(l)] {
			break
		}
		for _, part := range strings.FieldsFunc(l, func(r rune) bool {
			return r == ',' || r == '|' || r == '.'
		}) {
			if token := strings.TrimSpace(part); token != "" {
				doc.Skills = append(doc.Skills, token)
			}
		}
		i++
	}
	return i
}

// segmentExperience tracks a current role and current project. Bullets are
// recorded only when both are set; everything else is dropped. A role marker
// resets the project context.
func segmentExperience(doc *Document, lines []string, i int, obs Observer) int {
	currentRole := ""
	currentProject := ""

	for i < len(lines) {
		l := strings.TrimSpace(lines[i])
		if l == "" {
			i++
			continue
		}
		if experienceExits[normalizeHeader(l)] {
			break
		}

		lower := strings.ToLower(l)
		switch {
		case strings.Contains(lower, "role_id="):
			_, value, _ := strings.Cut(l, "=")
			currentRole = NormalizeKey(value)
			if _, ok := doc.Experience[currentRole]; !ok {
				doc.Experience[currentRole] = make(map[string][]string)
			}
			currentProject = ""
			emit(obs, Event{Line: i, Kind: EventRole, Detail: currentRole})

		case strings.HasPrefix(lower, "project:"):
			_, value, _ := strings.Cut(l, ":")
			currentProject = NormalizeKey(value)
			// The project context is set regardless, but a mapping entry is
			// only created under an active role.
			if currentRole != "" {
				if _, ok := doc.Experience[currentRole][currentProject]; !ok {
					doc.Experience[currentRole][currentProject] = []string{}
				}
				emit(obs, Event{Line: i, Kind: EventProject, Detail: currentRole + "/" + currentProject})
			} else {
				emit(obs, Event{Line: i, Kind: EventDropped, Detail: "project marker before any role"})
			}

		case isBullet(l):
			bullet := trimBullet(l)
			if currentRole != "" && currentProject != "" && bullet != "" {
				doc.Experience[currentRole][currentProject] = append(doc.Experience[currentRole][currentProject], bullet)
				emit(obs, Event{Line: i, Kind: EventBullet, Detail: currentRole + "/" + currentProject})
			} else {
				emit(obs, Event{Line: i, Kind: EventDropped, Detail: "bullet without role/project context"})
			}

		default:
			emit(obs, Event{Line: i, Kind: EventDropped, Detail: "unrecognized experience line"})
		}
		i++
	}
	return i
}

// segmentProjects tracks a single current project. Non-bullet lines are run
// through the title heuristic; lines that fail it are discarded rather than
// appended to a previous bullet, so wrapped or stray text cannot corrupt an
// earlier entry.
func segmentProjects(doc *Document, lines []string, i int, obs Observer) int {
	currentProject := ""

	for i < len(lines) {
		l := strings.TrimSpace(lines[i])
		if l == "" {
			i++
			continue
		}
		if projectsExits[normalizeHeader(l)] {
			break
		}

		switch {
		case isBullet(l):
			bullet := trimBullet(l)
			if currentProject != "" && bullet != "" {
				doc.Projects[currentProject] = append(doc.Projects[currentProject], bullet)
				emit(obs, Event{Line: i, Kind: EventBullet, Detail: currentProject})
			} else {
				emit(obs, Event{Line: i, Kind: EventDropped, Detail: "bullet without project context"})
			}

		case isLikelyTitle(l):
			currentProject = NormalizeKey(l)
			// Created immediately, even if no bullet ever follows: the
			// renderer distinguishes "mentioned, empty" from "absent".
			doc.Projects[currentProject] = []string{}
			emit(obs, Event{Line: i, Kind: EventTitle, Detail: currentProject})

		default:
			emit(obs, Event{Line: i, Kind: EventDropped, Detail: "failed title heuristic"})
		}
		i++
	}
	return i
}

// isBullet reports whether a trimmed line is a bullet line.
func isBullet(l string) bool {
	return strings.HasPrefix(l, "-") || strings.HasPrefix(l, "•")
}

// trimBullet strips exactly one leading bullet marker and trims the
// remainder.
func trimBullet(l string) string {
	if strings.HasPrefix(l, "-") {
		l = l[1:]
	} else {
		l = strings.TrimPrefix(l, "•")
	}
	return strings.TrimSpace(l)
}

// isLikelyTitle is the project title heuristic: at most 80 characters, no
// trailing period or colon, and not entirely upper-case. Unlike every other
// classification here it fails open: an extraneous empty project entry is a
// lesser error than a silently lost bullet section. The all-caps test only
// counts lines that contain at least one cased letter, so digit-only noise
// still falls through to the length and suffix checks.
func isLikelyTitle(l string) bool {
	if utf8.RuneCountInString(l) > maxTitleLength {
		return false
	}
	if strings.HasSuffix(l, ".") || strings.HasSuffix(l, ":") {
		return false
	}
	return !isAllUpper(l)
}

// isAllUpper reports whether the string has at least one cased character and
// no lower-case characters.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// emit invokes the observer if one is set.
func emit(obs Observer, ev Event) {
	if obs != nil {
		obs(ev)
	}
}
