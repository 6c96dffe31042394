package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentNoRecognizedHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Only blank lines", "\n\n   \n\t\n"},
		{"Prose without headers", "Dear hiring manager,\nI am writing to apply.\n- a stray bullet"},
		{"Binary garbage", "\x00\x01\xff\xfe garbage \x7f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Segment(tt.input)
			require.NotNil(t, doc)
			assert.Empty(t, doc.Summary)
			assert.Empty(t, doc.Skills)
			assert.Empty(t, doc.Experience)
			assert.Empty(t, doc.Projects)
			assert.True(t, doc.Empty())
		})
	}
}

func TestSegmentSummaryAndSkills(t *testing.T) {
	doc := Segment("SUMMARY\nLine one\n\nSKILLS\nGo, Rust, C++")

	assert.Equal(t, []string{"Line one"}, doc.Summary)
	assert.Equal(t, []string{"Go", "Rust", "C++"}, doc.Skills)
}

func TestSegmentSkillsDelimiters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Comma separated",
			input:    "SKILLS\nGo, Rust, C++",
			expected: []string{"Go", "Rust", "C++"},
		},
		{
			name:     "Pipe separated",
			input:    "SKILLS\nGo | Rust | Kafka",
			expected: []string{"Go", "Rust", "Kafka"},
		},
		{
			name:     "Period separated",
			input:    "SKILLS\nGo. Rust. Kafka",
			expected: []string{"Go", "Rust", "Kafka"},
		},
		{
			name:     "Multiple lines keep order",
			input:    "SKILLS\nGo, Rust\nKafka, Redis",
			expected: []string{"Go", "Rust", "Kafka", "Redis"},
		},
		{
			name:     "Empty fragments filtered",
			input:    "SKILLS\nGo,, | . Rust",
			expected: []string{"Go", "Rust"},
		},
		{
			name:     "Duplicates survive extraction",
			input:    "SKILLS\nGo, Rust\nGo, go",
			expected: []string{"Go", "Rust", "Go", "go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segment(tt.input).Skills)
		})
	}
}

func TestSegmentExperienceBlock(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"ROLE_ID=backend_engineer",
		"PROJECT: Checkout Service",
		"- Cut checkout latency by 40% across 2M daily requests",
		"- Migrated payment flows to Go, reducing error rate by 15%",
	}, "\n")

	doc := Segment(input)

	roleKey := NormalizeKey(strings.SplitN("ROLE_ID=backend_engineer", "=", 2)[1])
	assert.Equal(t, "backendengineer", roleKey)

	require.Contains(t, doc.Experience, roleKey)
	require.Contains(t, doc.Experience[roleKey], "checkoutservice")
	assert.Equal(t, []string{
		"Cut checkout latency by 40% across 2M daily requests",
		"Migrated payment flows to Go, reducing error rate by 15%",
	}, doc.Experience[roleKey]["checkoutservice"])
}

func TestSegmentExperienceOrphanBullets(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Bullet before any role",
			input: "EXPERIENCE\n- Orphan bullet with metrics",
		},
		{
			name:  "Bullet after role but before project",
			input: "EXPERIENCE\nROLE_ID=backend_engineer\n- Bullet with no project context",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Segment(tt.input)
			for _, projects := range doc.Experience {
				for _, bullets := range projects {
					assert.Empty(t, bullets)
				}
			}
			assert.Empty(t, doc.Projects)
			assert.Empty(t, doc.Summary)
		})
	}
}

func TestSegmentExperienceRolePresentButEmpty(t *testing.T) {
	doc := Segment("EXPERIENCE\nROLE_ID=backend_engineer\nSKILLS\nGo")

	// The role must round-trip as present-and-empty, not absent: the
	// renderer prints placeholders based on presence.
	require.Contains(t, doc.Experience, "backendengineer")
	assert.Empty(t, doc.Experience["backendengineer"])
	assert.Equal(t, []string{"Go"}, doc.Skills)
}

func TestSegmentExperienceProjectMarkerWithoutRole(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"PROJECT: Ghost Project",
		"- Bullet recorded nowhere",
		"ROLE_ID=platform_lead",
		"- Bullet under stale project context",
	}, "\n")

	doc := Segment(input)

	// The early project marker created no entry, and the role marker reset
	// the project context, so neither bullet lands anywhere.
	require.Contains(t, doc.Experience, "platformlead")
	assert.Empty(t, doc.Experience["platformlead"])
	assert.NotContains(t, doc.Projects, "ghostproject")
}

func TestSegmentExperienceRoleSwitchResetsProject(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"ROLE_ID=backend_engineer",
		"PROJECT: Checkout Service",
		"- First bullet",
		"ROLE_ID=platform_lead",
		"- Dropped: new role has no project yet",
		"PROJECT: Build System",
		"- Second bullet",
	}, "\n")

	doc := Segment(input)

	assert.Equal(t, []string{"First bullet"}, doc.Experience["backendengineer"]["checkoutservice"])
	assert.Equal(t, []string{"Second bullet"}, doc.Experience["platformlead"]["buildsystem"])
	assert.NotContains(t, doc.Experience["platformlead"], "checkoutservice")
}

func TestSegmentExperienceMarkerVariants(t *testing.T) {
	input := strings.Join([]string{
		"EXPERIENCE",
		"Role_ID=Backend Engineer",
		"project: Checkout Service",
		"• Unicode bullet kept",
		"-    ",
	}, "\n")

	doc := Segment(input)

	// Markers match case-insensitively; an empty bullet body is dropped.
	assert.Equal(t, []string{"Unicode bullet kept"}, doc.Experience["backendengineer"]["checkoutservice"])
}

func TestSegmentProjectsTitleHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		isTitle bool
	}{
		{"Plain title", "Data Pipeline Rework", true},
		{"Trailing period rejected", "This sentence wraps onto a new line.", false},
		{"Trailing colon rejected", "Tech stack:", false},
		{"All caps rejected", "DATA PIPELINE REWORK", false},
		{"Over 80 chars rejected", strings.Repeat("x", 81), false},
		{"Exactly 80 chars accepted", strings.Repeat("x", 80), true},
		{"Digits only accepted (no cased chars)", "2024", true},
		{"Mixed case with digits", "Pipeline v2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTitle, isLikelyTitle(tt.line))
		})
	}
}

func TestSegmentProjectsBlock(t *testing.T) {
	input := strings.Join([]string{
		"PROJECTS",
		"Data Pipeline Rework",
		"- Rebuilt ingestion to process 5TB/day",
		"- Cut job runtime from 6h to 40m",
		"Stray wrapped prose that definitely ends with a period.",
		"Chat Server",
	}, "\n")

	doc := Segment(input)

	require.Contains(t, doc.Projects, "datapipelinerework")
	assert.Equal(t, []string{
		"Rebuilt ingestion to process 5TB/day",
		"Cut job runtime from 6h to 40m",
	}, doc.Projects["datapipelinerework"])

	// A title with no bullets is present and empty.
	require.Contains(t, doc.Projects, "chatserver")
	assert.Empty(t, doc.Projects["chatserver"])

	// The rejected prose line was discarded, not appended to a bullet.
	assert.Len(t, doc.Projects["datapipelinerework"], 2)
}

func TestSegmentProjectsBulletBeforeTitleDropped(t *testing.T) {
	doc := Segment("PROJECTS\n- Bullet with no project above it\nReal Project")

	require.Contains(t, doc.Projects, "realproject")
	assert.Empty(t, doc.Projects["realproject"])
	assert.Len(t, doc.Projects, 1)
}

func TestSegmentConsecutiveHeaders(t *testing.T) {
	doc := Segment("SUMMARY\nSKILLS\nEXPERIENCE\nPROJECTS")

	assert.Empty(t, doc.Summary)
	assert.Empty(t, doc.Skills)
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Projects)
}

func TestSegmentHeaderDecorations(t *testing.T) {
	// Headers survive casing, colons, and surrounding decoration because
	// classification filters to letters only.
	doc := Segment("summary:\nA line\n** SKILLS **\nGo")

	assert.Equal(t, []string{"A line"}, doc.Summary)
	assert.Equal(t, []string{"Go"}, doc.Skills)
}

func TestSegmentExitHeadersCloseSections(t *testing.T) {
	input := strings.Join([]string{
		"SUMMARY",
		"Summary line",
		"EDUCATION",
		"BS Computer Science",
		"SKILLS",
		"Go",
	}, "\n")

	doc := Segment(input)

	// EDUCATION closes the summary; its own content is ignored at the top
	// level, and SKILLS is then picked up normally.
	assert.Equal(t, []string{"Summary line"}, doc.Summary)
	assert.Equal(t, []string{"Go"}, doc.Skills)
}

func TestSegmentFullTemplate(t *testing.T) {
	input := strings.Join([]string{
		"SUMMARY:",
		"Backend engineer with 6 years building payment systems.",
		"Ships Go services handling 2M+ daily requests.",
		"",
		"SKILLS:",
		"Go, PostgreSQL, Kafka | Docker. Kubernetes",
		"",
		"EXPERIENCE:",
		"ROLE_ID=backendengineer",
		"PROJECT: Checkout Service",
		"- Cut p99 latency 40%",
		"- Drove $1.2M annual infra savings",
		"",
		"PROJECTS:",
		"Data Pipeline Rework",
		"- Processed 5TB/day",
	}, "\n")

	doc := Segment(input)

	assert.Len(t, doc.Summary, 2)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kafka", "Docker", "Kubernetes"}, doc.Skills)
	assert.Equal(t, []string{"Cut p99 latency 40%", "Drove $1.2M annual infra savings"},
		doc.Experience["backendengineer"]["checkoutservice"])
	assert.Equal(t, []string{"Processed 5TB/day"}, doc.Projects["datapipelinerework"])
}

func TestSegmentDeterministic(t *testing.T) {
	input := strings.Join([]string{
		"SUMMARY", "A line",
		"SKILLS", "Go, Rust",
		"EXPERIENCE", "ROLE_ID=a", "PROJECT: B", "- bullet",
		"PROJECTS", "Title C", "- bullet c",
	}, "\n")

	first := Segment(input)
	second := Segment(input)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Experience, second.Experience)
	assert.Equal(t, first.Projects, second.Projects)
}

func TestSegmentObserverDoesNotAffectResult(t *testing.T) {
	input := "EXPERIENCE\nROLE_ID=a\nPROJECT: B\n- bullet\nnoise line\nPROJECTS\nTitle"

	var events []Event
	observed := SegmentObserved(input, func(ev Event) { events = append(events, ev) })
	plain := Segment(input)

	assert.Equal(t, plain, observed)
	assert.NotEmpty(t, events)

	kinds := make(map[EventKind]int)
	for _, ev := range events {
		kinds[ev.Kind]++
	}
	assert.Equal(t, 2, kinds[EventHeader])
	assert.Equal(t, 1, kinds[EventRole])
	assert.Equal(t, 1, kinds[EventProject])
	assert.Equal(t, 1, kinds[EventBullet])
	assert.Equal(t, 1, kinds[EventDropped], "the noise line should be observed as dropped")
	assert.Equal(t, 1, kinds[EventTitle])
}

func TestDocumentLookups(t *testing.T) {
	doc := Segment("EXPERIENCE\nROLE_ID=a\nPROJECT: B\n- bullet")

	assert.Equal(t, []string{"bullet"}, doc.ExperienceBullets("a", "b"))
	assert.Nil(t, doc.ExperienceBullets("missing", "b"))
	assert.Nil(t, doc.ExperienceBullets("a", "missing"))
	assert.Nil(t, doc.ProjectBullets("missing"))
}
