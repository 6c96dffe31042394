package extract

// Document is the structured output of segmentation. It is freshly allocated
// per Segment call and treated as immutable once returned.
//
// Experience and Projects are keyed by NormalizeKey output. A key that is
// present with an empty value means "the generator mentioned this entity but
// produced no content for it"; an absent key means it was never mentioned.
// The renderer relies on that distinction to decide between printing bullets
// and printing a placeholder, so lookups must never conflate the two.
type Document struct {
	// Summary holds the raw summary lines in input order.
	Summary []string `json:"summary"`
	// Skills holds raw skill tokens in order of first mention. Duplicates
	// by normalized value are allowed here; dedup happens at the rendering
	// boundary (see DedupeSkills).
	Skills []string `json:"skills"`
	// Experience maps role key -> project key -> bullets.
	Experience map[string]map[string][]string `json:"experience"`
	// Projects maps standalone project key -> bullets.
	Projects map[string][]string `json:"projects"`
}

// NewDocument returns an empty Document with initialized maps.
func NewDocument() *Document {
	return &Document{
		Experience: make(map[string]map[string][]string),
		Projects:   make(map[string][]string),
	}
}

// ExperienceBullets returns the bullets recorded under (role, project), or
// nil if either key was never mentioned.
func (d *Document) ExperienceBullets(roleKey, projectKey string) []string {
	projects, ok := d.Experience[roleKey]
	if !ok {
		return nil
	}
	return projects[projectKey]
}

// ProjectBullets returns the bullets recorded for a standalone project key,
// or nil if it was never mentioned.
func (d *Document) ProjectBullets(projectKey string) []string {
	return d.Projects[projectKey]
}

// Empty reports whether segmentation found no content at all.
func (d *Document) Empty() bool {
	return len(d.Summary) == 0 && len(d.Skills) == 0 &&
		len(d.Experience) == 0 && len(d.Projects) == 0
}
