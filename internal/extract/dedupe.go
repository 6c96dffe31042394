package extract

// DedupeSkills returns a new slice with first-occurrence order preserved and
// subsequent exact string duplicates removed. Matching is literal string
// equality, not NormalizeKey equality: "Python" and "python" are distinct
// entries. Do not tighten this to key equality without checking the rendered
// skills line, generators re-case tokens freely.
func DedupeSkills(skills []string) []string {
	deduped := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		deduped = append(deduped, skill)
	}
	return deduped
}
