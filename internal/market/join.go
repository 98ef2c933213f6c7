package market

// Merge inner-joins projects and credits on project identifier, producing one
// merged row per (project, credit) pair. Output order is left-preserving:
// projects in table order, each followed by its credits in table order. Rows
// with unmatched identifiers on either side are dropped silently; that is the
// intended behavior, not a candidate for an outer join.
func Merge(projects []Project, credits []Credit) []MergedRecord {
	creditsByProject := make(map[string][]Credit, len(projects))
	for _, c := range credits {
		creditsByProject[c.ProjectID] = append(creditsByProject[c.ProjectID], c)
	}

	merged := make([]MergedRecord, 0, len(credits))
	for _, p := range projects {
		for _, c := range creditsByProject[p.ID] {
			merged = append(merged, MergedRecord{
				Project:       p,
				Credit:        c,
				ProjectTypePT: TranslateProjectType(p.ProjectType),
			})
		}
	}
	return merged
}
