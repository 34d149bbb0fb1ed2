package runner

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"portfolio/internal/project"
)

const maxSuggestions = 3

// Resolve maps a user query to exactly one discovered project.
// An exact name match wins immediately, even when other names contain the
// query as a substring. Otherwise the query is matched case-insensitively
// as a substring: one hit resolves, zero hits yield a *NotFoundError and
// several hits a *AmbiguousError listing the candidates.
func Resolve(query string, records []project.Record) (project.Record, error) {
	for _, rec := range records {
		if rec.Name == query {
			return rec, nil
		}
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var matches []project.Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return project.Record{}, &NotFoundError{
			Query:       query,
			Suggestions: suggest(query, records),
		}
	default:
		return project.Record{}, &AmbiguousError{
			Query:      query,
			Candidates: project.Names(matches),
		}
	}
}

// suggest returns up to maxSuggestions fuzzy near-misses for a failed query.
func suggest(query string, records []project.Record) []string {
	results := fuzzy.Find(query, project.Names(records))
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	var names []string
	for _, res := range results {
		names = append(names, res.Str)
	}
	return names
}
