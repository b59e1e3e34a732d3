package prompt

import "strings"

// Audience selects which slice of the prompt list a query applies to.
type Audience string

const (
	AudienceEveryone   Audience = "everyone"
	AudienceDevelopers Audience = "developers"
)

// ParseAudience maps a query-string value to an Audience. Anything that is
// not "developers" means everyone, matching the site's audience selector.
func ParseAudience(s string) Audience {
	if strings.EqualFold(s, string(AudienceDevelopers)) {
		return AudienceDevelopers
	}
	return AudienceEveryone
}

// FilterAudience returns the records visible to the given audience, in the
// original order. AudienceEveryone returns the input unchanged.
func FilterAudience(records []Record, audience Audience) []Record {
	if audience != AudienceDevelopers {
		return records
	}
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.ForDevs {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Search returns the records whose title or prompt text contains the query,
// case-insensitively. An empty query matches everything.
func Search(records []Record, query string) []Record {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	matched := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Act), q) ||
			strings.Contains(strings.ToLower(rec.Prompt), q) {
			matched = append(matched, rec)
		}
	}
	return matched
}
