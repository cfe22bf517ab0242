package keywords

import "sort"

// synonymGroups lists terms that should collapse to one canonical keyword.
// The first member of each group is the canonical key. Members are
// normalized with NormalizeTerm when the lookup is built, so dotted forms
// like "react.js" fold into "react js".
var synonymGroups = [][]string{
	{"react", "react.js", "reactjs", "react native"},
	{"node", "node.js", "nodejs"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"go", "golang"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"ci/cd", "cicd", "continuous integration", "continuous delivery"},
	{"machine learning", "ml"},
	{"rest", "restful", "rest api", "restful api"},
	{"grpc", "g rpc"},
	{"terraform", "iac", "infrastructure as code"},
	{"microservices", "micro services", "microservice"},
	{"vue", "vue.js", "vuejs"},
	{"angular", "angular.js", "angularjs"},
	{"c++", "cpp"},
	{"c#", "csharp"},
}

// synonymEntry records the canonical key for a group and all of its
// normalized member spellings.
type synonymEntry struct {
	canonical string
	variants  []string
}

// synonymIndex maps every normalized member of every group to its entry.
// Built once at process start and read-only afterwards, so it is safe for
// concurrent use.
var synonymIndex = buildSynonymIndex(synonymGroups)

func buildSynonymIndex(groups [][]string) map[string]synonymEntry {
	index := make(map[string]synonymEntry)
	for _, group := range groups {
		seen := make(map[string]struct{}, len(group))
		members := make([]string, 0, len(group))
		for _, member := range group {
			normalized := NormalizeTerm(member)
			if normalized == "" {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			members = append(members, normalized)
		}
		if len(members) == 0 {
			continue
		}
		entry := synonymEntry{canonical: members[0], variants: members}
		for _, member := range members {
			index[member] = entry
		}
	}
	return index
}

// Canonical resolves a normalized term to its canonical key. Terms outside
// every synonym group canonicalize to themselves.
func Canonical(term string) string {
	if entry, ok := synonymIndex[term]; ok {
		return entry.canonical
	}
	return term
}

// IsKnownTerm reports whether a normalized term belongs to a synonym group.
// Known terms bypass the generic/filler filters.
func IsKnownTerm(term string) bool {
	_, ok := synonymIndex[term]
	return ok
}

// GroupVariants returns the sorted normalized spellings of the synonym group
// containing term, or nil when the term is unlisted.
func GroupVariants(term string) []string {
	entry, ok := synonymIndex[term]
	if !ok {
		return nil
	}
	variants := make([]string, len(entry.variants))
	copy(variants, entry.variants)
	sort.Strings(variants)
	return variants
}
