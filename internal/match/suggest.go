package match

import "sort"

// MinScore is the similarity below which Closest offers no suggestion.
const MinScore = 0.5

// Candidate is a name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every name against query, best first. Ties keep the input
// order.
func Rank(query string, names []string) []Candidate {
	out := make([]Candidate, 0, len(names))
	for _, n := range names {
		out = append(out, Candidate{Name: n, Score: Similarity(query, n)})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Closest returns the best scoring name if it reaches MinScore.
func Closest(query string, names []string) (string, bool) {
	ranked := Rank(query, names)
	if len(ranked) == 0 || ranked[0].Score < MinScore {
		return "", false
	}

	return ranked[0].Name, true
}
