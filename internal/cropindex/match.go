package cropindex

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MinMatchScore is the weighted-ratio floor below which a typed crop name
// is treated as not found rather than silently mapped to the closest entry.
const MinMatchScore = 60

// MatchCrop resolves a user-typed crop name against the candidate list
// using weighted fuzzy ratio. The first candidate reaching the maximum
// score wins, so candidate order decides ties. Returns ok=false when no
// candidate clears MinMatchScore.
func MatchCrop(input string, candidates []string) (name string, score int, ok bool) {
	best := -1
	for _, c := range candidates {
		s := fuzzy.WRatio(input, c)
		if s > best {
			best = s
			name = c
		}
	}
	if best < MinMatchScore {
		return "", best, false
	}
	return name, best, true
}
