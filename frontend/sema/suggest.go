package sema

import (
	"github.com/agnivade/levenshtein"
)

const maxSuggestDistance = 2

// suggest finds the visible name closest to name, innermost scope first.
func (a *Analysis) suggest(name string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for s := range a.scopes.Backward() {
		for _, cand := range s.Names() {
			d := levenshtein.ComputeDistance(name, cand)
			if d < bestDist && d < len(name) {
				best, bestDist = cand, d
			}
		}
	}
	return best, best != ""
}
