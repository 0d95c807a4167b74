package lightbox

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ResolveCategory maps free text typed into the filter prompt onto a known
// category. Exact matches win, then unique prefixes, then the closest
// category by edit distance within a tolerance of a third of its length
// (at least two edits).
func (c *Controller) ResolveCategory(input string) (string, bool) {
	q := normalize(input)
	if q == "" {
		return All, true
	}
	cats := c.Categories()
	for _, cat := range cats {
		if cat == q {
			return cat, true
		}
	}
	var prefixed []string
	for _, cat := range cats {
		if strings.HasPrefix(cat, q) {
			prefixed = append(prefixed, cat)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], true
	}

	best, bestDist := "", -1
	for _, cat := range cats {
		d := levenshtein.ComputeDistance(q, cat)
		if d > tolerance(cat) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = cat, d
		}
	}
	if bestDist < 0 {
		return "", false
	}
	return best, true
}

func tolerance(cat string) int {
	return max(2, len(cat)/3)
}
