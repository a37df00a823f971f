package club

import (
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// Resolve maps free text (a Slack display name, a form field) onto a roster
// player. An exact match after normalization wins; otherwise a single
// suggestion above 0.8 confidence is accepted. When nothing is accepted the
// best suggestions are returned.
func (r *Roster) Resolve(input string) (string, []Suggestion) {
	if r.Has(input) {
		return input, nil
	}
	normalized := normalizeName(input)
	if normalized == "" {
		return "", nil
	}

	var suggestions []Suggestion
	for _, name := range r.Names() {
		candidate := normalizeName(name)
		if candidate == normalized {
			return name, nil
		}
		score := stringSimilarity(normalized, candidate)
		if score > 0.3 {
			suggestions = append(suggestions, Suggestion{Player: name, Confidence: score})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > 0 && suggestions[0].Confidence > 0.8 &&
		(len(suggestions) == 1 || suggestions[1].Confidence <= 0.8) {
		log.Debug("Resolved player by similarity", "input", input, "player", suggestions[0].Player, "confidence", suggestions[0].Confidence)
		return suggestions[0].Player, nil
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return "", suggestions
}

// normalizeName lowercases name and keeps letters and digits only.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	maxLen := max(len(r1), len(r2))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(r1, r2))/float64(maxLen)
}

func levenshtein(s1, s2 []rune) int {
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}
