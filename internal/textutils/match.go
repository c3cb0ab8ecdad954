package textutils

import "strings"

// MinSubstringLength is the shortest keyword that may match inside a longer
// word. Shorter keywords ("bar", "tea", "gas") only match as whole words.
const MinSubstringLength = 4

// ContainsPhrase reports whether phrase occurs in text on word boundaries.
// Both arguments must already be cleaned.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" || text == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

// MatchKind describes how a keyword was found in a description.
type MatchKind int

const (
	NoMatch MatchKind = iota
	SubstringMatch
	WordMatch
)

// MatchKeyword reports how keyword occurs in text. Both arguments must
// already be cleaned.
func MatchKeyword(text, keyword string) MatchKind {
	if ContainsPhrase(text, keyword) {
		return WordMatch
	}
	if len(keyword) >= MinSubstringLength && strings.Contains(text, keyword) {
		return SubstringMatch
	}
	return NoMatch
}

// WordContains reports whether keyword equals word or, when long enough,
// occurs inside it.
func WordContains(word, keyword string) bool {
	if word == keyword {
		return true
	}
	return len(keyword) >= MinSubstringLength && strings.Contains(word, keyword)
}
