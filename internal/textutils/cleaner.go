// Package textutils normalizes expense descriptions and keywords so that both
// sides of a keyword match are compared in the same form.
package textutils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalization rewrites a known merchant spelling to its canonical token.
// Pattern is matched against lowercased text; Replacement may use ${1} groups
// and must itself be left unchanged by Pattern.
type Normalization struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// DefaultNormalizations are the merchant spellings folded by Clean.
var DefaultNormalizations = []Normalization{
	{Pattern: `\bma?c\s?donald['’]?s?\b`, Replacement: "mcdonalds"},
	{Pattern: `\bstar\s?bucks?\b`, Replacement: "starbucks"},
	{Pattern: `\bdunk(?:in|ing)['’]?\s?donuts?\b`, Replacement: "dunkin"},
	{Pattern: `\b(amazon|walmart|target)\.com\b`, Replacement: "${1}"},
	{Pattern: `\b7[\s-]?eleven\b`, Replacement: "7eleven"},
	{Pattern: `\bchick[\s-]?fil[\s-]?a\b`, Replacement: "chickfila"},
	{Pattern: `\bh\s?&\s?m\b`, Replacement: "hm"},
	{Pattern: `\bat\s?&\s?t\b`, Replacement: "att"},
}

type rule struct {
	re          *regexp.Regexp
	replacement string
}

// Cleaner lowercases, folds accents, applies merchant normalizations, turns
// punctuation into spaces and collapses whitespace. Clean is idempotent and a
// Cleaner is safe for concurrent use.
type Cleaner struct {
	rules []rule
}

// NewCleaner compiles the given normalizations.
func NewCleaner(normalizations []Normalization) (*Cleaner, error) {
	c := &Cleaner{rules: make([]rule, 0, len(normalizations))}
	for _, n := range normalizations {
		re, err := regexp.Compile(n.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid normalization pattern %q: %w", n.Pattern, err)
		}
		c.rules = append(c.rules, rule{re: re, replacement: n.Replacement})
	}
	return c, nil
}

var defaultCleaner = mustCleaner(DefaultNormalizations)

func mustCleaner(normalizations []Normalization) *Cleaner {
	c, err := NewCleaner(normalizations)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCleaner returns the cleaner built from DefaultNormalizations.
func DefaultCleaner() *Cleaner {
	return defaultCleaner
}

// Clean normalizes s with the default cleaner.
func Clean(s string) string {
	return defaultCleaner.Clean(s)
}

// Clean returns the normalized form of s.
func (c *Cleaner) Clean(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	s = strings.ToLower(foldAccents(s))
	s = c.normalize(s)
	s = collapseSpaces(stripPunctuation(s))

	// spellings split by punctuation ("mc-donald") only match once it is gone
	return collapseSpaces(c.normalize(s))
}

func (c *Cleaner) normalize(s string) string {
	for _, r := range c.rules {
		s = r.re.ReplaceAllString(s, r.replacement)
	}
	return s
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
