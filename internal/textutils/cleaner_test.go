package textutils_test

import (
	"strings"
	"testing"

	"fjacquet/expense-categorizer/internal/textutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Whitespace only", input: " \t\n ", expected: ""},
		{name: "Lowercase and punctuation", input: "STARBUCKS #1234, NYC!", expected: "starbucks 1234 nyc"},
		{name: "Collapse whitespace", input: "  uber   ride\tto  airport ", expected: "uber ride to airport"},
		{name: "Accents folded", input: "Café Crème Brûlée", expected: "cafe creme brulee"},
		{name: "McDonald's", input: "McDonald's drive thru", expected: "mcdonalds drive thru"},
		{name: "Mc Donald split", input: "mc donald", expected: "mcdonalds"},
		{name: "Mac Donald", input: "Mac Donalds", expected: "mcdonalds"},
		{name: "Hyphenated spelling", input: "MC-DONALD", expected: "mcdonalds"},
		{name: "Star Bucks", input: "Star Bucks latte", expected: "starbucks latte"},
		{name: "Dunkin Donuts", input: "Dunkin' Donuts", expected: "dunkin"},
		{name: "Amazon dot com", input: "AMAZON.COM*MK1234", expected: "amazon mk1234"},
		{name: "Walmart dot com", input: "walmart.com order", expected: "walmart order"},
		{name: "Seven eleven", input: "7-Eleven #55", expected: "7eleven 55"},
		{name: "Chick-fil-A", input: "Chick-fil-A", expected: "chickfila"},
		{name: "H&M", input: "H&M store", expected: "hm store"},
		{name: "AT&T", input: "AT&T wireless", expected: "att wireless"},
		{name: "Non latin kept", input: "東京 ramen", expected: "東京 ramen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Starbucks coffee",
		"McDonald's",
		"mc-donald's mac donald",
		"Dunkin Donuts / Star Buck",
		"AMAZON.COM marketplace",
		"Ünïcödé   ÑOÑO",
		"7 - eleven chick fil a",
		"ﬁne ½ price",
		strings.Repeat("netflix subscription ", 200),
	}

	for _, input := range inputs {
		once := textutils.Clean(input)
		assert.Equal(t, once, textutils.Clean(once), "cleaning %q twice changed the result", input)
	}
}

func TestNewCleaner_InvalidPattern(t *testing.T) {
	_, err := textutils.NewCleaner([]textutils.Normalization{{Pattern: "(", Replacement: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid normalization pattern")
}

func TestNewCleaner_CustomRules(t *testing.T) {
	cleaner, err := textutils.NewCleaner([]textutils.Normalization{
		{Pattern: `\bwhole\s?foods?\b`, Replacement: "wholefoods"},
	})
	require.NoError(t, err)

	assert.Equal(t, "wholefoods market", cleaner.Clean("Whole Foods Market"))
	// default rules are not part of a custom cleaner
	assert.Equal(t, "mc donald", cleaner.Clean("Mc Donald"))
}
