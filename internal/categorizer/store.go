package categorizer

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/textutils"
)

type compiledPattern struct {
	re     *regexp.Regexp
	source string
	weight float64
}

type categoryTables struct {
	keywords []string
	words    []string
	priority []string
	strong   []string
	semantic []compiledPattern
	context  []compiledPattern
	amount   *AmountRange
}

// Snapshot is an immutable view of a KeywordStore. A scorer works on a
// single snapshot for the whole prediction, so a concurrent Learn never
// shows up halfway through.
type Snapshot struct {
	categories []models.Category
	tables     []categoryTables
	brands     []BrandEntry
	brandIndex map[string]int
	floors     []TermFloor
	rules      []ContextRule
	learned    map[models.Category][]string
}

// KeywordStore holds the keyword, pattern and brand tables used for scoring.
// It is safe for concurrent use; Learn swaps in a new snapshot.
type KeywordStore struct {
	mu      sync.RWMutex
	current *Snapshot
	cleaner *textutils.Cleaner
	logger  logging.Logger
}

// NewKeywordStore cleans, de-duplicates and compiles tables. Any reference to
// a category outside the enumeration, and any pattern that does not compile,
// yields a *StoreInconsistencyError.
func NewKeywordStore(tables Tables, cleaner *textutils.Cleaner, logger logging.Logger) (*KeywordStore, error) {
	if cleaner == nil {
		cleaner = textutils.DefaultCleaner()
	}
	logger = logging.OrDiscard(logger)

	snap, err := buildSnapshot(tables, cleaner)
	if err != nil {
		return nil, err
	}

	keywordCount := 0
	for _, t := range snap.tables {
		keywordCount += len(t.keywords)
	}
	logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: keywordCount},
		logging.Field{Key: "brands", Value: len(snap.brands)},
	).Debug("Keyword store built")

	return &KeywordStore{current: snap, cleaner: cleaner, logger: logger}, nil
}

func buildSnapshot(t Tables, cleaner *textutils.Cleaner) (*Snapshot, error) {
	if err := checkCategories("keywords", t.Keywords); err != nil {
		return nil, err
	}
	if err := checkCategories("priority keywords", t.PriorityKeywords); err != nil {
		return nil, err
	}
	if err := checkCategories("strong indicators", t.StrongIndicators); err != nil {
		return nil, err
	}
	if err := checkCategories("semantic patterns", t.SemanticPatterns); err != nil {
		return nil, err
	}
	if err := checkCategories("context patterns", t.ContextPatterns); err != nil {
		return nil, err
	}
	if err := checkCategories("amount ranges", t.AmountRanges); err != nil {
		return nil, err
	}

	cats := models.AllCategories()
	snap := &Snapshot{
		categories: cats,
		tables:     make([]categoryTables, len(cats)),
		brandIndex: make(map[string]int),
		learned:    make(map[models.Category][]string),
	}

	for i, c := range cats {
		ct := &snap.tables[i]
		ct.keywords = cleanList(cleaner, t.Keywords[c])
		ct.words = splitWords(ct.keywords)
		ct.priority = cleanList(cleaner, t.PriorityKeywords[c])
		ct.strong = cleanList(cleaner, t.StrongIndicators[c])

		for _, p := range t.SemanticPatterns[c] {
			cp, err := compilePattern("semantic patterns", c, p, 0)
			if err != nil {
				return nil, err
			}
			ct.semantic = append(ct.semantic, cp)
		}
		for _, wp := range t.ContextPatterns[c] {
			cp, err := compilePattern("context patterns", c, wp.Pattern, wp.Weight)
			if err != nil {
				return nil, err
			}
			ct.context = append(ct.context, cp)
		}

		if r, ok := t.AmountRanges[c]; ok {
			if r.TypicalMin > r.TypicalMax || r.PeakMin > r.PeakMax {
				return nil, &StoreInconsistencyError{
					Table: "amount ranges", Category: string(c), Err: errors.New("range bounds are inverted"),
				}
			}
			ct.amount = &r
		}
	}

	for _, b := range t.Brands {
		if !b.Category.IsValid() {
			return nil, &StoreInconsistencyError{Table: "brands", Category: string(b.Category), Entry: b.Token, Err: ErrUnknownCategory}
		}
		if b.Confidence <= 0 || b.Confidence > 1 {
			return nil, &StoreInconsistencyError{
				Table: "brands", Category: string(b.Category), Entry: b.Token, Err: errors.New("confidence outside (0, 1]"),
			}
		}
		token := cleaner.Clean(b.Token)
		if token == "" {
			continue
		}
		if i, seen := snap.brandIndex[token]; seen {
			prev := &snap.brands[i]
			if prev.Category != b.Category {
				return nil, &StoreInconsistencyError{
					Table: "brands", Category: string(b.Category), Entry: token,
					Err: fmt.Errorf("already mapped to %s", prev.Category),
				}
			}
			if b.Confidence > prev.Confidence {
				prev.Confidence = b.Confidence
			}
			continue
		}
		snap.brandIndex[token] = len(snap.brands)
		snap.brands = append(snap.brands, BrandEntry{Token: token, Category: b.Category, Confidence: b.Confidence})
	}
	// Longest brands first, so nested shorter brands can be masked.
	sort.SliceStable(snap.brands, func(i, j int) bool {
		return len(snap.brands[i].Token) > len(snap.brands[j].Token)
	})
	for i, b := range snap.brands {
		snap.brandIndex[b.Token] = i
	}

	for _, f := range t.TermFloors {
		if !f.Category.IsValid() {
			return nil, &StoreInconsistencyError{Table: "term floors", Category: string(f.Category), Entry: f.Term, Err: ErrUnknownCategory}
		}
		if term := cleaner.Clean(f.Term); term != "" {
			snap.floors = append(snap.floors, TermFloor{Term: term, Category: f.Category, Floor: f.Floor})
		}
	}

	for _, r := range t.ContextRules {
		rule := ContextRule{Name: r.Name, Terms: cleanList(cleaner, r.Terms), Amount: r.Amount, Boosts: make(map[models.Category]float64, len(r.Boosts))}
		for c, boost := range r.Boosts {
			if !c.IsValid() {
				return nil, &StoreInconsistencyError{Table: "context rules", Category: string(c), Entry: r.Name, Err: ErrUnknownCategory}
			}
			rule.Boosts[c] = boost
		}
		if len(rule.Terms) == 0 && rule.Amount == nil {
			continue
		}
		snap.rules = append(snap.rules, rule)
	}

	return snap, nil
}

func checkCategories[V any](table string, m map[models.Category]V) error {
	var unknown []string
	for c := range m {
		if !c.IsValid() {
			unknown = append(unknown, string(c))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &StoreInconsistencyError{Table: table, Category: unknown[0], Err: ErrUnknownCategory}
}

func compilePattern(table string, c models.Category, pattern string, weight float64) (compiledPattern, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return compiledPattern{}, &StoreInconsistencyError{Table: table, Category: string(c), Entry: pattern, Err: err}
	}
	return compiledPattern{re: re, source: pattern, weight: weight}, nil
}

func cleanList(cleaner *textutils.Cleaner, list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, item := range list {
		cleaned := cleaner.Clean(item)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

func splitWords(keywords []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		for _, w := range strings.Fields(kw) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

func appendWords(words []string, keyword string) []string {
	out := append([]string(nil), words...)
	for _, w := range strings.Fields(keyword) {
		if !containsString(out, w) {
			out = append(out, w)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Snapshot returns the current immutable view.
func (s *KeywordStore) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Cleaner returns the cleaner the store was built with.
func (s *KeywordStore) Cleaner() *textutils.Cleaner {
	return s.cleaner
}

// KeywordsFor returns a copy of the cleaned keyword list of a category, in
// insertion order.
func (s *KeywordStore) KeywordsFor(category models.Category) []string {
	return s.Snapshot().Keywords(category)
}

// PatternsFor returns the compiled semantic patterns of a category.
func (s *KeywordStore) PatternsFor(category models.Category) []*regexp.Regexp {
	return s.Snapshot().Patterns(category)
}

// BrandConfidenceFor looks up a brand token. The token is cleaned first.
func (s *KeywordStore) BrandConfidenceFor(token string) (models.Category, float64, bool) {
	snap := s.Snapshot()
	i, ok := snap.brandIndex[s.cleaner.Clean(token)]
	if !ok {
		return "", 0, false
	}
	b := snap.brands[i]
	return b.Category, b.Confidence, true
}

// Learn appends token to the keyword list of category. It reports whether the
// token was added: a token already in the same category is a no-op, and one
// owned by another category fails with ErrLearnCollision.
func (s *KeywordStore) Learn(category models.Category, token string) (bool, error) {
	idx := category.Index()
	if idx < 0 {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	cleaned := s.cleaner.Clean(token)
	if cleaned == "" {
		return false, ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current
	for i := range cur.tables {
		if !containsString(cur.tables[i].keywords, cleaned) {
			continue
		}
		if i == idx {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is a %s keyword", ErrLearnCollision, cleaned, cur.categories[i])
	}

	s.current = cur.withKeyword(idx, cleaned)
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: string(category)},
		logging.Field{Key: logging.FieldKeyword, Value: cleaned},
	).Debug("Learned keyword")
	return true, nil
}

// Learned returns a copy of every token learned since construction, grouped by
// category.
func (s *KeywordStore) Learned() map[models.Category][]string {
	snap := s.Snapshot()
	out := make(map[models.Category][]string, len(snap.learned))
	for c, tokens := range snap.learned {
		out[c] = append([]string(nil), tokens...)
	}
	return out
}

func (s *Snapshot) withKeyword(idx int, keyword string) *Snapshot {
	next := *s
	next.tables = append([]categoryTables(nil), s.tables...)

	ct := next.tables[idx]
	ct.keywords = append(append(make([]string, 0, len(ct.keywords)+1), ct.keywords...), keyword)
	ct.words = appendWords(ct.words, keyword)
	next.tables[idx] = ct

	next.learned = make(map[models.Category][]string, len(s.learned)+1)
	for c, tokens := range s.learned {
		next.learned[c] = tokens
	}
	c := s.categories[idx]
	next.learned[c] = append(append([]string(nil), s.learned[c]...), keyword)
	return &next
}

// Categories returns the categories in declaration order.
func (s *Snapshot) Categories() []models.Category {
	return append([]models.Category(nil), s.categories...)
}

// Keywords returns a copy of the keyword list of a category.
func (s *Snapshot) Keywords(category models.Category) []string {
	idx := category.Index()
	if idx < 0 {
		return nil
	}
	return append([]string(nil), s.tables[idx].keywords...)
}

// BrandCount returns the number of brands in the brand table.
func (s *Snapshot) BrandCount() int {
	return len(s.brands)
}

// Patterns returns the compiled semantic patterns of a category.
func (s *Snapshot) Patterns(category models.Category) []*regexp.Regexp {
	idx := category.Index()
	if idx < 0 {
		return nil
	}
	out := make([]*regexp.Regexp, 0, len(s.tables[idx].semantic))
	for _, p := range s.tables[idx].semantic {
		out = append(out, p.re)
	}
	return out
}

// IsBrand reports whether a cleaned token is a known brand.
func (s *Snapshot) IsBrand(token string) bool {
	_, ok := s.brandIndex[token]
	return ok
}

// BrandMatches returns, per category index, the highest confidence of a brand
// found in text on token boundaries. A brand nested entirely inside a longer
// matched brand is ignored, so "uber eats" does not also count as "uber".
func (s *Snapshot) BrandMatches(text string) []float64 {
	best := make([]float64, len(s.categories))
	if text == "" || len(s.brands) == 0 {
		return best
	}

	padded := " " + text + " "
	covered := make([]bool, len(padded))
	for _, b := range s.brands {
		needle := " " + b.Token + " "
		for from := 0; from < len(padded); {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			start := from + i + 1
			end := start + len(b.Token)
			if !allTrue(covered[start:end]) {
				if idx := b.Category.Index(); b.Confidence > best[idx] {
					best[idx] = b.Confidence
				}
				for k := start; k < end; k++ {
					covered[k] = true
				}
			}
			from = start
		}
	}
	return best
}

func allTrue(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}

// strongHits counts the strong indicators of a category present in text.
func (s *Snapshot) strongHits(idx int, text string) int {
	hits := 0
	for _, ind := range s.tables[idx].strong {
		if textutils.MatchKeyword(text, ind) != textutils.NoMatch {
			hits++
		}
	}
	return hits
}

// termFloor returns the highest floor of the terms present in text that
// belong to the category at idx, or 0.
func (s *Snapshot) termFloor(idx int, text string) float64 {
	floor := 0.0
	c := s.categories[idx]
	for _, f := range s.floors {
		if f.Category == c && f.Floor > floor && textutils.ContainsPhrase(text, f.Term) {
			floor = f.Floor
		}
	}
	return floor
}

// applyRules adds the boosts of every context rule that holds.
func (s *Snapshot) applyRules(scores []float64, in Input) {
	for _, r := range s.rules {
		if !r.applies(in.Text, in.Amount, in.HasAmount) {
			continue
		}
		for c, boost := range r.Boosts {
			scores[c.Index()] += boost
		}
	}
}

// Restore replays keywords learned in an earlier run, keyed by category name.
// Unknown categories and tokens now owned by another category are skipped.
// It returns the number of tokens added.
func (s *KeywordStore) Restore(learned map[string][]string) int {
	names := make([]string, 0, len(learned))
	for name := range learned {
		names = append(names, name)
	}
	sort.Strings(names)

	added := 0
	for _, name := range names {
		category, ok := models.ParseCategory(name)
		if !ok {
			s.logger.WithField(logging.FieldCategory, name).Warn("Ignoring learned keywords of unknown category")
			continue
		}
		for _, token := range learned[name] {
			ok, err := s.Learn(category, token)
			if err != nil {
				s.logger.WithError(err).WithField(logging.FieldKeyword, token).Debug("Skipped learned keyword")
				continue
			}
			if ok {
				added++
			}
		}
	}
	return added
}
