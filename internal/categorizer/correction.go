package categorizer

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"
)

// DefaultMinLearnTokenLength is the shortest token learned from a correction.
const DefaultMinLearnTokenLength = 4

// CorrectionLog durably records corrections.
type CorrectionLog interface {
	Append(ctx context.Context, correction models.Correction) error
}

// SinkOptions configures a CorrectionSink.
type SinkOptions struct {
	Learn               bool
	MinLearnTokenLength int
}

// CorrectionOutcome reports what RecordCorrection did.
type CorrectionOutcome struct {
	Correction    models.Correction
	KnownCategory bool
	Logged        bool
	Learned       []string
	Skipped       []string
}

// CorrectionSink records user corrections and feeds them back into the
// keyword store.
type CorrectionSink struct {
	store  *KeywordStore
	log    CorrectionLog
	opts   SinkOptions
	logger logging.Logger

	now   func() time.Time
	newID func() string
}

// NewCorrectionSink creates a sink. A nil log only learns.
func NewCorrectionSink(store *KeywordStore, log CorrectionLog, opts SinkOptions, logger logging.Logger) *CorrectionSink {
	if opts.MinLearnTokenLength <= 0 {
		opts.MinLearnTokenLength = DefaultMinLearnTokenLength
	}
	return &CorrectionSink{
		store:  store,
		log:    log,
		opts:   opts,
		logger: logging.OrDiscard(logger),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// RecordCorrection stores a correction and, when enabled, learns its tokens
// under the corrected category. It never fails: log errors and learn
// collisions are logged and reported in the outcome.
func (s *CorrectionSink) RecordCorrection(ctx context.Context, description, correctCategory string, amount *float64) CorrectionOutcome {
	in := NewInput("", amount)
	correction := models.Correction{
		ID:              s.newID(),
		Description:     description,
		CorrectCategory: correctCategory,
		RecordedAt:      s.now().UTC(),
	}
	if in.HasAmount {
		a := in.Amount
		correction.Amount = &a
	}

	outcome := CorrectionOutcome{Correction: correction}
	logger := s.logger.WithFields(
		logging.Field{Key: logging.FieldCorrection, Value: correction.ID},
		logging.Field{Key: logging.FieldCategory, Value: correctCategory},
	)
	if correction.Amount != nil {
		logger = logger.WithField(logging.FieldAmount, *correction.Amount)
	}

	if s.log != nil {
		if err := s.log.Append(ctx, correction); err != nil {
			logger.WithError(err).Warn("Failed to record correction")
		} else {
			outcome.Logged = true
		}
	}

	category, ok := models.ParseCategory(correctCategory)
	if !ok {
		logger.Warn("Correction names an unknown category, nothing learned",
			logging.Field{Key: logging.FieldReason, Value: "unknown category"})
		return outcome
	}
	outcome.KnownCategory = true
	if !s.opts.Learn || s.store == nil {
		return outcome
	}

	for _, token := range s.learnableTokens(description) {
		added, err := s.store.Learn(category, token)
		switch {
		case errors.Is(err, ErrLearnCollision):
			logger.WithError(err).Debug("Skipped token owned by another category",
				logging.Field{Key: logging.FieldKeyword, Value: token},
				logging.Field{Key: logging.FieldReason, Value: "collision"})
			outcome.Skipped = append(outcome.Skipped, token)
		case err != nil:
			logger.WithError(err).Debug("Skipped token",
				logging.Field{Key: logging.FieldKeyword, Value: token})
			outcome.Skipped = append(outcome.Skipped, token)
		case added:
			outcome.Learned = append(outcome.Learned, token)
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(outcome.Learned)},
		logging.Field{Key: logging.FieldStatus, Value: "recorded"},
	).Info("Correction recorded")
	return outcome
}

// learnableTokens returns the distinct cleaned tokens long enough to learn.
// Purely numeric tokens such as store numbers are never learned.
func (s *CorrectionSink) learnableTokens(description string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(s.store.Cleaner().Clean(description)) {
		if len(tok) < s.opts.MinLearnTokenLength || isNumeric(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
