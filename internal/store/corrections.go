package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"

	"gopkg.in/yaml.v3"
)

// YAMLCorrectionLog appends corrections to a YAML file. It is safe for
// concurrent use within one process.
type YAMLCorrectionLog struct {
	path   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewYAMLCorrectionLog creates a log writing to path. The file is created on
// the first Append.
func NewYAMLCorrectionLog(path string, logger logging.Logger) *YAMLCorrectionLog {
	return &YAMLCorrectionLog{path: path, logger: logging.OrDiscard(logger)}
}

// Path returns the file the log writes to.
func (l *YAMLCorrectionLog) Path() string {
	return l.path
}

// Append adds a correction to the end of the file.
func (l *YAMLCorrectionLog) Append(ctx context.Context, correction models.Correction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	log, err := l.read()
	if err != nil {
		return err
	}
	log.Corrections = append(log.Corrections, correction)

	if err := writeYAML(l.path, log); err != nil {
		return fmt.Errorf("error saving correction: %w", err)
	}

	l.logger.Debug("Correction appended",
		logging.Field{Key: logging.FieldFile, Value: l.path},
		logging.Field{Key: logging.FieldCorrection, Value: correction.ID},
		logging.Field{Key: logging.FieldCount, Value: len(log.Corrections)})
	return nil
}

// List returns every recorded correction in insertion order.
func (l *YAMLCorrectionLog) List(ctx context.Context) ([]models.Correction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	log, err := l.read()
	if err != nil {
		return nil, err
	}
	return log.Corrections, nil
}

// Close is a no-op; the file is rewritten on every Append.
func (l *YAMLCorrectionLog) Close() error {
	return nil
}

func (l *YAMLCorrectionLog) read() (models.CorrectionsLog, error) {
	var log models.CorrectionsLog

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return log, nil
	}
	if err != nil {
		return log, fmt.Errorf("error reading corrections file: %w", err)
	}
	if err := yaml.Unmarshal(data, &log); err != nil {
		return log, fmt.Errorf("error parsing corrections file %s: %w", l.path, err)
	}
	return log, nil
}
