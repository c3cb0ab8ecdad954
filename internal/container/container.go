// Package container provides dependency injection for the expense-categorizer
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expense-categorizer/internal/categorizer"
	"fjacquet/expense-categorizer/internal/config"
	"fjacquet/expense-categorizer/internal/logging"
	"fjacquet/expense-categorizer/internal/models"
	"fjacquet/expense-categorizer/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	files       store.KeywordFiles
	keywords    *categorizer.KeywordStore
	engine      *categorizer.Engine
	corrections store.CorrectionLog
	sink        *categorizer.CorrectionSink
}

// NewContainer creates and wires all application dependencies from cfg.
// The correction log backend is opened here and released by Close.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := cfg.NewLogger()
	files := store.NewCategoryStore(cfg.Categories.File, cfg.Categories.LearnedFile, logger)

	corrections, err := NewCorrectionLog(cfg.Corrections, logger)
	if err != nil {
		return nil, err
	}

	c, err := NewContainerWith(cfg, logger, files, corrections)
	if err != nil {
		if corrections != nil {
			_ = corrections.Close()
		}
		return nil, err
	}
	return c, nil
}

// NewContainerWith wires the categorizer around the given collaborators.
// A nil corrections log disables correction logging but not learning.
func NewContainerWith(cfg *config.Config, logger logging.Logger, files store.KeywordFiles, corrections store.CorrectionLog) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if files == nil {
		return nil, fmt.Errorf("keyword files cannot be nil")
	}
	logger = logging.OrDiscard(logger)

	tables := categorizer.DefaultTables()
	overrides, err := files.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword overrides: %w", err)
	}
	if err := tables.ApplyOverrides(overrides); err != nil {
		return nil, fmt.Errorf("failed to apply keyword overrides: %w", err)
	}

	keywords, err := categorizer.NewKeywordStore(tables, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword store: %w", err)
	}

	if learned, err := files.LoadLearnedKeywords(); err != nil {
		logger.WithError(err).Warn("Failed to load learned keywords, starting without them")
	} else if restored := keywords.Restore(learned); restored > 0 {
		logger.Debug("Restored learned keywords", logging.Field{Key: logging.FieldCount, Value: restored})
	}

	variant := cfg.Categorizer.Variant
	scorer, err := categorizer.NewScorer(variant)
	if err != nil {
		return nil, err
	}
	engine, err := categorizer.NewEngine(keywords, scorer, tuningFor(cfg.Categorizer), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	var sinkLog categorizer.CorrectionLog
	if corrections != nil {
		sinkLog = corrections
	}
	sink := categorizer.NewCorrectionSink(keywords, sinkLog, categorizer.SinkOptions{
		Learn:               cfg.Categorizer.Learn,
		MinLearnTokenLength: cfg.Categorizer.MinLearnTokenLength,
	}, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldVariant, Value: engine.Variant()},
		logging.Field{Key: logging.FieldBackend, Value: cfg.Corrections.Backend})

	return &Container{
		logger:      logger,
		config:      cfg,
		files:       files,
		keywords:    keywords,
		engine:      engine,
		corrections: corrections,
		sink:        sink,
	}, nil
}

// NewCorrectionLog opens the configured correction log backend. The none
// backend returns a nil log.
func NewCorrectionLog(cfg config.CorrectionsConfig, logger logging.Logger) (store.CorrectionLog, error) {
	switch cfg.Backend {
	case models.CorrectionBackendYAML, "":
		return store.NewYAMLCorrectionLog(cfg.File, logger), nil
	case models.CorrectionBackendSQLite:
		log, err := store.NewSQLiteCorrectionLog(cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open correction database: %w", err)
		}
		return log, nil
	case models.CorrectionBackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown corrections backend: %s", cfg.Backend)
	}
}

// tuningFor returns the variant preset capped at the configured ceiling.
func tuningFor(cfg config.CategorizerConfig) categorizer.Tuning {
	tuning := categorizer.TuningFor(cfg.Variant)
	if cfg.ConfidenceCeiling <= 0 {
		return tuning
	}
	tuning.Ceiling = cfg.ConfidenceCeiling
	tuning.DecisiveFloor = min(tuning.DecisiveFloor, tuning.Ceiling)
	tuning.EmptyConfidence = min(tuning.EmptyConfidence, tuning.Ceiling)
	return tuning
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetEngine returns the prediction engine.
func (c *Container) GetEngine() *categorizer.Engine {
	return c.engine
}

// GetKeywordStore returns the keyword store shared by the engine and the sink.
func (c *Container) GetKeywordStore() *categorizer.KeywordStore {
	return c.keywords
}

// GetCorrectionSink returns the correction sink.
func (c *Container) GetCorrectionSink() *categorizer.CorrectionSink {
	return c.sink
}

// GetCorrectionLog returns the correction log, or nil for the none backend.
func (c *Container) GetCorrectionLog() store.CorrectionLog {
	return c.corrections
}

// SaveLearned persists every keyword learned so far, including those
// restored at startup.
func (c *Container) SaveLearned() error {
	learned := c.keywords.Learned()
	if len(learned) == 0 {
		return nil
	}
	if err := c.files.SaveLearnedKeywords(learned); err != nil {
		return fmt.Errorf("failed to save learned keywords: %w", err)
	}
	return nil
}

// Close releases the correction log.
func (c *Container) Close() error {
	var err error
	if c.corrections != nil {
		err = c.corrections.Close()
	}
	c.logger.Debug("Container closed")
	return err
}
