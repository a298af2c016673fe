package consolidate

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modforge/sdkgen/internal/config"
	"github.com/modforge/sdkgen/internal/convert"
	"github.com/modforge/sdkgen/internal/discovery"
)

// ProgressReporter reports progress during consolidation.
type ProgressReporter interface {
	OnConsolidationStart(totalFiles int)
	OnConsolidationFileProcessed(fileName string)
	OnConsolidationComplete(stats *Stats)
}

// Stats summarizes one consolidation run.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	Declarations   int
	GroupsWritten  int
	Duration       time.Duration
}

// Consolidator merges converted headers into dependency-ordered,
// category-grouped output files.
type Consolidator struct {
	cfg       *config.Config
	inputDir  string
	outputDir string
	progress  ProgressReporter
	extractor *Extractor
	writer    *Writer
}

// Option configures a Consolidator.
type Option func(*Consolidator)

// WithProgress configures progress reporting.
func WithProgress(progress ProgressReporter) Option {
	return func(c *Consolidator) {
		c.progress = progress
	}
}

// New creates a consolidator.
func New(cfg *config.Config, inputDir, outputDir string, opts ...Option) *Consolidator {
	sanitizer := convert.NewSanitizer(cfg.Naming.DigitPrefix, cfg.Types.CorePrefixes)
	classifier := NewClassifier(cfg.Categories, cfg.DefaultCategory)

	c := &Consolidator{
		cfg:       cfg,
		inputDir:  inputDir,
		outputDir: outputDir,
		extractor: NewExtractor(sanitizer, classifier, cfg.Input.StructRefPrefix),
		writer:    NewWriter(cfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run performs the full consolidation: scan, extract, order, write.
func (c *Consolidator) Run(ctx context.Context) (*Stats, error) {
	startTime := time.Now()

	disc, err := discovery.New(c.inputDir, c.cfg.Input.Extension, c.cfg.EngineModules)
	if err != nil {
		return nil, err
	}

	files, skipped, err := disc.Discover()
	if err != nil {
		return nil, err
	}
	for _, path := range skipped {
		log.Printf("Skipping engine file: %s", path)
	}

	if c.progress != nil {
		c.progress.OnConsolidationStart(len(files))
	}

	stats := &Stats{FilesSkipped: len(skipped)}
	pool := NewPool()

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.processFile(path, pool, stats); err != nil {
			log.Printf("Warning: failed to process %s: %v", path, err)
		}

		if c.progress != nil {
			c.progress.OnConsolidationFileProcessed(filepath.Base(path))
		}
	}

	stats.Declarations = pool.Len()

	dg, err := BuildDependencyGraph(pool)
	if err != nil {
		return nil, err
	}

	groups, err := Emit(pool, dg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for name, content := range c.writer.RenderAll(groups) {
		outPath := filepath.Join(c.outputDir, name)
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		stats.GroupsWritten++
	}

	stats.Duration = time.Since(startTime)
	if c.progress != nil {
		c.progress.OnConsolidationComplete(stats)
	}

	return stats, nil
}

// processFile reads one converted header and extracts its declarations.
// Content mentioning an engine module contributes nothing to the pool.
func (c *Consolidator) processFile(path string, pool *Pool, stats *Stats) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	content := string(data)
	for _, module := range c.cfg.EngineModules {
		if strings.Contains(content, module) {
			stats.FilesSkipped++
			log.Printf("Skipping file with engine content: %s", path)
			return nil
		}
	}

	c.extractor.Extract(content, pool)
	stats.FilesProcessed++
	return nil
}
