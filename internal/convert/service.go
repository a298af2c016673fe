package convert

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/modforge/sdkgen/internal/config"
	"github.com/modforge/sdkgen/internal/discovery"
)

// ProgressReporter reports progress during a conversion run.
type ProgressReporter interface {
	OnScanStart(totalFiles int)
	OnFileProcessed(fileName string)
	OnScanComplete(stats *Stats)
}

// Stats summarizes one conversion run.
type Stats struct {
	FilesConverted int
	FilesSkipped   int
	Duration       time.Duration
}

// Service converts a whole dump directory, file by file.
type Service struct {
	cfg       *config.Config
	inputDir  string
	outputDir string
	progress  ProgressReporter
	converter *FileConverter
	disc      *discovery.Discovery
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithProgress configures progress reporting.
func WithProgress(progress ProgressReporter) ServiceOption {
	return func(s *Service) {
		s.progress = progress
	}
}

// NewService creates a conversion service.
func NewService(cfg *config.Config, inputDir, outputDir string, opts ...ServiceOption) (*Service, error) {
	converter, err := NewFileConverter(cfg, inputDir)
	if err != nil {
		return nil, err
	}

	disc, err := discovery.New(inputDir, cfg.Input.Extension, cfg.EngineModules,
		discovery.WithStructFilesSkipped(cfg.Input.StructFilePrefix))
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		inputDir:  inputDir,
		outputDir: outputDir,
		converter: converter,
		disc:      disc,
	}, nil
}

// Close releases resources.
func (s *Service) Close() {
	s.converter.Close()
}

// Run converts every discovered input file into the output directory,
// preserving relative paths. A single unreadable file is logged and skipped;
// an unreadable input root or uncreatable output root aborts the run.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	startTime := time.Now()

	// Sibling struct files may have changed since the last run (watch mode
	// reruns on the same service).
	s.converter.Invalidate()

	files, skipped, err := s.disc.Discover()
	if err != nil {
		return nil, err
	}
	for _, path := range skipped {
		log.Printf("Skipping engine file: %s", path)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if s.progress != nil {
		s.progress.OnScanStart(len(files))
	}

	stats := &Stats{FilesSkipped: len(skipped)}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := s.convertOne(path); err != nil {
			log.Printf("Warning: failed to convert %s: %v", path, err)
		} else {
			stats.FilesConverted++
		}

		if s.progress != nil {
			s.progress.OnFileProcessed(filepath.Base(path))
		}
	}

	stats.Duration = time.Since(startTime)
	if s.progress != nil {
		s.progress.OnScanComplete(stats)
	}

	return stats, nil
}

func (s *Service) convertOne(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	relPath, err := filepath.Rel(s.inputDir, path)
	if err != nil {
		return err
	}

	outPath := filepath.Join(s.outputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output subdirectory: %w", err)
	}

	output := s.converter.ConvertContent(string(data))
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
