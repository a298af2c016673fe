// Package discovery walks a dump directory and selects the input files the
// transform should see, applying the engine-module exclusion rules.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Discovery handles input file discovery with glob patterns and skip rules.
type Discovery struct {
	rootDir          string
	patterns         []glob.Glob
	engineModules    []string
	structFilePrefix string // non-empty: skip struct-only definition files
}

// Option configures a Discovery.
type Option func(*Discovery)

// WithStructFilesSkipped makes discovery skip struct-only definition files
// (they are resolved on demand, not walked).
func WithStructFilesSkipped(prefix string) Option {
	return func(d *Discovery) {
		d.structFilePrefix = prefix
	}
}

// New creates a file discovery instance for files with the given extension.
func New(rootDir, extension string, engineModules []string, opts ...Option) (*Discovery, error) {
	d := &Discovery{
		rootDir:       rootDir,
		engineModules: engineModules,
	}
	for _, opt := range opts {
		opt(d)
	}

	// Both root-level and nested files must match.
	for _, pattern := range []string{"*" + extension, "**/*" + extension} {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", pattern, err)
		}
		d.patterns = append(d.patterns, g)
	}

	return d, nil
}

// Discover walks the root directory and returns matching input files along
// with the files skipped by the engine-module rules.
func (d *Discovery) Discover() (files []string, skipped []string, err error) {
	files = []string{}
	skipped = []string{}

	err = filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if !d.matchesAnyPattern(relPath) {
			return nil
		}

		// Struct definition files are resolved on demand, not walked.
		if d.isStructFile(path) {
			return nil
		}

		if d.ShouldSkip(path) {
			skipped = append(skipped, path)
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk input directory: %w", err)
	}

	return files, skipped, nil
}

// ShouldSkip reports whether the file is excluded by name: engine-provided
// modules and generated enum headers.
func (d *Discovery) ShouldSkip(path string) bool {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, module := range d.engineModules {
		if strings.Contains(stem, module) {
			return true
		}
	}

	return strings.HasSuffix(stem, "_enums")
}

func (d *Discovery) isStructFile(path string) bool {
	if d.structFilePrefix == "" {
		return false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.HasPrefix(stem, d.structFilePrefix)
}

// Matches reports whether the path looks like an input file at all.
func (d *Discovery) Matches(path string) bool {
	relPath, err := filepath.Rel(d.rootDir, path)
	if err != nil {
		return false
	}
	return d.matchesAnyPattern(filepath.ToSlash(relPath))
}

func (d *Discovery) matchesAnyPattern(relPath string) bool {
	for _, g := range d.patterns {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
