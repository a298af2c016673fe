package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidExtension indicates a malformed input extension
	ErrInvalidExtension = errors.New("invalid input extension")

	// ErrEmptyNamespace indicates a missing output namespace
	ErrEmptyNamespace = errors.New("empty namespace")

	// ErrInvalidDigitPrefix indicates a digit prefix that is not a single letter
	ErrInvalidDigitPrefix = errors.New("invalid digit prefix")

	// ErrEmptyMappings indicates a missing type mapping table
	ErrEmptyMappings = errors.New("empty type mappings")

	// ErrInvalidCategory indicates a category with no name or no keywords
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyDefaultCategory indicates a missing default category
	ErrEmptyDefaultCategory = errors.New("empty default category")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if !strings.HasPrefix(cfg.Input.Extension, ".") {
		errs = append(errs, fmt.Errorf("%w: must start with '.', got '%s'", ErrInvalidExtension, cfg.Input.Extension))
	}

	if strings.TrimSpace(cfg.Naming.Namespace) == "" {
		errs = append(errs, fmt.Errorf("%w: namespace is required", ErrEmptyNamespace))
	}

	if len(cfg.Naming.DigitPrefix) != 1 || cfg.Naming.DigitPrefix[0] < 'A' {
		errs = append(errs, fmt.Errorf("%w: must be a single letter, got '%s'", ErrInvalidDigitPrefix, cfg.Naming.DigitPrefix))
	}

	if len(cfg.Types.Mappings) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one type mapping required", ErrEmptyMappings))
	}

	for _, cat := range cfg.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: category name is required", ErrInvalidCategory))
		}
		if len(cat.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("%w: category '%s' has no keywords", ErrInvalidCategory, cat.Name))
		}
	}

	if strings.TrimSpace(cfg.DefaultCategory) == "" {
		errs = append(errs, fmt.Errorf("%w: default category is required", ErrEmptyDefaultCategory))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
