// Package seed generates static JSON fixture files for users, cases and evidence.
// The running server does not read them.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Fixture file names written into the data directory.
const (
	UsersFile    = "users.json"
	CasesFile    = "cases.json"
	EvidenceFile = "evidence.json"
)

// Config contains seed settings.
type Config struct {
	DataDir    string
	BcryptCost int
	Now        func() time.Time
}

// DefaultConfig returns the default seed configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:    "data",
		BcryptCost: bcrypt.DefaultCost,
		Now:        time.Now,
	}
}

// Summary reports how many records of each kind were written.
type Summary struct {
	DataDir    string
	Users      int
	Cases      int
	Evidence   int
	Categories map[string]int
}

// Run generates the dataset and writes it to cfg.DataDir.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	dataset, err := Generate(cfg.Now().UTC(), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generate fixtures: %w", err)
	}

	if err := Write(ctx, cfg.DataDir, dataset); err != nil {
		return nil, err
	}

	categories := make(map[string]int)
	for _, c := range dataset.Cases {
		categories[c.Category]++
	}

	return &Summary{
		DataDir:    cfg.DataDir,
		Users:      len(dataset.Users),
		Cases:      len(dataset.Cases),
		Evidence:   len(dataset.Evidence),
		Categories: categories,
	}, nil
}

// Write stores the dataset as indented JSON files, creating dir if needed.
func Write(ctx context.Context, dir string, dataset *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{UsersFile, dataset.Users},
		{CasesFile, dataset.Cases},
		{EvidenceFile, dataset.Evidence},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("write fixtures: %w", err)
		}
		if err := writeJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return err
		}
		slog.Debug("fixture written", "file", f.name)
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
