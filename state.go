package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/radial/internal/config"
	"github.com/olivier-w/radial/internal/radial"
)

func resolveStatePath(flag, configured string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return p
	}
	if p := strings.TrimSpace(configured); p != "" {
		return p
	}
	return config.DefaultStatePath()
}

// loadState reads the snapshot at path. A missing file is not an error and
// yields a nil state.
func loadState(path string) (radial.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}
	return radial.DecodeState(data)
}

func saveState(path string, s *radial.SavedState) error {
	data, err := radial.EncodeState(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
