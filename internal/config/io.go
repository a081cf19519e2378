package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads Settings from a JSON file. Zero-valued size or distance
// fields are filled in from the defaults.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s := Default()
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		d := Default()
		s.Width, s.Height = d.Width, d.Height
	}
	if s.Distance <= 0 {
		s.Distance = Default().Distance
	}
	return s, nil
}

// Save writes Settings to a JSON file.
func Save(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}
