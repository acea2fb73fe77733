// Package config provides TOML-based configuration for orbit-reader.
package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration written as a Go duration string in the config
// file, as in the [dock] and [animation] sections:
//
//	grace = "300ms"
//	preference_reveal = "1s"
//	stagger = "20ms"
//
// An empty string means zero. Negative values are rejected.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("config: duration %q is negative", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
