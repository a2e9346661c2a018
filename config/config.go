// Package config holds engine tunables that never affect correctness,
// only performance and diagnostics — the ambient configuration layer
// every package in this corpus carries even when, as here, the core
// itself has no file/CLI/environment surface to read it from (spec.md
// §6 excludes those explicitly). Grounded on hyper-light-sylk's
// core/config/manager.go, which tags its Config struct for yaml so a
// host can deserialize one; this package follows the same convention,
// and FromYAML and Config.UnmarshalYAML below are where it calls into
// yaml.v3 itself, decoding bytes a host hands it rather than reading a file.
package config

import (
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables a host may want to override. The zero value
// is invalid — use Default() or Merge an override onto it.
type Config struct {
	// LogLevel is a log level a host may apply to the logger it passes to
	// New...WithLogger. Neither Store nor Unifier reads it: given a nil
	// logger they use slog.Default() unchanged. A nil LogLevel means "not
	// set" to Merge/FromYAML; it is a pointer rather than a plain
	// slog.Level specifically so that an explicit override of
	// slog.LevelInfo (which is the zero Level) is distinguishable from
	// no override at all.
	LogLevel *slog.Level `yaml:"log_level"`

	// PersistentMapCompactionDivisor controls how eagerly the
	// store's persistent map flattens its copy-on-write overlay back
	// into a fresh base (internal/pmap): the overlay is compacted once it
	// outgrows the base size divided by this value, so larger values
	// compact more often.
	PersistentMapCompactionDivisor int `yaml:"persistent_map_compaction_divisor"`

	// PersistentMapCompactionFloor is the minimum overlay size that can
	// trigger a compaction, so a small store isn't flattened on every
	// single bind.
	PersistentMapCompactionFloor int `yaml:"persistent_map_compaction_floor"`
}

// Default returns the baseline tuning used when a host supplies none.
func Default() Config {
	level := slog.LevelDebug
	return Config{
		LogLevel:                       &level,
		PersistentMapCompactionDivisor: 4,
		PersistentMapCompactionFloor:   8,
	}
}

// Merge overlays every set field of override onto base and returns the
// result, leaving both inputs untouched. Grounded on
// core/config/merge.go's reflect-based DeepMerge, simplified to this
// package's flat, all-scalar Config (no nested structs/maps/slices to
// recurse through).
func Merge(base, override Config) Config {
	out := base
	if override.LogLevel != nil {
		out.LogLevel = override.LogLevel
	}
	if override.PersistentMapCompactionDivisor != 0 {
		out.PersistentMapCompactionDivisor = override.PersistentMapCompactionDivisor
	}
	if override.PersistentMapCompactionFloor != 0 {
		out.PersistentMapCompactionFloor = override.PersistentMapCompactionFloor
	}
	return out
}

// FromYAML decodes data onto Default(), so a host's partial YAML document
// only needs to name the fields it wants to change. Takes bytes the host
// already read, never a path — spec.md §6's no-file-I/O boundary stays
// with the host, not the core.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configOverlay mirrors Config's yaml-tagged fields, but every field is a
// pointer so UnmarshalYAML can tell "named in the document" apart from
// "absent", and LogLevel is staged as a string because slog.Level only
// implements encoding.TextUnmarshaler — which yaml.v3 does not consult for
// plain struct fields, only for types implementing its own
// yaml.Unmarshaler — so it has to be converted by hand.
type configOverlay struct {
	LogLevel                       *string `yaml:"log_level"`
	PersistentMapCompactionDivisor *int    `yaml:"persistent_map_compaction_divisor"`
	PersistentMapCompactionFloor   *int    `yaml:"persistent_map_compaction_floor"`
}

// UnmarshalYAML implements yaml.Unmarshaler so Config can be decoded
// directly (FromYAML, or a host's own yaml.Unmarshal into a Config it
// seeded with Default()) without silently dropping LogLevel. c already
// holds whatever baseline the caller seeded it with; only fields present
// in value overwrite it.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var overlay configOverlay
	if err := value.Decode(&overlay); err != nil {
		return err
	}

	if overlay.LogLevel != nil {
		var level slog.Level
		if err := level.UnmarshalText([]byte(*overlay.LogLevel)); err != nil {
			return err
		}
		c.LogLevel = &level
	}
	if overlay.PersistentMapCompactionDivisor != nil {
		c.PersistentMapCompactionDivisor = *overlay.PersistentMapCompactionDivisor
	}
	if overlay.PersistentMapCompactionFloor != nil {
		c.PersistentMapCompactionFloor = *overlay.PersistentMapCompactionFloor
	}
	return nil
}
