package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"slicecam/game"
)

// TuningFile mirrors the overridable subset of game.Tuning for YAML files.
// Absent fields keep their defaults.
type TuningFile struct {
	MotionThreshold *int     `yaml:"motionThreshold"`
	SpawnIntervalMs *int     `yaml:"spawnIntervalMs"`
	MaxFalling      *int     `yaml:"maxFalling"`
	BombChance      *float64 `yaml:"bombChance"`
	VelMin          *float64 `yaml:"velMin"`
	VelMax          *float64 `yaml:"velMax"`
	SlicedTTLMs     *int     `yaml:"slicedTtlMs"`
}

// LoadTuning reads a YAML override file on top of the defaults. An empty
// path returns the defaults untouched.
func LoadTuning(path string) (game.Tuning, error) {
	tun := game.DefaultTuning()
	if path == "" {
		return tun, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tun, fmt.Errorf("read tuning file: %w", err)
	}
	var f TuningFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return tun, fmt.Errorf("parse tuning file: %w", err)
	}

	if f.MotionThreshold != nil {
		tun.MotionThreshold = *f.MotionThreshold
	}
	if f.SpawnIntervalMs != nil {
		tun.SpawnInterval = time.Duration(*f.SpawnIntervalMs) * time.Millisecond
	}
	if f.MaxFalling != nil {
		tun.MaxFalling = *f.MaxFalling
	}
	if f.BombChance != nil {
		tun.BombChance = *f.BombChance
	}
	if f.VelMin != nil {
		tun.VelMin = *f.VelMin
	}
	if f.VelMax != nil {
		tun.VelMax = *f.VelMax
	}
	if f.SlicedTTLMs != nil {
		tun.SlicedTTL = time.Duration(*f.SlicedTTLMs) * time.Millisecond
	}

	if err := validate(tun); err != nil {
		return game.DefaultTuning(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return tun, nil
}

func validate(t game.Tuning) error {
	if t.MotionThreshold < 0 {
		return fmt.Errorf("motionThreshold must be >= 0, got %d", t.MotionThreshold)
	}
	if t.MaxFalling <= 0 {
		return fmt.Errorf("maxFalling must be > 0, got %d", t.MaxFalling)
	}
	if t.BombChance < 0 || t.BombChance > 1 {
		return fmt.Errorf("bombChance must be in [0,1], got %g", t.BombChance)
	}
	if t.VelMin <= 0 || t.VelMax < t.VelMin {
		return fmt.Errorf("velocity range invalid: [%g, %g]", t.VelMin, t.VelMax)
	}
	if t.SlicedTTL <= 0 {
		return fmt.Errorf("slicedTtlMs must be > 0, got %s", t.SlicedTTL)
	}
	return nil
}
