// Package calibration measures the multiplication threshold crossover points
// of the limb engine on the host machine and persists them as a reusable
// profile, so later runs start with measured rather than estimated
// thresholds.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// CurrentProfileVersion is bumped whenever the profile schema or the
// measurement methodology changes, invalidating older cached profiles.
const CurrentProfileVersion = 1

// Profile is a persisted calibration outcome together with the environment
// it was measured in. A profile is only applied when the environment still
// matches.
type Profile struct {
	ProfileVersion     int       `json:"profile_version"`
	KaratsubaThreshold int       `json:"karatsuba_threshold"`
	ParallelThreshold  int       `json:"parallel_threshold"`
	NumCPU             int       `json:"num_cpu"`
	GOOS               string    `json:"goos"`
	GOARCH             string    `json:"goarch"`
	GoVersion          string    `json:"go_version"`
	WordSize           int       `json:"word_size"`
	CalibratedAt       time.Time `json:"calibrated_at"`
}

// NewProfile creates a profile stamped with the current environment and no
// thresholds yet.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		NumCPU:         runtime.NumCPU(),
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
	}
}

// Compatible reports whether the profile was measured in an environment
// matching the current one. CPU count, word size and architecture all shift
// the crossover points, so any mismatch invalidates the cache.
func (p *Profile) Compatible() bool {
	return p != nil &&
		p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOOS == runtime.GOOS &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63) &&
		p.KaratsubaThreshold >= 2
}

// Save writes the profile as JSON, creating parent directories as needed.
func (p *Profile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("calibration: create profile directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("calibration: encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("calibration: write profile: %w", err)
	}
	return nil
}

// LoadProfile reads a profile from disk. Missing or malformed files return
// an error; compatibility is the caller's concern.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calibration: read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("calibration: decode profile: %w", err)
	}
	return &p, nil
}

// DefaultProfilePath returns the per-user cache location of the calibration
// profile.
func DefaultProfilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("calibration: resolve cache dir: %w", err)
	}
	return filepath.Join(dir, "bigcalc", "calibration.json"), nil
}
