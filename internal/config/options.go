// Package config holds the runtime options shared by the desktop and Android
// entry points.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"soundbubbles/internal/log"
)

// ErrInvalidSize is returned by Validate for a non-positive window size.
var ErrInvalidSize = errors.New("invalid window size")

// Environment overrides.
const (
	EnvSeed   = "BUBBLES_SEED"
	EnvAssets = "BUBBLES_ASSETS"
	EnvLog    = "BUBBLES_LOG"
)

// Window defaults.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
)

type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	Seed       uint64
	SeedSet    bool // Seed came from a flag and must not be overridden
	AssetsDir  string
	NoMic      bool
	NoSound    bool
	LogLevel   string
}

func Default() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		AssetsDir: ".",
		LogLevel:  "info",
	}
}

// Getenv is the environment lookup used by Resolve; tests replace it.
var Getenv = os.Getenv

// Resolve fills in values not given on the command line: the seed from
// BUBBLES_SEED or the clock, and the assets directory and log level from
// their environment variables when still at their defaults.
func (o *Options) Resolve(now time.Time) {
	if !o.SeedSet {
		o.Seed = uint64(now.UnixNano())
		if s := Getenv(EnvSeed); s != "" {
			if v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
				o.Seed = v
			}
		}
	}
	d := Default()
	if v := Getenv(EnvAssets); v != "" && (o.AssetsDir == "" || o.AssetsDir == d.AssetsDir) {
		o.AssetsDir = v
	}
	if v := Getenv(EnvLog); v != "" && (o.LogLevel == "" || o.LogLevel == d.LogLevel) {
		o.LogLevel = v
	}
	if o.AssetsDir == "" {
		o.AssetsDir = d.AssetsDir
	}
}

// Validate reports option combinations the app cannot start with.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	return nil
}

// Level returns the parsed log level.
func (o *Options) Level() log.Level {
	return log.LevelFromString(o.LogLevel)
}
