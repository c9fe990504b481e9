//go:build android

package main

import (
	"os"
	"time"

	"soundbubbles/internal/config"
	"soundbubbles/internal/game"
	"soundbubbles/internal/log"
)

func main() {
	opts := config.Default()
	opts.Resolve(time.Now())
	game.RunAndroid(opts, log.New(os.Stderr, opts.Level()))
}
