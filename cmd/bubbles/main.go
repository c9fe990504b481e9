//go:build !android

// Command bubbles runs the audio-reactive music discovery scene in a window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"soundbubbles/internal/config"
	"soundbubbles/internal/game"
	"soundbubbles/internal/log"
)

var opts = config.Default()

var rootCmd = &cobra.Command{
	Use:   "bubbles",
	Short: "Audio-reactive bubble field for discovering music",
	Long: `bubbles opens a window with a heartbeat intro and a field of floating
soap bubbles. Tap a bubble to open it, tap a record to see the song and
tap again for the phone prompt. The microphone level drives the intro
trace; it is requested on the first tap.

Environment:
  BUBBLES_SEED    scene seed when --seed is not given
  BUBBLES_ASSETS  directory holding avatar1.png..avatar3.png
  BUBBLES_LOG     log level (debug, info, warn, error, none)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&opts.Width, "width", opts.Width, "window width in screen coordinates")
	f.IntVar(&opts.Height, "height", opts.Height, "window height in screen coordinates")
	f.BoolVar(&opts.Fullscreen, "fullscreen", false, "open fullscreen on the primary monitor")
	f.Uint64Var(&opts.Seed, "seed", 0, "random seed (default: $BUBBLES_SEED or the clock)")
	f.StringVar(&opts.AssetsDir, "assets", opts.AssetsDir, "directory with avatar images")
	f.BoolVar(&opts.NoMic, "no-mic", false, "never open the microphone")
	f.BoolVar(&opts.NoSound, "no-sound", false, "disable audio cues")
	f.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn, error, none")
}

func run(cmd *cobra.Command, _ []string) error {
	opts.SeedSet = cmd.Flags().Changed("seed")
	opts.Resolve(time.Now())
	if err := opts.Validate(); err != nil {
		return err
	}
	l := log.New(os.Stderr, opts.Level())
	return game.RunDesktop(opts, l)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
