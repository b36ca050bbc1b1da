package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/firewall/internal/audio"
	"github.com/vovakirdan/firewall/internal/core"
	"github.com/vovakirdan/firewall/internal/firewall"
	"github.com/vovakirdan/firewall/internal/platform/tui"
)

var (
	flagLogFile string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Enter/Click - Begin (title screen)
  Left/A, Right/D   - Move
  Space/Up/W        - Fire
  1/R               - Restart at any time
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

The terminal belongs to the game, so logs go to --log-file if given.

Examples:
  firewall play
  firewall play --mute
  firewall play --log-file firewall.log --log-level debug
  firewall play --config ./my-firewall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "firewall")
	if err != nil {
		return err
	}

	width, height := terminalSize(int(os.Stdout.Fd()))

	var sound firewall.SoundSink = audio.Silent{}
	if !flagMute {
		player := audio.NewPlayer()
		if initErr := player.Init(); initErr != nil {
			logger.Warn("sound disabled", "error", initErr)
		} else {
			defer player.Close()
			sound = player
		}
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    resolveSeed(),
		},
		Sound:  sound,
		Logger: logger,
	}
	logger.Info("session starting", "seed", opts.Runtime.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(cfg, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of the terminal on fd, or the default runtime
// size when fd is not a terminal.
func terminalSize(fd int) (width, height int) {
	if w, h, err := term.GetSize(fd); err == nil {
		return w, h
	}
	def := core.DefaultConfig()
	return def.ScreenW, def.ScreenH
}
