// Command tally opens a GPU-rendered window with an interactive
// counter: increment, decrement, and reset buttons above a live value
// readout.
//
// Set TALLY_LOG to debug, info, warn, or error to enable structured
// logging on stderr; logging is silent when the variable is unset.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/app"
)

func main() {
	configureLogging()

	if err := app.New().Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		os.Exit(1)
	}
}

// configureLogging enables slog output when TALLY_LOG names a level.
func configureLogging() {
	levelName := os.Getenv("TALLY_LOG")
	if levelName == "" {
		return
	}

	var level slog.Level
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "tally: unknown TALLY_LOG level %q, using info\n", levelName)
		level = slog.LevelInfo
	}

	tally.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
