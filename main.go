package main

import (
	"chargrid/canvas"
	"chargrid/config"
	"chargrid/script"
	"chargrid/terminal"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, draws the script and writes the rendered grid.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("chargrid", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		configFile = flags.String("config", config.DefaultPath, "Config file (JSON)")
		outputFile = flags.String("o", "", "Output file (default: stdout)")
		view       = flags.Bool("view", false, "Show the grid in the terminal until a key is pressed")
		logLevel   = flags.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

		columns    = flags.Int("columns", 0, "Grid columns (overrides config)")
		rows       = flags.Int("rows", 0, "Grid rows (overrides config)")
		background = flags.String("background", "", "Background character (overrides config)")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chargrid [options] [script.json]\n\n")
		fmt.Fprintf(stderr, "Draws lines, rectangles, circles and text on a character grid.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  chargrid                      # Render the demo scene\n")
		fmt.Fprintf(stderr, "  chargrid scene.json           # Render a drawing script\n")
		fmt.Fprintf(stderr, "  chargrid -view scene.json     # Show it in the terminal\n")
		fmt.Fprintf(stderr, "  chargrid -o out.txt scene.json\n")
	}

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *columns != 0 {
		cfg.Columns = *columns
	}
	if *rows != 0 {
		cfg.Rows = *rows
	}
	if *background != "" {
		cfg.Background = *background
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	canvas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer canvas.SetLogger(nil)

	s := script.Demo()
	if flags.NArg() > 0 {
		if s, err = script.Load(flags.Arg(0)); err != nil {
			return err
		}
	}

	grid, err := s.Run(cfg)
	if err != nil {
		return err
	}

	if *view {
		return terminal.Show(grid)
	}

	output := grid.Render() + "\n"
	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(stderr, "Wrote %dx%d grid to %s\n", grid.Width(), grid.Height(), *outputFile)
		return nil
	}

	_, err = io.WriteString(stdout, output)
	return err
}
