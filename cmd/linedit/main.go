// Package main is the entry point for linedit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/linedit/internal/app"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions are the flags that pick a mode; the rest go to app.Options.
type cliOptions struct {
	app.Options

	script    string
	dump      string
	readStdin bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	interactive := opts.script == "" && !opts.readStdin &&
		term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive && opts.script == "" {
		opts.readStdin = true
	}
	if !interactive {
		opts.Watch = false
	}

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if interactive {
		return runInteractive(application)
	}
	return runHeadless(application, opts)
}

func runInteractive(application *app.Application) int {
	t, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runHeadless(application *app.Application, opts cliOptions) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.readStdin {
		if err := application.ReadText(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.script != "" {
		// Script output goes to stderr so stdout carries only the result.
		if err := application.RunScript(ctx, opts.script, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := writeResult(os.Stdout, application, opts.dump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func writeResult(w io.Writer, application *app.Application, format string) error {
	if format != "json" {
		return application.WriteContent(w)
	}

	out, err := application.DumpState()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	opts.LogOutput = os.Stderr

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Log file used while the terminal is in raw mode")
	flag.BoolVar(&opts.Watch, "watch", true, "Reload the configuration file when it changes")
	flag.StringVar(&opts.script, "script", "", "Apply a Lua edit script instead of reading the keyboard")
	flag.StringVar(&opts.script, "s", "", "Apply a Lua edit script (shorthand)")
	flag.StringVar(&opts.dump, "dump", "text", "Headless output format (text, json)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linedit - line-indexed terminal text buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linedit [options] [-]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  linedit                        Edit interactively (Alt+q quits)\n")
		fmt.Fprintf(os.Stderr, "  linedit -s edits.lua           Apply a script and print the content\n")
		fmt.Fprintf(os.Stderr, "  printf 'a\\nb' | linedit -dump json   Type stdin and dump the buffer\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("linedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	switch opts.dump {
	case "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid dump format %q (must be text or json)\n", opts.dump)
		os.Exit(1)
	}

	switch args := flag.Args(); {
	case len(args) == 1 && args[0] == "-":
		opts.readStdin = true
	case len(args) > 0:
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", args)
		os.Exit(1)
	}

	return opts
}
