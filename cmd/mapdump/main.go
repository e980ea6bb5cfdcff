package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/vlq/errors"
	"github.com/wippyai/vlq/sourcemap"
)

type config struct {
	file        string
	mappings    string
	color       string
	interactive bool
	verbose     bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mapdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "Path to a source map v3 JSON file")
	fs.StringVar(&cfg.color, "color", "auto", "Colorize output: auto, always or never")
	fs.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mapdump [flags] <mappings>")
		fmt.Fprintln(stderr, "       mapdump [flags] -file <map.json>")
		fmt.Fprintln(stderr, "       mapdump -i  (interactive mode)")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.color {
	case "auto", "always", "never":
	default:
		return cfg, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown -color value %q", cfg.color))
	}

	if fs.NArg() > 1 {
		return cfg, errors.InvalidInput(errors.PhaseLoad, "expected at most one mappings argument")
	}
	cfg.mappings = fs.Arg(0)

	if cfg.file != "" && cfg.mappings != "" {
		return cfg, errors.InvalidInput(errors.PhaseLoad, "use either -file or a mappings argument, not both")
	}
	if !cfg.interactive && cfg.file == "" && fs.NArg() == 0 {
		fs.Usage()
		return cfg, errors.InvalidInput(errors.PhaseLoad, "no mappings given")
	}
	return cfg, nil
}

func run(cfg config, stdout *os.File) error {
	if cfg.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer l.Sync()
		sourcemap.SetLogger(l)
	}

	sm, err := load(cfg)
	if err != nil {
		return err
	}

	color := cfg.color == "always" || (cfg.color == "auto" && term.IsTerminal(int(stdout.Fd())))
	return dump(stdout, sm, newStyles(color))
}

// load returns a SourceMap either parsed from cfg.file or wrapping the
// mappings argument with no sources or names.
func load(cfg config) (*sourcemap.SourceMap, error) {
	if cfg.file == "" {
		m, err := sourcemap.DecodeMappings(cfg.mappings)
		if err != nil {
			return nil, err
		}
		return &sourcemap.SourceMap{Version: sourcemap.Version, Mappings: m}, nil
	}

	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return nil, errors.Load("read "+cfg.file, err)
	}
	return sourcemap.Parse(data)
}
