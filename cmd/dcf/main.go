package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/dcf/cmd/dcf/internal/batch"
	"github.com/meenmo/dcf/cmd/dcf/internal/logx"
	"github.com/meenmo/dcf/cmd/dcf/internal/prompt"
	"github.com/meenmo/dcf/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	command, rest := "prompt", args
	if len(args) > 0 {
		switch strings.ToLower(strings.TrimSpace(args[0])) {
		case "-h", "--help", "help":
			usage(stdout)
			return 0
		case "prompt", "json":
			command, rest = strings.ToLower(strings.TrimSpace(args[0])), args[1:]
		default:
			if !strings.HasPrefix(args[0], "-") {
				fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
				usage(stderr)
				return 2
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	logger, err := logx.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	switch command {
	case "json":
		return batch.Run(logger, rest, stdin, stdout, stderr)
	default:
		return prompt.Run(cfg, logger, rest, stdin, stdout, stderr)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dcf [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  prompt   Interactive DCF valuation with a cash flow chart (default)")
	fmt.Fprintln(w, "  json     DCF valuation of JSON input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings come from dcf.yaml or DCF_* environment variables")
	fmt.Fprintln(w, "(DCF_LOG_LEVEL, DCF_CHART_MODE, DCF_CHART_PATH, DCF_CHART_WIDTH, DCF_CURRENCY_SYMBOL).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `dcf <command> -h` for command-specific help.")
}
