// Copyright (c) 2026 Scott Thornton (https://github.com/scthornton)
//
// main.go — command-line front end over the textcodec registry: scheme
// selection flags, positional or stdin input, scheme listing, and exit
// status selection. All transcoding logic lives in the library.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	textcodec "github.com/scthornton/text-encode-decode"
)

// zapLogger routes registry dispatch logs to a zap SugaredLogger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...any)  { l.s.Infow(msg, keysAndValues...) }
func (l zapLogger) Warn(msg string, keysAndValues ...any)  { l.s.Warnw(msg, keysAndValues...) }
func (l zapLogger) Error(msg string, keysAndValues ...any) { l.s.Errorw(msg, keysAndValues...) }
func (l zapLogger) Debug(msg string, keysAndValues ...any) { l.s.Debugw(msg, keysAndValues...) }

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("textcodec", pflag.ContinueOnError)
	encodeScheme := flags.StringP("encode", "e", "", "encode text using the named scheme")
	decodeScheme := flags.StringP("decode", "d", "", "decode text using the named scheme")
	list := flags.BoolP("list", "l", false, "list all supported schemes")
	verbose := flags.BoolP("verbose", "v", false, "log dispatch details to stderr")
	showVersion := flags.Bool("version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: textcodec [flags] [text]

Encode and decode text using various encoding schemes. Text is read
from the positional argument, or from stdin when absent.

%s
examples:
  textcodec -e base64 "Hello, World!"
  textcodec -d base64 "SGVsbG8sIFdvcmxkIQ=="
  textcodec --list
  echo "Hello" | textcodec -e hex
`, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, textcodec.Version())
		return nil
	}

	cfg := textcodec.Config{}
	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = zl.Sync() }()
		cfg.Logger = zapLogger{s: zl.Sugar()}
	}
	reg := textcodec.NewRegistry(cfg)

	if *list {
		fmt.Fprintln(stdout, "Available schemes:")
		w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, s := range reg.List() {
			fmt.Fprintf(w, "  %s\t%s\n", s.Name, s.Description)
		}
		return w.Flush()
	}

	if *encodeScheme == "" && *decodeScheme == "" {
		return errors.New("either --encode or --decode must be specified")
	}
	if *encodeScheme != "" && *decodeScheme != "" {
		return errors.New("cannot specify both --encode and --decode")
	}

	text, err := inputText(flags.Args(), stdin)
	if err != nil {
		return err
	}

	var out string
	if *encodeScheme != "" {
		out, err = reg.Encode(text, *encodeScheme)
	} else {
		out, err = reg.Decode(text, *decodeScheme)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}

// inputText returns the positional argument, or trimmed stdin when absent.
func inputText(args []string, stdin io.Reader) (string, error) {
	switch len(args) {
	case 0:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most 1 positional argument, got %d", len(args))
	}
}
