package main

import (
	"fmt"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"qrsheets/internal/errs"
	"qrsheets/internal/layout"
	"qrsheets/internal/outfile"
	"qrsheets/internal/sheet"
)

type options struct {
	NumPages    int    `short:"n" long:"num-pages" default:"1" description:"Number of pages to generate"`
	Output      string `short:"o" long:"output" default:"qr-codes.pdf" description:"Base output PDF filename (will be timestamped)"`
	StartPage   int    `short:"s" long:"start-page" default:"1" description:"Starting page number for numbering"`
	DoubleSided bool   `short:"d" long:"double-sided" description:"Flip margins on even pages for double-sided printing"`
	Layout      string `long:"layout" value-name:"FILE" description:"YAML file overriding the built-in page geometry"`
	Quiet       bool   `short:"q" long:"quiet" description:"Suppress progress output"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	log := newLogger(opts.Quiet)
	if err := run(opts, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errs.KindOf(err) == errs.KindConfig {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Str("tool", "qrsheets").Logger()
}

func run(opts options, log zerolog.Logger) error {
	params := sheet.Params{
		NumPages:    opts.NumPages,
		StartPage:   opts.StartPage,
		DoubleSided: opts.DoubleSided,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	l := layout.Default()
	if opts.Layout != "" {
		var err error
		if l, err = layout.Load(opts.Layout); err != nil {
			return err
		}
	}

	if opts.NumPages > 100 {
		log.Warn().Msgf("generating %d pages, this may take a while", opts.NumPages)
	}

	res, err := sheet.New(l, log).Generate(params)
	if err != nil {
		return err
	}

	name := outfile.Timestamped(opts.Output, time.Now())
	path, err := outfile.Write(outfile.DefaultDir, name, res.PDF)
	if err != nil {
		return err
	}

	log.Info().
		Int("pages", len(res.Pages)).
		Int("codes", len(res.IDs)).
		Msg("done")
	fmt.Println(path)
	return nil
}
