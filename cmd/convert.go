package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/s0up4200/cuemaker/internal/config"
	"github.com/s0up4200/cuemaker/internal/cue"
)

const cueExtension = ".cue"

func runConvert(cmd *cobra.Command, opts *options, args []string) error {
	descriptionPath, album, performer := args[0], args[1], args[2]

	logger := newLogger(cmd, opts.verbose)
	log.Logger = logger

	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	pattern, err := cfg.FieldPattern()
	if err != nil {
		return err
	}

	converter := cue.NewConverter(pattern, logger)

	description, err := converter.ReadDescription(descriptionPath)
	if err != nil {
		return err
	}

	sheet := cue.Sheet{
		Album:    cfg.Album(album, performer),
		Filename: cfg.Filename(),
		Format:   cfg.Format,
	}
	if opts.artist != "" {
		sheet.Performers = strings.Split(opts.artist, ",")
	}

	doc, err := converter.Convert(description, sheet)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), doc)
		return nil
	}

	outputPath := cfg.Output + cueExtension
	if err := converter.Write(outputPath, doc); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Done!")+" "+pathStyle.Render(outputPath))
	return nil
}

// applyFlags overrides the loaded config with every flag set on the command line
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("pattern") {
		cfg.Pattern = opts.pattern
	}
	if flags.Changed("hr") {
		cfg.Hour = opts.hour
	}
	if flags.Changed("m") {
		cfg.Minute = opts.minute
	}
	if flags.Changed("s") {
		cfg.Second = opts.second
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("artist-slot") {
		cfg.Performer = opts.artistSlot
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("file") {
		cfg.File = opts.file
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	for _, rem := range opts.remarks {
		key, value, ok := strings.Cut(rem, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid --rem %q: expected KEY=VALUE", rem)
		}
		cfg.Remarks = append(cfg.Remarks, config.Remark{Key: strings.TrimSpace(key), Value: value})
	}
	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}

