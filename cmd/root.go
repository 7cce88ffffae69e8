package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/cuemaker/internal/config"
)

// options holds the flags of the root command
type options struct {
	artist     string
	artistSlot int
	pattern    string
	hour       int
	minute     int
	second     int
	title      int
	output     string
	file       string
	format     string
	remarks    []string
	configFile string
	dryRun     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "cuemaker <description> <album> <performer>",
		Short: "cuemaker - CUE sheet generator for timestamped track lists",
		Long: `cuemaker is a command-line tool for turning a list of timestamps and titles,
like those found in video descriptions, into a .cue sheet.

Example:
  cuemaker description.txt "Album Name" "Performer" --output album`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.artist, "artist", "", "comma separated list of per-track performers, in track order")
	flags.IntVar(&opts.artistSlot, "artist-slot", defaults.Performer, "pattern group holding a per-track performer (-1 for none)")
	flags.StringVar(&opts.pattern, "pattern", defaults.Pattern, "regex matched against each line; change --hr, --m, --s and --title with it")
	flags.IntVar(&opts.hour, "hr", defaults.Hour, "pattern group holding the hour digits")
	flags.IntVar(&opts.minute, "m", defaults.Minute, "pattern group holding the minute digits")
	flags.IntVar(&opts.second, "s", defaults.Second, "pattern group holding the second digits")
	flags.IntVar(&opts.title, "title", defaults.Title, "pattern group holding the title")
	flags.StringVar(&opts.output, "output", defaults.Output, "output file name without the .cue extension")
	flags.StringVar(&opts.file, "file", "", "audio file named in the FILE directive (defaults to --output)")
	flags.StringVar(&opts.format, "format", defaults.Format, "FILE directive format")
	flags.StringArrayVar(&opts.remarks, "rem", nil, "REM entry as KEY=VALUE, may be repeated")
	flags.StringVar(&opts.configFile, "config", "", "config file (default: search cuemaker.toml)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the cue sheet instead of writing it")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newVersionCmd(opts))
	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
