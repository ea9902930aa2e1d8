package cli

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/FanLemon/Subtitle/internal/config"
	"github.com/FanLemon/Subtitle/internal/logging"
)

var (
	verbose    bool
	configPath string
	logFormat  string
	noColor    bool

	cfg    = config.Default()
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "subriptext INPUT OUTPUT OFFSET [SEPARATED]",
	Short: "Shift and split SubRip subtitle files",
	Long: `subriptext moves every timecode of a SubRip (.srt) file by a fixed offset
and writes the result to a new file.

OFFSET is a signed number of milliseconds, or an interval
"hh:mm:ss,mmm --> hh:mm:ss,mmm" whose start minus end is used as the offset.
An interval whose start precedes its end gives a negative offset and moves
subtitles earlier: "00:00:02,000 --> 00:00:05,000" shifts by -3000.

With SEPARATED, each subtitle's text is divided in two: the first part goes
to OUTPUT and the second to SEPARATED (useful for bilingual subtitles).

Examples:
  subriptext movie.srt shifted.srt 1500
  subriptext movie.srt shifted.srt -3000
  subriptext movie.srt shifted.srt "00:01:02,000 --> 00:01:00,500"
  subriptext movie.srt english.srt 0 chinese.srt`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runShift,
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	rootCmd.SetArgs(reorderArgs(os.Args[1:]))
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Config file (default: $SUBRIPTEXT_CONFIG or ./subriptext.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().
		BoolVar(&noColor, "no-color", false, "Disable colored log levels")
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-format") {
		loaded.LogFormat = strings.ToLower(logFormat)
	}
	if noColor {
		loaded.NoColor = true
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	opts := loaded.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	l, err := logging.New(opts)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debugw("Configuration loaded",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"file_mode", cfg.FileMode,
	)
	return nil
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// reorderArgs moves flags ahead of a "--" terminator when a positional
// argument would otherwise be read as a flag: a negative offset such as
// -3000, or an unquoted "-->" from the interval offset form. Subcommand
// invocations are returned unchanged, even behind persistent flags.
func reorderArgs(args []string) []string {
	if first := firstPositional(args); first < 0 || isSubcommand(args[first]) {
		return args
	}

	needed := false
	for _, a := range args {
		if a == "--" {
			return args
		}
		if looksPositional(a) && strings.HasPrefix(a, "-") {
			needed = true
		}
	}
	if !needed {
		return args
	}

	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if looksPositional(a) {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		if !strings.Contains(a, "=") && takesValue(a) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// firstPositional returns the index of the first argument that is not a
// flag or a flag value, or -1 if there is none before a "--".
func firstPositional(args []string) int {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return -1
		}
		if looksPositional(a) {
			return i
		}
		if !strings.Contains(a, "=") && takesValue(a) {
			i++
		}
	}
	return -1
}

func looksPositional(arg string) bool {
	return arg == "-" || arg == intervalArrow || negativeNumber.MatchString(arg) ||
		!strings.HasPrefix(arg, "-")
}

func takesValue(arg string) bool {
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = lookupFlag(name)
	} else {
		short := strings.TrimPrefix(arg, "-")
		// grouped shorthands are left to pflag
		if len(short) != 1 {
			return false
		}
		f = lookupShorthand(short)
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(name string) *pflag.Flag {
	if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return rootCmd.Flags().Lookup(name)
}

func lookupShorthand(short string) *pflag.Flag {
	if f := rootCmd.PersistentFlags().ShorthandLookup(short); f != nil {
		return f
	}
	return rootCmd.Flags().ShorthandLookup(short)
}

func isSubcommand(arg string) bool {
	switch arg {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}
