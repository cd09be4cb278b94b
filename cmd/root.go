package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/cc-arrays/internal/config"
	"github.com/xll-gen/cc-arrays/internal/generator"
	"github.com/xll-gen/cc-arrays/pkg/log"
	"github.com/xll-gen/cc-arrays/version"
)

// Command line overrides for the settings file.
var (
	configPath   string
	rootMarker   string
	logLevel     string
	logFile      string
	preserveDirs bool
)

// cfg holds the settings resolved by loadConfig before a command runs.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cc-arrays <output> <inputs>...",
	Short: "Convert .tflite, .bmp and .wav files to C++ arrays",
	Long: `cc-arrays embeds binary data in a C++ build by turning each input into
a definition file holding an aligned array plus a header declaring it.

<output> is either a single .cc or .h file, in which case exactly one input
is accepted and only that file is written, or a directory that receives a
.cc/.h pair per input. In directory mode the path of every generated .cc
file is printed on stdout.`,
	Version:           version.Version,
	Args:              cobra.MinimumNArgs(2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runGenerate(args[0], args[1:], cmd.OutOrStdout())
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Settings file (default ./"+config.DefaultFile+" if present)")
	flags.StringVar(&rootMarker, "root-marker", "", "Path segment after which #include paths start (default \"genfiles/\")")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&preserveDirs, "preserve-dirs", false, "Keep input directories below the output directory")
}

// loadConfig resolves the settings file, applies flag overrides and
// initializes logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	path, optional := configPath, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}

	c, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root-marker") {
		c.Output.RootMarker = rootMarker
	}
	if flags.Changed("log-level") {
		c.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		c.Logging.Path = logFile
	}
	if flags.Changed("preserve-dirs") {
		c.Output.PreserveDirs = preserveDirs
	}

	config.ApplyDefaults(c)
	if err := config.Validate(c); err != nil {
		return err
	}

	if err := log.Init(c.Logging.Path, c.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg = c
	return nil
}

// generatorOptions maps the resolved settings onto generator options.
func generatorOptions(c *config.Config) generator.Options {
	if c == nil {
		return generator.DefaultOptions()
	}
	return generator.Options{
		SourceExt:    c.Output.SourceExt,
		HeaderExt:    c.Output.HeaderExt,
		RootMarker:   c.Output.RootMarker,
		Alignment:    c.Output.Alignment,
		PreserveDirs: c.Output.PreserveDirs,
	}
}

// runGenerate converts inputs into artifacts under output, printing
// generated definition files to w.
//
// Returns:
//   - []string: The generated definition files (directory mode only).
//   - error: An error if classification, reading or writing fails.
func runGenerate(output string, inputs []string, w io.Writer) ([]string, error) {
	return generator.Generate(output, inputs, w, generatorOptions(cfg))
}
