// Package cmd wires the matcalc command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/config"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/repl"
)

var log = logging.Logger("matcalc")

var (
	cfgFile   string
	tolerance float64
	intMode   bool
	logLevel  string
	prompt    string
)

var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "Interactive matrix calculator",
	Long: `matcalc keeps a table of named matrices and evaluates commands on them.

  let A = 2 2          define A, values are read one per line
  let C = A * B        store an expression
  inverse A            print an expression
  det A                print the determinant
  q                    quit

Type help inside a session for the full command list.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return session(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(),
			repl.WithPrompt(cfg.REPL.Prompt),
			repl.WithBanner(cfg.REPL.Banner),
			repl.WithColor(cfg.REPL.Color),
		)
	},
}

// Execute runs the root command with an interrupt-aware context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvVar+", ./matcalc.toml, ./matcalc.yaml)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", matrix.DefaultTolerance, "values with smaller magnitude count as zero during elimination")
	rootCmd.PersistentFlags().BoolVar(&intMode, "int", false, "use int64 elements")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "> ", "interactive prompt")
}

// loadConfig resolves the config file, applies explicitly set flags on top
// and configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, used, err := config.Resolve(cfgFile)
	if err != nil {
		printError(cmd, "loading config", err)

		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Engine.Tolerance = tolerance
	}
	if flags.Changed("int") {
		cfg.Engine.Numeric = config.NumericFloat
		if intMode {
			cfg.Engine.Numeric = config.NumericInt
		}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("prompt") {
		cfg.REPL.Prompt = prompt
	}
	if err := cfg.Validate(); err != nil {
		printError(cmd, "invalid flags", err)

		return nil, err
	}

	lvl, _ := logging.LevelFromString(cfg.Log.Level) // checked by Validate
	logging.SetAllLoggers(lvl)
	if used != "" {
		log.Infof("using config %s", used)
	}

	return cfg, nil
}

// session runs a REPL of the configured element kind until it ends.
func session(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, opts ...repl.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = append(opts, repl.WithTolerance(cfg.Engine.Tolerance))
	if cfg.Integer() {
		return repl.NewSession[int64](in, out, opts...).Run(ctx)
	}

	return repl.NewSession[float64](in, out, opts...).Run(ctx)
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
