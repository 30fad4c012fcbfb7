package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/repl"
)

var echo bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute commands from a script file",
	Long: `Run reads commands from file exactly as an interactive session would,
including the element values that follow each "let <name> = <rows> <cols>".
Use "-" to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				printError(cmd, "opening script", err)

				return fmt.Errorf("run: %w", err)
			}
			defer f.Close()
			in = f
		}

		opts := []repl.Option{repl.WithColor(false)}
		if echo {
			opts = append(opts, repl.WithEcho(true), repl.WithPrompt(cfg.REPL.Prompt))
		}

		return session(cmd.Context(), cfg, in, cmd.OutOrStdout(), opts...)
	},
}

func init() {
	runCmd.Flags().BoolVar(&echo, "echo", false, "repeat each command before its output")
	rootCmd.AddCommand(runCmd)
}
