package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.lume.dev/internal/config"
	lume "go.lume.dev/pkg"
)

var (
	configPath string
	dumpPath   string
)

var rootCmd = &cobra.Command{
	Use:   "lume [script]",
	Short: "lume — a small tree-walking scripting language",
	Long: `lume runs a script file, or starts an interactive session when no
file is given. Bindings persist across lines of a session.
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if dumpPath != "" {
			cfg.DumpAST = dumpPath
		}

		runner := lume.NewRunner(os.Stdout, os.Stderr)
		if cfg.DumpAST != "" {
			f, err := os.Create(cfg.DumpAST)
			if err != nil {
				return fmt.Errorf("creating dump file: %w", err)
			}
			defer f.Close()

			runner.DumpWriter = f
		}

		if len(args) == 0 {
			return runPrompt(runner, cfg.Prompt)
		}

		return runFile(runner, args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&dumpPath, "dump-ast", "", "write the parsed AST of each run to the given file")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a config file (default .lume.yaml if present)")
}

func runFile(runner *lume.Runner, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	return runner.Run(string(source))
}
