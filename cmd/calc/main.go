package main

import (
	"fmt"
	"os"

	"calc/internal/arith"
	"calc/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// demoPairs are the fixed inputs the demonstration prints.
var demoPairs = [...][2]arith.Operand{
	{arith.Int(5), arith.Int(3)},
	{arith.Int(10), arith.Int(20)},
	{arith.Float(3.5), arith.Float(2.5)},
	{arith.Int(-5), arith.Int(15)},
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "calc - add two numbers",
	Long: `calc computes the sum of two numeric values.

Run without arguments to print the demonstration examples.
Use the add subcommand to sum arbitrary operands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// Initialize logger
		zc := zap.NewProductionConfig()
		level, perr := zapcore.ParseLevel(cfg.Logging.Level)
		if perr != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDemo,
}

// addCmd sums two operands given on the command line
var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two numeric operands",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	for _, pair := range demoPairs {
		printSum(cmd, pair[0], pair[1])
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := arith.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := arith.Parse(args[1])
	if err != nil {
		return err
	}
	logger.Debug("adding operands", zap.Stringer("a", a), zap.Stringer("b", b))
	printSum(cmd, a, b)
	return nil
}

func printSum(cmd *cobra.Command, a, b arith.Operand) {
	verb := cfg.Output.FloatVerb()
	sum := arith.Add(a, b)
	fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %s\n", a.Text(verb), b.Text(verb), sum.Text(verb))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config file")
	rootCmd.AddCommand(addCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
