// Command keypadsolver prints the complexity sum of a list of door codes
// typed through a chain of keypad robots, once per configured layer count.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-ricrob/keypadsolver/internal/codes"
	"github.com/go-ricrob/keypadsolver/internal/config"
	"github.com/go-ricrob/keypadsolver/keypad"
	"github.com/go-ricrob/keypadsolver/solver"
)

var errNoInput = errors.New("no input file")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypadsolver [input]",
		Short: "Count the presses needed to type door codes through keypad robots",
		Long: `Reads one door code per line and prints, for every configured number of
directional keypad layers, the sum of the shortest press count of each code
multiplied with the numeric part of the code.

Examples:
  keypadsolver codes.txt
  keypadsolver codes.txt --layers 2,25 --workers 4
  KEYPAD_LOG_LEVEL=debug keypadsolver codes.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().String("config", "", "Config file (TOML)")
	cmd.Flags().IntSliceP("layers", "l", config.DefaultLayers, "Directional keypad layers, one answer each")
	cmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of codes solved in parallel")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "text", "Log format (text, json)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return errNoInput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	codeList, err := codes.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"input": cfg.Input, "codes": len(codeList)}).Debug("codes read")

	return solve(cmd.OutOrStdout(), log, &cfg, codeList)
}

func solve(w io.Writer, log logrus.FieldLogger, cfg *config.Config, codeList []string) error {
	s, err := solver.New(keypad.NewNumeric(), keypad.NewDirectional(),
		solver.WithLogger(log),
		solver.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}
	for i, layers := range cfg.Layers {
		r, err := s.Answer(codeList, layers)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Part %d: %d\n", i+1, r.Total)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
