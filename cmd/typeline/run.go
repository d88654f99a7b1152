package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/typeline"
	"github.com/aretw0/typeline/internal/script"
	termadapter "github.com/aretw0/typeline/pkg/adapters/term"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Play a script in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()

		sc, err := script.Load(f)
		if err != nil {
			return err
		}

		// Pipes get plain output without a caret; the animation itself is
		// harmless there, the effect just arrives pre-paced.
		var surfOpts []termadapter.Option
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			surfOpts = append(surfOpts, termadapter.WithoutCaret())
		}
		surf := termadapter.New(os.Stdout, surfOpts...)

		opts := append(sc.Options(), typeline.WithLogger(logger))
		eng, err := typeline.New(surf, opts...)
		if err != nil {
			return err
		}
		if err := sc.Apply(eng); err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		eng.Start()
		select {
		case <-eng.Done():
			fmt.Println()
			return eng.Err()
		case <-sig:
			eng.Stop()
			fmt.Println()
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
