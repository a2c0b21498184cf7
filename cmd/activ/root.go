package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/born-ml/activ/internal/config"
)

type globalFlags struct {
	configPath string
	overrides  config.Overrides
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "activ",
		Short:         "Evaluate neural network activation functions over batches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if g.verbose {
				log.SetFlags(log.LstdFlags | log.Lmicroseconds)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file")
	pf.StringVarP(&g.overrides.Activation, "act", "a", "", "activation name (see 'activ list')")
	pf.StringVar(&g.overrides.Precision, "precision", "", "float32 or float64")
	pf.StringVar(&g.overrides.Mode, "mode", "", "parallel mode: sequential, chunked or limited")
	pf.IntVar(&g.overrides.Workers, "workers", 0, "worker count (0 = NumCPU)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log timings")

	root.AddCommand(
		newVersionCmd(),
		newListCmd(),
		newInfoCmd(),
		newForwardCmd(g),
		newBackwardCmd(g),
		newGradCheckCmd(g),
		newEncodeCmd(g),
	)
	return root
}

// load resolves the config file and flag overrides.
func (g *globalFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		cfg, err = config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
	}
	cfg.ApplyOverrides(g.overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g.verbose {
		log.Printf("activation=%s precision=%s mode=%s workers=%d",
			cfg.Activation, cfg.Precision, cfg.Parallel.Mode, cfg.Parallel.Workers)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "activ %s\n", version)
		},
	}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
