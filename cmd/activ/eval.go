package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/activ/internal/activation"
	"github.com/born-ml/activ/internal/config"
	"github.com/born-ml/activ/internal/tensor"
)

var errGradCheckFailed = errors.New("gradient check failed")

// errStdinTwice rejects two batch flags that both name stdin; the second read would hit EOF.
var errStdinTwice = errors.New("only one batch can be read from stdin")

func newForwardCmd(g *globalFlags) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Apply the activation to a JSON batch of pre-activations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			a, err := readRows(in, cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			var y [][]float64
			switch cfg.DataType() {
			case tensor.Float32:
				y, err = forward[float32](cfg, a)
			default:
				y, err = forward[float64](cfg, a)
			}
			if err != nil {
				return err
			}
			if g.verbose {
				log.Printf("forward %s over %d samples in %v", cfg.Activation, len(a), time.Since(start))
			}
			return writeRows(cmd.OutOrStdout(), y)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "pre-activation batch (JSON), '-' for stdin")
	return cmd
}

func newBackwardCmd(g *globalFlags) *cobra.Command {
	var outPath, deltaPath string

	cmd := &cobra.Command{
		Use:   "backward",
		Short: "Propagate an upstream delta through the activation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outPath == "-" && deltaPath == "-" {
				return fmt.Errorf("%w: --out and --delta are both '-'", errStdinTwice)
			}
			cfg, err := g.load()
			if err != nil {
				return err
			}
			out, err := readRows(outPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			delta, err := readRows(deltaPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			var curr [][]float64
			switch cfg.DataType() {
			case tensor.Float32:
				curr, err = backward[float32](cfg, delta, out)
			default:
				curr, err = backward[float64](cfg, delta, out)
			}
			if err != nil {
				return err
			}
			if g.verbose {
				log.Printf("backward %s over %d samples in %v", cfg.Activation, len(out), time.Since(start))
			}
			return writeRows(cmd.OutOrStdout(), curr)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "forward output batch (JSON)")
	cmd.Flags().StringVar(&deltaPath, "delta", "", "upstream delta batch (JSON)")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("delta")
	return cmd
}

func newGradCheckCmd(g *globalFlags) *cobra.Command {
	var in, deltaPath string

	cmd := &cobra.Command{
		Use:   "gradcheck",
		Short: "Compare analytic deltas with finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in == "-" && deltaPath == "-" {
				return fmt.Errorf("%w: --in and --delta are both '-'", errStdinTwice)
			}
			cfg, err := g.load()
			if err != nil {
				return err
			}
			a, err := readRows(in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var up [][]float64
			if deltaPath != "" {
				if up, err = readRows(deltaPath, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			var report activation.GradReport
			var tol float64
			switch cfg.DataType() {
			case tensor.Float32:
				report, tol, err = gradCheck[float32](cfg, a, up)
			default:
				report, tol, err = gradCheck[float64](cfg, a, up)
			}
			if err != nil {
				return err
			}

			printf(cmd.OutOrStdout(), "%s: %s\n", cfg.Activation, report)
			if !(report.MaxAbsErr <= tol) {
				return fmt.Errorf("%w: %.3g exceeds tolerance %.3g", errGradCheckFailed, report.MaxAbsErr, tol)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "pre-activation batch (JSON), '-' for stdin")
	cmd.Flags().StringVar(&deltaPath, "delta", "", "upstream delta batch (JSON); all ones when omitted")
	cmd.Flags().Float64Var(&g.overrides.Epsilon, "eps", 0, "finite-difference step (default depends on --precision)")
	cmd.Flags().Float64Var(&g.overrides.Tolerance, "tol", 0, "maximum accepted absolute error (default depends on --precision)")
	return cmd
}

func newEncodeCmd(g *globalFlags) *cobra.Command {
	var width int
	var labels []int

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode class labels as target vectors in the activation's range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			for _, label := range labels {
				if label < 0 || label >= width {
					return fmt.Errorf("label %d out of range [0, %d)", label, width)
				}
			}
			h := activation.MustNew[float64](cfg.Kind())
			return writeRows(cmd.OutOrStdout(), activation.LabelBatch(h, labels, width).Rows())
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "output width")
	cmd.Flags().IntSliceVar(&labels, "labels", nil, "comma separated class labels")
	_ = cmd.MarkFlagRequired("width")
	return cmd
}

func forward[T tensor.Float](cfg *config.Config, rows [][]float64) ([][]float64, error) {
	a := tensor.FromRows[T](rows)
	y := tensor.ZerosLike(a)
	if err := activation.ForwardKind(cfg.Kind(), y, a, cfg.ForFunc()); err != nil {
		return nil, err
	}
	return y.Rows(), nil
}

func backward[T tensor.Float](cfg *config.Config, deltaRows, outRows [][]float64) ([][]float64, error) {
	out := tensor.FromRows[T](outRows)
	delta := tensor.FromRows[T](deltaRows)
	samples, width := out.Shape()
	if err := tensor.CheckShape("delta", delta, samples, width); err != nil {
		return nil, err
	}

	curr := tensor.ZerosLike(out)
	if err := activation.BackwardKind(cfg.Kind(), delta, out, curr, cfg.ForFunc()); err != nil {
		return nil, err
	}
	return curr.Rows(), nil
}

// gradCheck runs the check in precision T and returns the tolerance that applies to it.
func gradCheck[T tensor.Float](cfg *config.Config, rows, upRows [][]float64) (activation.GradReport, float64, error) {
	a := tensor.FromRows[T](rows)
	samples, width := a.Shape()

	var up tensor.Batch[T]
	if upRows == nil {
		up = tensor.NewBatch[T](samples, width)
		for s := range up {
			for i := range up[s] {
				up[s][i] = 1
			}
		}
	} else {
		up = tensor.FromRows[T](upRows)
		if err := tensor.CheckShape("delta", up, samples, width); err != nil {
			return activation.GradReport{}, 0, err
		}
	}

	h, err := activation.New[T](cfg.Kind())
	if err != nil {
		return activation.GradReport{}, 0, err
	}
	eps, tol := cfg.GradCheck.Resolve(tensor.DataTypeOf[T]())
	return activation.GradCheck(h, a, up, eps, cfg.ForFunc()), tol, nil
}
