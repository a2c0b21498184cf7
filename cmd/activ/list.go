package main

import (
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/born-ml/activ/internal/activation"
)

func newListCmd() *cobra.Command {
	var oneHotOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activations with their Jacobian shape and target range",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			infos := activation.Catalog()
			if oneHotOnly {
				infos = lo.Filter(infos, func(info activation.Info, _ int) bool { return info.OneHot })
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(w, "NAME\tJACOBIAN\tSCALE\n")
			for _, info := range infos {
				printf(w, "%s\t%s\t(%g, %g)\n", info.Name, lo.Ternary(info.OneHot, "diagonal", "dense"), info.Lo, info.Hi)
			}
			_ = w.Flush()
		},
	}
	cmd.Flags().BoolVar(&oneHotOnly, "one-hot", false, "only list activations with a diagonal Jacobian")
	return cmd
}
