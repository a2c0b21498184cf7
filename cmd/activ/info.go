package main

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/born-ml/activ/internal/parallel"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features and default parallel settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			printf(w, "GOOS: %s\n", runtime.GOOS)
			printf(w, "GOARCH: %s\n", runtime.GOARCH)
			printf(w, "NumCPU: %d\n", runtime.NumCPU())

			p := parallel.DefaultConfig()
			printf(w, "parallel: enabled=%v workers=%d min_chunk=%d\n", p.Enabled, p.NumWorkers, p.MinChunkSize)

			switch runtime.GOARCH {
			case "arm64":
				printARM64Features(w)
			case "amd64":
				printAMD64Features(w)
			}
		},
	}
}

func printARM64Features(w io.Writer) {
	printf(w, "=== golang.org/x/sys/cpu.ARM64 ===\n")
	printf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	printf(w, "  HasFP:       %v\n", cpu.ARM64.HasFP)
	printf(w, "  HasASIMDHP:  %v (FP16 NEON)\n", cpu.ARM64.HasASIMDHP)
	printf(w, "  HasSVE:      %v\n", cpu.ARM64.HasSVE)
}

func printAMD64Features(w io.Writer) {
	printf(w, "=== golang.org/x/sys/cpu.X86 ===\n")
	printf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	printf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	printf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	printf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	printf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
}
