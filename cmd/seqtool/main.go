// Command seqtool runs a reference-protocol script (see
// seqtree/protocol) against stdin and stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/nextperm/seqtree/protocol"
)

func main() {
	var verbosity int

	root := &cobra.Command{
		Use:   "seqtool",
		Short: "Run a reference sequence-protocol script from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdr.SetVerbosity(verbosity)
			log := stdr.New(nil).WithName("seqtool")
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
	root.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity (0=info, 1=debug)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, log logr.Logger) error {
	return protocol.Run(in, out, log)
}
