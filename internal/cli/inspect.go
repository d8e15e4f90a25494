package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffnet-ml/ffnet/codec"
	"github.com/ffnet-ml/ffnet/network"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the name and topology of a network parameter file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
}

// loadAny reads a network file, sniffing whether it is binary or text.
func loadAny(ctx context.Context, path string) (*network.Network, string, error) {
	logger := loggerFromContext(ctx)
	if codec.IsBinary(path) {
		logger.Debug("detected binary format", "file", path)
		return codec.Load(path)
	}
	logger.Debug("detected text format", "file", path)
	return codec.LoadText(path)
}

func runInspect(ctx context.Context, path string) error {
	net, name, err := loadAny(ctx, path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	t := net.Topology()
	if name == "" {
		name = "(unnamed)"
	}

	params := 0
	for _, b := range t.Boundaries() {
		params += (b.In + 1) * b.Out
	}

	fmt.Printf("name:       %s\n", name)
	fmt.Printf("signature:  %s\n", codec.FormatSignature(t))
	fmt.Printf("boundaries: %d\n", t.NumBoundaries())
	fmt.Printf("parameters: %d\n", params)
	return nil
}
