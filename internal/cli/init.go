package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ffnet-ml/ffnet/codec"
	"github.com/ffnet-ml/ffnet/network"
)

type initOpts struct {
	topology string
	name     string
	asText   bool
	seed     int64
}

func newInitCmd() *cobra.Command {
	var opts initOpts

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Create a randomly initialized network parameter file",
		Long: `Init creates a network sized from --topology, fills it with uniform
random parameters in [-1, 1) and writes it to the given file. The topology
uses the signature grammar, e.g. --topology "2, 4, 1".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.topology, "topology", "t", "", `layer sizes, e.g. "2, 4, 1" (required)`)
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "network name to store")
	cmd.Flags().BoolVar(&opts.asText, "text", false, "write text output instead of binary")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the current time)")
	_ = cmd.MarkFlagRequired("topology")

	return cmd
}

func runInit(ctx context.Context, out string, opts *initOpts) error {
	logger := loggerFromContext(ctx)

	t, err := codec.ParseSignature(opts.topology)
	if err != nil {
		return fmt.Errorf("invalid topology %q: %w", opts.topology, err)
	}
	net, err := network.New(t)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("randomizing parameters", "seed", seed)
	net.Randomize(rand.New(rand.NewSource(seed)))

	if opts.asText {
		err = codec.SaveText(out, net, opts.name)
	} else {
		err = codec.Save(out, net, opts.name)
	}
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", out, err)
	}
	logger.Info("created network", "file", out, "signature", codec.FormatSignature(t))
	return nil
}
