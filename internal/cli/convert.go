package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffnet-ml/ffnet/codec"
)

type convertOpts struct {
	toText bool
	dtype  string
	rename string
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a network parameter file between text and binary",
		Long: `Convert reads a network parameter file (text or binary, auto-detected)
and writes it back out in the other format. Use --text to force text output
and --dtype to pick the binary value width.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.toText, "text", false, "write text output instead of binary")
	cmd.Flags().StringVar(&opts.dtype, "dtype", "float64", "binary value width: float64, float32, float16")
	cmd.Flags().StringVar(&opts.rename, "name", "", "store this name instead of the one in the input")

	return cmd
}

func runConvert(ctx context.Context, in, out string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	net, name, err := loadAny(ctx, in)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", in, err)
	}
	if opts.rename != "" {
		name = opts.rename
	}

	if opts.toText {
		if err := codec.SaveText(out, net, name); err != nil {
			return fmt.Errorf("cannot write %s: %w", out, err)
		}
		logger.Info("wrote text document", "file", out, "signature", codec.FormatSignature(net.Topology()))
		return nil
	}

	dtype, err := codec.ParseDType(opts.dtype)
	if err != nil {
		return err
	}
	if err := codec.SaveDType(out, net, name, dtype); err != nil {
		return fmt.Errorf("cannot write %s: %w", out, err)
	}
	logger.Info("wrote binary document", "file", out, "dtype", dtype, "signature", codec.FormatSignature(net.Topology()))
	return nil
}
