package proxyscripts

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
)

const proxyCallTitle = "Calling Proxy Contract"

// NewProxyCallCmd reads the boolean configurable of a LargeTargetContract through its proxy.
func NewProxyCallCmd() *cobra.Command {
	return newProxyCallCmd(evm.Connect)
}

func newProxyCallCmd(connect connectFunc) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "proxy-call",
		Short:         "Read the boolean configurable of a LargeTargetContract through its proxy",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setupScript(cmd, &cfg, connect)
			if err != nil {
				return err
			}
			defer s.Close()

			target, err := evm.NewLargeTargetContract(s.proxyID, s.wallet)
			if err != nil {
				return err
			}

			runProxyCall[bool](s.ctx, cmd.OutOrStdout(), target)

			return nil
		},
	}
	bindConnectionFlags(cmd, &cfg, false)

	return cmd
}

// runProxyCall prints the configurable read from the target, or the error the call failed with.
func runProxyCall[T any](ctx context.Context, out io.Writer, reader sdk.ConfigurableReader[T]) {
	printBanner(out, proxyCallTitle)

	value, err := reader.GetConfigurable(ctx)
	if err != nil {
		printError(out, err)
		return
	}

	printResponse(out, "%v", value)
}
