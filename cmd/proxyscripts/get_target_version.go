package proxyscripts

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
)

func NewGetTargetVersionCmd() *cobra.Command {
	return newGetTargetVersionCmd(evm.Connect)
}

func newGetTargetVersionCmd(connect connectFunc) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "get-target-version",
		Short:         "Print the version of the target behind a proxy",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setupScript(cmd, &cfg, connect)
			if err != nil {
				return err
			}
			defer s.Close()

			target, err := newSimpleTarget(s)
			if err != nil {
				return err
			}

			runGetTargetVersion(s.ctx, cmd.OutOrStdout(), target)

			return nil
		},
	}
	bindConnectionFlags(cmd, &cfg, true)

	return cmd
}

func runGetTargetVersion(ctx context.Context, out io.Writer, target sdk.TargetInspector) {
	printBanner(out, "Getting target version")

	version, err := target.GetVersion(ctx)
	if err != nil {
		printError(out, err)
		return
	}

	printResponse(out, "target contract version %d", version)
}
