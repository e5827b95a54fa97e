package proxyscripts

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
)

// NewProxyCallSimpleCmd reads the byte configurable of a SimpleTargetContract through its proxy.
func NewProxyCallSimpleCmd() *cobra.Command {
	return newProxyCallSimpleCmd(evm.Connect)
}

func newProxyCallSimpleCmd(connect connectFunc) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "proxy-call-simple",
		Short:         "Read the byte configurable of a SimpleTargetContract through its proxy",
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

			runProxyCall[uint8](s.ctx, cmd.OutOrStdout(), target)

			return nil
		},
	}
	bindConnectionFlags(cmd, &cfg, true)

	return cmd
}

// newSimpleTarget binds the proxy with the SimpleTargetContract ABI and declares the target on its calls.
func newSimpleTarget(s *session) (*evm.SimpleTargetContract, error) {
	target, err := evm.NewSimpleTargetContract(s.proxyID, s.wallet)
	if err != nil {
		return nil, err
	}

	if s.targetID != nil {
		target = target.WithContractIDs(*s.targetID)
	}

	return target, nil
}
