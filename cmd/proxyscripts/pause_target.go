package proxyscripts

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
	"github.com/smartcontractkit/proxy-scripts/types"
)

// pauseAction is one of the two state changing scripts.
type pauseAction struct {
	use   string
	short string
	title string
	send  func(ctx context.Context, target sdk.TargetPauser) (types.TransactionResult, error)
}

var (
	pauseTarget = pauseAction{
		use:   "pause-target",
		short: "Pause the target behind a proxy and print its paused state",
		title: "Pausing target",
		send: func(ctx context.Context, target sdk.TargetPauser) (types.TransactionResult, error) {
			return target.Pause(ctx)
		},
	}

	unpauseTarget = pauseAction{
		use:   "unpause-target",
		short: "Unpause the target behind a proxy and print its paused state",
		title: "Unpausing target",
		send: func(ctx context.Context, target sdk.TargetPauser) (types.TransactionResult, error) {
			return target.Unpause(ctx)
		},
	}
)

func NewPauseTargetCmd() *cobra.Command {
	return newPauseActionCmd(pauseTarget, evm.Connect)
}

func NewUnpauseTargetCmd() *cobra.Command {
	return newPauseActionCmd(unpauseTarget, evm.Connect)
}

func newPauseActionCmd(action pauseAction, connect connectFunc) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           action.use,
		Short:         action.short,
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

			action.run(s.ctx, cmd.OutOrStdout(), target)

			return nil
		},
	}
	bindConnectionFlags(cmd, &cfg, true)

	return cmd
}

// run sends the transaction and, once it is mined, reads back the paused state.
// A failed transaction prints a single error line and skips the read.
func (a pauseAction) run(ctx context.Context, out io.Writer, target sdk.PausableTarget) {
	printBanner(out, a.title)

	result, err := a.send(ctx, target)
	if err != nil {
		printError(out, err)
		return
	}
	sdk.LoggerFrom(ctx).Debugw("Transaction confirmed", "script", a.use, "hash", result.Hash)

	paused, err := target.IsPaused(ctx)
	if err != nil {
		printError(out, err)
		return
	}

	printResponse(out, "target paused = %t", paused)
}
