package proxyscripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// BuildRootCmd returns the proxy-scripts command with every script as a sub-command.
func BuildRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "proxy-scripts",
		Short: "Call proxy contracts and the targets behind them",
		Long: `Connect to a node, load a signing wallet and invoke a method on a deployed proxy
contract using the ABI of the target it forwards to.`,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewProxyCallCmd())
	cmd.AddCommand(NewProxyCallSimpleCmd())
	cmd.AddCommand(NewGetTargetVersionCmd())
	cmd.AddCommand(NewPauseTargetCmd())
	cmd.AddCommand(NewUnpauseTargetCmd())

	return &cmd
}

// Execute runs cmd until it returns or the process is interrupted and returns the exit code.
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return 1
	}

	return 0
}
