package proxyscripts

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
)

const (
	flagProviderURL      = "provider-url"
	flagSigningKey       = "signing-key"
	flagProxyContractID  = "proxy-contract-id"
	flagTargetContractID = "target-contract-id"
	flagSelector         = "selector"
	flagLogLevel         = "log-level"
)

// bindConnectionFlags registers the connection parameters shared by every script on cmd.
func bindConnectionFlags(cmd *cobra.Command, cfg *config.Config, withTarget bool) {
	flags := cmd.Flags()

	flags.StringVarP(&cfg.ProviderURL, flagProviderURL, "p", config.DefaultProviderURL, "Address of the provider to connect to")
	flags.StringVarP(&cfg.SigningKey, flagSigningKey, "k", "", "Hex private key of the signing wallet, defaults to $"+config.SigningKeyEnv)
	flags.StringVar(&cfg.ProxyContractID, flagProxyContractID, "", "Contract id of the proxy")
	flags.Uint64Var(&cfg.Selector, flagSelector, 0, "Chain selector the provider must serve, 0 skips the check")
	flags.StringVar(&cfg.LogLevel, flagLogLevel, config.DefaultLogLevel, "Diagnostic log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired(flagProxyContractID)

	if withTarget {
		flags.StringVar(&cfg.TargetContractID, flagTargetContractID, "", "Contract id of the target behind the proxy")
		_ = cmd.MarkFlagRequired(flagTargetContractID)
		cfg.TargetRequired = true
	}
}
