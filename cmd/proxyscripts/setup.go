package proxyscripts

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/proxy-scripts/internal/config"
	"github.com/smartcontractkit/proxy-scripts/sdk"
	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
)

// connectFunc dials a provider. Scripts take it as a parameter so tests can count dials.
type connectFunc func(ctx context.Context, url string) (*evm.Provider, error)

// session is what a script works with once setup succeeded.
type session struct {
	ctx      context.Context
	provider *evm.Provider
	wallet   *evm.Wallet
	proxyID  evm.ContractID
	targetID *evm.ContractID
}

func (s *session) Close() {
	s.provider.Close()
}

// setupScript resolves the parameters, then connects and builds the wallet.
// Every failure here is fatal to the script, and parameter failures come with the usage text.
func setupScript(cmd *cobra.Command, cfg *config.Config, connect connectFunc) (*session, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.ApplyEnv()

	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	// usage only helps with bad parameters
	cmd.SilenceUsage = true

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	ctx := sdk.WithLogger(cmd.Context(), logger)

	provider, err := connect(ctx, resolved.ProviderURL)
	if err != nil {
		return nil, err
	}

	if err = provider.VerifyChainSelector(resolved.Selector); err != nil {
		provider.Close()
		return nil, err
	}

	wallet, err := evm.NewWallet(resolved.SigningKey, provider)
	if err != nil {
		provider.Close()
		return nil, err
	}
	logger.Infof("Using wallet %s on %s, chain id %s", wallet.Address().Hex(), provider.URL(), provider.ChainID())
	if resolved.Selector != 0 {
		logger.Infof("Provider serves %s", resolved.Selector.Name())
	}

	return &session{
		ctx:      ctx,
		provider: provider,
		wallet:   wallet,
		proxyID:  resolved.ProxyID,
		targetID: resolved.TargetID,
	}, nil
}

// newLogger builds a console logger on w, which is stderr outside of tests.
func newLogger(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core).Sugar(), nil
}
