package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/smartcontractkit/proxy-scripts/sdk/evm"
	"github.com/smartcontractkit/proxy-scripts/types"
)

const (
	// DefaultProviderURL is the endpoint used when --provider-url is not given.
	DefaultProviderURL = "127.0.0.1:4000"

	// SigningKeyEnv names the environment variable read when --signing-key is not given.
	SigningKeyEnv = "SIGNING_KEY"

	// DefaultLogLevel keeps the diagnostic log quiet unless asked otherwise.
	DefaultLogLevel = "warn"
)

// Config holds the raw connection parameters of a script.
type Config struct {
	ProviderURL      string `flag:"provider-url" validate:"required"`
	SigningKey       string `flag:"signing-key" validate:"required"`
	ProxyContractID  string `flag:"proxy-contract-id" validate:"required"`
	TargetContractID string `flag:"target-contract-id" validate:"required_if=TargetRequired true"`
	Selector         uint64 `flag:"selector"`
	LogLevel         string `flag:"log-level" validate:"omitempty,oneof=debug info warn error"`

	// TargetRequired is set by the scripts that declare the target contract on their calls.
	TargetRequired bool `flag:"-"`
}

// Resolved holds the parameters decoded into their typed form.
type Resolved struct {
	ProviderURL string
	SigningKey  *ecdsa.PrivateKey
	ProxyID     evm.ContractID
	TargetID    *evm.ContractID
	Selector    types.ChainSelector
}

// LoadEnv loads a .env file from the working directory into the process environment.
// Variables already set are not overridden, and a missing file is not an error.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// ApplyEnv fills the signing key from SIGNING_KEY when it was not given as a flag.
func (c *Config) ApplyEnv() {
	if c.SigningKey == "" {
		c.SigningKey = os.Getenv(SigningKeyEnv)
	}
}

// Validate runs tag-based validation. Field names in the errors are the flag names.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate.Struct(c)
}

// Resolve validates the configuration and decodes the key and contract ids.
// Nothing here touches the network.
func (c *Config) Resolve() (*Resolved, error) {
	if err := c.Validate(); err != nil {
		return nil, missingFlagsError(err)
	}

	key, err := evm.ParseSigningKey(c.SigningKey)
	if err != nil {
		return nil, err
	}

	proxyID, err := evm.ParseContractID(c.ProxyContractID)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		ProviderURL: c.ProviderURL,
		SigningKey:  key,
		ProxyID:     proxyID,
		Selector:    types.ChainSelector(c.Selector),
	}

	if c.TargetContractID != "" {
		targetID, err := evm.ParseContractID(c.TargetContractID)
		if err != nil {
			return nil, err
		}
		resolved.TargetID = &targetID
	}

	return resolved, nil
}

// missingFlagsError reports missing values the way cobra reports missing required flags.
// Any other validation failure is returned unchanged.
func missingFlagsError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() != "required" && fe.Tag() != "required_if" {
			return err
		}

		name := fmt.Sprintf("%q", fe.Field())
		if fe.Field() == "signing-key" {
			name += " (or $" + SigningKeyEnv + ")"
		}
		missing = append(missing, name)
	}

	return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
}
