package sdk

import (
	"context"

	"github.com/smartcontractkit/proxy-scripts/types"
)

// TargetInspector gives read access to the state of a target contract reached through its proxy.
type TargetInspector interface {
	IsPaused(ctx context.Context) (bool, error)
	GetVersion(ctx context.Context) (uint64, error)
}

// TargetPauser changes the paused state of a target contract reached through its proxy.
// Both calls return once the transaction is mined.
type TargetPauser interface {
	Pause(ctx context.Context) (types.TransactionResult, error)
	Unpause(ctx context.Context) (types.TransactionResult, error)
}

// PausableTarget is a target that can be paused and inspected.
type PausableTarget interface {
	TargetInspector
	TargetPauser
}

// ConfigurableReader reads a configurable value baked into the target at deployment.
type ConfigurableReader[T any] interface {
	GetConfigurable(ctx context.Context) (T, error)
}
