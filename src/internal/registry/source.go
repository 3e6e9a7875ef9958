// Package registry provides access to the mise tool registry with a local
// disk cache, since `mise registry --json` is slow and rarely changes.
package registry

import (
	"context"

	"github.com/misectl/misectl/src/internal/mise"
)

// Source lists registry entries. *mise.Client is the live implementation.
type Source interface {
	ListRegistry(ctx context.Context) ([]mise.RegistryEntry, error)
}

var _ Source = (*mise.Client)(nil)
