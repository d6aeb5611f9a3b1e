//go:build headless

package window

import (
	"context"

	"github.com/five82/gratail/internal/exchange"
)

// Run always fails in headless builds.
func Run(ctx context.Context, eng *exchange.Engine, opts Options) error {
	return ErrUnavailable
}
