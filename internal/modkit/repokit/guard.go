package repokit

import (
	"context"
	"fmt"
	"time"
)

type guarder interface {
	Guard(context.Context) error
}

// Ping checks p within timeout unless ctx already carries a deadline
func Ping(ctx context.Context, p interface{ Ping(context.Context) error }, timeout time.Duration) error {
	if p == nil {
		return fmt.Errorf("nil dependency")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return p.Ping(ctx)
}

// MustPing panics if a dependency doesn't answer a Ping within 5s
func MustPing(ctx context.Context, name string, p interface{ Ping(context.Context) error }) {
	if err := Ping(ctx, p, 5*time.Second); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard runs store.Guard and panics on any error (used by the seeder before it writes)
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
