package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Analytics validates a raw JSON body, runs the aggregate query and shapes the rows
	Analytics(ctx context.Context, payload []byte) (Result, error)
}
