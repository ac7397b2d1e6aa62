package batch

import "context"

// Runner processes every sheet row once, in order.
type Runner interface {
	// Run returns how many rows were updated.
	Run(ctx context.Context) (int, error)
}
