package gateway

import (
	"context"
	"math/rand/v2"
	"time"

	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/domain/dto"
)

// Mock stands in for the order-creation backend. It resolves after a fixed
// processing delay with a synthesized order id and never rejects an order.
// Cancelling the context abandons the submission.
type Mock struct {
	ProcessingDelay time.Duration
}

func NewMock(processingDelay time.Duration) *Mock {
	return &Mock{ProcessingDelay: processingDelay}
}

func (m *Mock) Process(ctx context.Context, _ dto.OrderPayload) (int, error) {
	if m.ProcessingDelay > 0 {
		select {
		case <-time.After(m.ProcessingDelay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	return core.MinOrderID + rand.IntN(core.MaxOrderID-core.MinOrderID+1), nil
}
