package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels pending orders that outlived the
// configured age. Runs as part of the background cleanup job.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order created before now minus the command's
// age threshold. Returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	stale, err := orderRepo.GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.MarkAsCancelled(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
