package commands

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order along the status state machine.
//
// The stored status is read, the transition is checked in the domain, and the write is
// conditional on the status that was read. When two operators race on the same order,
// exactly one write lands; the other gets errs.ConflictError and nothing changes.
// Conflicts are not retried: the caller re-fetches and decides.
//
// After a successful commit an order.StatusChanged event is published. Publishing is
// best effort: a failure is logged and the committed change stands.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "ChangeOrderStatusCommandHandler"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle applies the transition and returns the updated order.
// Errors: errs.ObjectNotFoundError, *order.InvalidTransitionError, errs.ConflictError,
// errs.StoreUnavailableError.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, aggregate, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", aggregate.ID().String(),
		"from", from.String(),
		"to", aggregate.Status().String(),
	)
	h.publish(ctx, aggregate, from)

	return aggregate, nil
}

func (h *ChangeOrderStatusCommandHandler) publish(ctx context.Context, aggregate *order.Order, from order.Status) {
	event, err := order.NewStatusChanged(aggregate, from)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build status event", "error", err)
		return
	}

	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish status event",
			"order_id", event.OrderID.String(),
			"event_id", event.EventID.String(),
			"error", err,
		)
	}
}
