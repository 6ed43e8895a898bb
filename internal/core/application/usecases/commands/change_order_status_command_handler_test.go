package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomerDetails("Jane Doe", "jane@example.com", "Moi Avenue 1")
	require.NoError(t, err)
	item, err := order.NewLineItem("sku-1", "Kettle", price(t, "100"), 1, "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), customer, []order.LineItem{item}, price(t, "100"),
		status, "TX", orderDate, orderDate, orderDate)
	require.NoError(t, err)
	return o
}

type changeStatusFixture struct {
	repo      *MockOrderRepository
	uow       *MockOrderUoW
	factory   *MockOrderUoWFactory
	publisher *MockOrderEventPublisher
	handler   commands.ChangeOrderStatusCommandHandler
}

func newChangeStatusFixture() *changeStatusFixture {
	f := &changeStatusFixture{
		repo:      new(MockOrderRepository),
		uow:       new(MockOrderUoW),
		factory:   new(MockOrderUoWFactory),
		publisher: new(MockOrderEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewChangeOrderStatusCommandHandler(f.factory, f.publisher, discardLogger())
	return f
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	existing := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Confirmed)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		f.repo.On("UpdateStatus", ctx, existing, order.Pending).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("PublishStatusChanged", ctx, mock.MatchedBy(func(e order.StatusChanged) bool {
			return e.OrderID.IsEqual(existing.ID()) && e.From == order.Pending && e.To == order.Confirmed
		})).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	updated, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	assert.True(t, updated.UpdatedAt().After(orderDate))
	assert.Equal(t, orderDate, updated.Date())
	f.repo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	existing := storedOrder(t, order.Shipped)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Cancelled)
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Shipped, transitionErr.From)
	assert.Equal(t, order.Cancelled, transitionErr.To)
	assert.Equal(t, order.Shipped, existing.Status())
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Confirmed)
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	existing := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Cancelled)
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.repo.On("UpdateStatus", ctx, existing, order.Pending).
		Return(errs.NewConflictError("order", existing.ID().String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	existing := storedOrder(t, order.Confirmed)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Shipped)
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.repo.On("UpdateStatus", ctx, existing, order.Confirmed).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	f.publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_PublishFailureKeepsCommittedChange(t *testing.T) {
	ctx := t.Context()
	f := newChangeStatusFixture()
	existing := storedOrder(t, order.Confirmed)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Shipped)
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.repo).Once()
	f.repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.repo.On("UpdateStatus", ctx, existing, order.Confirmed).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.publisher.On("PublishStatusChanged", ctx, mock.Anything).Return(errors.New("broker down")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	updated, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, updated.Status())
	f.publisher.AssertExpectations(t)
}

// inMemoryOrders is a store with a compare-and-set status update. Get blocks until
// both callers have loaded the order, so both sides of the race read
// the same status before either writes.
type inMemoryOrders struct {
	mu       sync.Mutex
	snapshot *order.Order
	status   order.Status
	updated  time.Time
	readers  sync.WaitGroup
}

func (s *inMemoryOrders) Create() commands.OrderUoW { return s }

func (s *inMemoryOrders) Begin(context.Context) error    { return nil }
func (s *inMemoryOrders) Commit(context.Context) error   { return nil }
func (s *inMemoryOrders) Rollback(context.Context) error { return nil }

func (s *inMemoryOrders) OrderRepository() ports.OrderRepository { return s }

func (s *inMemoryOrders) Add(context.Context, *order.Order) error { return nil }

func (s *inMemoryOrders) GetAll(context.Context) ([]*order.Order, error) { return nil, nil }

func (s *inMemoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	o := s.snapshot
	restored, err := order.RestoreOrder(id, o.Customer(), o.Items(), o.Total(), s.status,
		o.TransactionCode(), o.Date(), o.CreatedAt(), s.updated)
	s.mu.Unlock()

	s.readers.Done()
	s.readers.Wait()
	return restored, err
}

func (s *inMemoryOrders) UpdateStatus(_ context.Context, o *order.Order, expected order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != expected {
		return errs.NewConflictError("order", o.ID().String())
	}
	s.status = o.Status()
	s.updated = o.UpdatedAt()
	return nil
}

func TestChangeOrderStatusCommandHandler_ConcurrentTransitions(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	store := &inMemoryOrders{snapshot: existing, status: order.Pending, updated: orderDate}
	store.readers.Add(2)

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil)
	handler := commands.NewChangeOrderStatusCommandHandler(store, publisher, discardLogger())

	targets := []order.Status{order.Confirmed, order.Cancelled}
	results := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), target)
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)
	assert.Contains(t, targets, store.status)
	publisher.AssertNumberOfCalls(t, "PublishStatusChanged", 1)
}
