package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaskRemovalUoW struct{ mock.Mock }

func (m *MockTaskRemovalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRemovalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRemovalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRemovalUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockTaskRemovalUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockTaskRemovalUoW) ScanRecordRepository() ports.ScanRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.ScanRecordRepository)
}

type MockTaskRemovalUoWFactory struct{ mock.Mock }

func (m *MockTaskRemovalUoWFactory) Create() commands.TaskRemovalUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskRemovalUoW)
}

func taskOverTickets(t *testing.T, tickets ...*ticket.Ticket) *task.Task {
	t.Helper()

	taskTickets := make([]*task.TaskTicket, 0, len(tickets))
	for _, tk := range tickets {
		taskTicket, err := task.NewTaskTicket(kernel.NewUUID(), tk.ID(), tk.Number(), tk.ItemCount())
		require.NoError(t, err)
		require.NoError(t, tk.AssignToTask(taskTicket.ID()))
		taskTickets = append(taskTickets, taskTicket)
	}

	number, err := task.NewNumber(time.Now(), 1)
	require.NoError(t, err)
	created, err := task.NewTask(kernel.NewUUID(), number, 1, nil, nil, time.Now(), taskTickets)
	require.NoError(t, err)
	return created
}

func TestDeleteTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	ticketA := pendingTestTicket(t, 7, 1042, 2)
	ticketB := pendingTestTicket(t, 8, 1043, 1)
	taskAggregate := taskOverTickets(t, ticketA, ticketB)

	cmd, err := commands.NewDeleteTaskCommand(taskAggregate.ID())
	require.NoError(t, err)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	scanRepo := new(MockScanRecordRepository)
	uow := new(MockTaskRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, taskAggregate.ID()).Return(taskAggregate, nil).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7, 8}).Return([]*ticket.Ticket{ticketA, ticketB}, nil).Once(),
		ticketRepo.On("Update", ctx, ticketA).Return(nil).Once(),
		ticketRepo.On("Update", ctx, ticketB).Return(nil).Once(),
		uow.On("ScanRecordRepository").Return(scanRepo).Once(),
		scanRepo.On("DeleteAllForTickets", ctx, []int64{7, 8}).Return(nil).Once(),
		taskRepo.On("Delete", ctx, taskAggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTaskCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, ticket.Pending, ticketA.Status())
	assert.Equal(t, ticket.Pending, ticketB.Status())
	assert.Nil(t, ticketA.TaskTicketID())
	assert.Nil(t, ticketB.TaskTicketID())

	ticketRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	scanRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteTaskCommandHandler_Handle_TaskNotFound(t *testing.T) {
	ctx := t.Context()

	taskID := kernel.NewUUID()
	cmd, err := commands.NewDeleteTaskCommand(taskID)
	require.NoError(t, err)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockTaskRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, taskID).Return(nil, errs.NewObjectNotFoundError("task id", taskID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteTaskCommandHandler_Handle_RollbackOnUpdateFailure(t *testing.T) {
	ctx := t.Context()

	ticketA := pendingTestTicket(t, 7, 1042, 1)
	taskAggregate := taskOverTickets(t, ticketA)

	cmd, err := commands.NewDeleteTaskCommand(taskAggregate.ID())
	require.NoError(t, err)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockTaskRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, taskAggregate.ID()).Return(taskAggregate, nil).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7}).Return([]*ticket.Ticket{ticketA}, nil).Once(),
		ticketRepo.On("Update", ctx, ticketA).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTaskCommandHandler(factory)
	require.ErrorIs(t, handler.Handle(ctx, cmd), assert.AnError)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
