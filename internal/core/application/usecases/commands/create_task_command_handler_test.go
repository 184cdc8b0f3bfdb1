package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaskUoW struct{ mock.Mock }

func (m *MockTaskUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockTaskUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockTaskUoW) Notifier() ports.Notifier {
	args := m.Called()
	return args.Get(0).(ports.Notifier)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

func pendingTestTicket(t *testing.T, id int64, number int, itemCount int) *ticket.Ticket {
	t.Helper()
	lines := make([]ticket.Line, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		line, err := ticket.NewLine(int64(30+i), "Prosciutto crudo", decimal.New(500, -3), ticket.UnitWeight, nil)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	tk, err := ticket.NewTicket(id, number, time.Now(), lines)
	require.NoError(t, err)
	return tk
}

func TestCreateTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	assignee := int64(5)
	cmd, err := commands.NewCreateTaskCommand(kernel.NewUUID(), []int64{7, 8}, 1, &assignee, nil)
	require.NoError(t, err)

	ticketA := pendingTestTicket(t, 7, 1042, 2)
	ticketB := pendingTestTicket(t, 8, 1043, 1)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	notifier := new(MockNotifier)
	uow := new(MockTaskUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7, 8}).Return([]*ticket.Ticket{ticketA, ticketB}, nil).Once(),
		taskRepo.On("MaxSequenceForDay", ctx, mock.AnythingOfType("time.Time")).Return(3, nil).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		ticketRepo.On("Update", ctx, ticketA).Return(nil).Once(),
		ticketRepo.On("Update", ctx, ticketB).Return(nil).Once(),
		uow.On("Notifier").Return(notifier).Once(),
		notifier.On("Notify", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, ticket.InTask, ticketA.Status())
	assert.Equal(t, ticket.InTask, ticketB.Status())
	assert.NotNil(t, ticketA.TaskTicketID())
	assert.NotNil(t, ticketB.TaskTicketID())

	addCall := taskRepo.Calls[1]
	created := addCall.Arguments[1].(*task.Task)
	assert.Equal(t, task.StatusAssigned, created.Status())
	assert.Equal(t, 2, created.TotalTickets())
	assert.Contains(t, created.Number().String(), "-0004", "sequence is max-seen plus one")

	taskTicket, err := created.TaskTicketByTicketID(7)
	require.NoError(t, err)
	assert.Equal(t, 2, taskTicket.TotalItems(), "total items snapshot the line count")
	assert.True(t, ticketA.TaskTicketID().IsEqual(taskTicket.ID()))

	notifyCall := notifier.Calls[0]
	notification := notifyCall.Arguments[1].(ports.Notification)
	assert.Equal(t, ports.NotificationTaskAssigned, notification.Kind)
	assert.Equal(t, assignee, notification.UserID)

	ticketRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_Handle_UnassignedSkipsNotification(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateTaskCommand(kernel.NewUUID(), []int64{7}, 1, nil, nil)
	require.NoError(t, err)

	ticketA := pendingTestTicket(t, 7, 1042, 1)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockTaskUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7}).Return([]*ticket.Ticket{ticketA}, nil).Once(),
		taskRepo.On("MaxSequenceForDay", ctx, mock.AnythingOfType("time.Time")).Return(0, nil).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		ticketRepo.On("Update", ctx, ticketA).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "Notifier")

	addCall := taskRepo.Calls[1]
	created := addCall.Arguments[1].(*task.Task)
	assert.Equal(t, task.StatusPending, created.Status())
	assert.Contains(t, created.Number().String(), "-0001", "first task of the day")
}

func TestCreateTaskCommandHandler_Handle_IllegalTransitionRollsBack(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateTaskCommand(kernel.NewUUID(), []int64{7}, 1, nil, nil)
	require.NoError(t, err)

	// reserved by the till for a draft document; cannot enter a task
	line, err := ticket.NewLine(31, "Prosciutto crudo", decimal.New(500, -3), ticket.UnitWeight, nil)
	require.NoError(t, err)
	busy, err := ticket.RestoreTicket(7, 1042, time.Now(), ticket.DraftDocumentA, []ticket.Line{line}, nil)
	require.NoError(t, err)

	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockTaskUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7}).Return([]*ticket.Ticket{busy}, nil).Once(),
		taskRepo.On("MaxSequenceForDay", ctx, mock.AnythingOfType("time.Time")).Return(0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, ticket.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateTaskCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateTaskCommand(kernel.NewUUID(), []int64{7}, 1, nil, nil)
	require.NoError(t, err)

	uow := new(MockTaskUoW)
	factory := new(MockTaskUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateTaskCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
