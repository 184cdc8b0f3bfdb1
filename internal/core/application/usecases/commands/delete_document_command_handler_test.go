package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) NextIdentifiers(ctx context.Context) (int64, int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

type MockDocumentRemovalUoW struct{ mock.Mock }

func (m *MockDocumentRemovalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentRemovalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentRemovalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentRemovalUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockDocumentRemovalUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockDocumentRemovalUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockDocumentRemovalUoWFactory struct{ mock.Mock }

func (m *MockDocumentRemovalUoWFactory) Create() commands.DocumentRemovalUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentRemovalUoW)
}

func removalTestDocument(t *testing.T, ticketIDs ...int64) *document.Document {
	t.Helper()
	lines := make([]document.Line, 0, len(ticketIDs))
	for i, ticketID := range ticketIDs {
		id := ticketID
		line, err := document.NewLine(i+1, &id, false, 31, "Prosciutto crudo",
			decimal.New(500, -3), decimal.NewFromInt(10), article.VATStandard22,
			decimal.Zero, decimal.NewFromInt(5), decimal.RequireFromString("1.1"))
		require.NoError(t, err)
		lines = append(lines, line)
	}
	doc, err := document.NewDocument(12, 4, time.Now(),
		document.ClientSnapshot{Name: "Ristorante Da Mario"},
		document.CompanySnapshot{Name: "Salumificio Centrale SRL"},
		"", 1, lines)
	require.NoError(t, err)
	return doc
}

func removalTestTicket(t *testing.T, id int64, taskTicketID *kernel.UUID) *ticket.Ticket {
	t.Helper()
	line, err := ticket.NewLine(31, "Prosciutto crudo", decimal.New(500, -3), ticket.UnitWeight, nil)
	require.NoError(t, err)
	tk, err := ticket.RestoreTicket(id, 1000+int(id), time.Now(), ticket.Processed,
		[]ticket.Line{line}, taskTicketID)
	require.NoError(t, err)
	return tk
}

func TestDeleteDocumentCommandHandler_Handle_RestoresTicketStatuses(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteDocumentCommand(12)
	require.NoError(t, err)

	doc := removalTestDocument(t, 7, 8)

	// ticket 7 is still owned by its TaskTicket, ticket 8 is not
	taskTicketID := kernel.NewUUID()
	stillInTask := removalTestTicket(t, 7, &taskTicketID)
	released := removalTestTicket(t, 8, nil)

	number, err := task.NewNumber(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	taskTicket, err := task.RestoreTaskTicket(taskTicketID, 7, 1007, 1, 1, task.TicketStatusCompleted, nil)
	require.NoError(t, err)
	documentID := int64(12)
	completedAt := time.Now()
	originatingTask, err := task.RestoreTask(kernel.NewUUID(), number, task.StatusCompleted,
		1, nil, nil, time.Now(), &completedAt, &documentID, []*task.TaskTicket{taskTicket})
	require.NoError(t, err)

	documentRepo := new(MockDocumentRepository)
	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockDocumentRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DocumentRepository").Return(documentRepo).Once(),
		documentRepo.On("Get", ctx, int64(12)).Return(doc, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7, 8}).Return([]*ticket.Ticket{stillInTask, released}, nil).Once(),
		ticketRepo.On("Update", ctx, stillInTask).Return(nil).Once(),
		ticketRepo.On("Update", ctx, released).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetByDocumentID", ctx, int64(12)).Return(originatingTask, nil).Once(),
		taskRepo.On("Update", ctx, originatingTask).Return(nil).Once(),
		documentRepo.On("Delete", ctx, int64(12)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDocumentRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDocumentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, ticket.InTask, stillInTask.Status(), "ticket still owned by its task returns in-task")
	assert.Equal(t, ticket.Pending, released.Status(), "orphaned ticket returns to the pool")
	assert.Nil(t, originatingTask.DocumentID(), "document link cleared")

	documentRepo.AssertExpectations(t)
	ticketRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteDocumentCommandHandler_Handle_WithoutOriginatingTask(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteDocumentCommand(12)
	require.NoError(t, err)

	doc := removalTestDocument(t, 8)
	released := removalTestTicket(t, 8, nil)

	documentRepo := new(MockDocumentRepository)
	ticketRepo := new(MockScanTicketRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockDocumentRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DocumentRepository").Return(documentRepo).Once(),
		documentRepo.On("Get", ctx, int64(12)).Return(doc, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{8}).Return([]*ticket.Ticket{released}, nil).Once(),
		ticketRepo.On("Update", ctx, released).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetByDocumentID", ctx, int64(12)).Return(nil, errs.ErrObjectNotFound).Once(),
		documentRepo.On("Delete", ctx, int64(12)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDocumentRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDocumentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, ticket.Pending, released.Status())
	taskRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestDeleteDocumentCommandHandler_Handle_DocumentNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteDocumentCommand(99)
	require.NoError(t, err)

	documentRepo := new(MockDocumentRepository)
	uow := new(MockDocumentRemovalUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DocumentRepository").Return(documentRepo).Once(),
		documentRepo.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("documentID", "99")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDocumentRemovalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDocumentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
