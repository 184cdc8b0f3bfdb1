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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockArticleRepository struct{ mock.Mock }

func (m *MockArticleRepository) Get(ctx context.Context, id int64) (article.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(article.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]article.Article, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]article.Article), args.Error(1)
}

type MockRegistryRepository struct{ mock.Mock }

func (m *MockRegistryRepository) GetClient(ctx context.Context, id int64) (document.ClientSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(document.ClientSnapshot), args.Error(1)
}

func (m *MockRegistryRepository) GetCompany(ctx context.Context, id int64) (document.CompanySnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(document.CompanySnapshot), args.Error(1)
}

type MockDocumentUoW struct{ mock.Mock }

func (m *MockDocumentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockDocumentUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

func (m *MockDocumentUoW) ArticleRepository() ports.ArticleRepository {
	args := m.Called()
	return args.Get(0).(ports.ArticleRepository)
}

func (m *MockDocumentUoW) RegistryRepository() ports.RegistryRepository {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}

func TestCreateDocumentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDocumentCommand(
		3, 1,
		[]commands.TicketSelection{{TicketID: 7, DiscountPercent: decimal.NewFromInt(20)}},
		[]commands.ManualEntry{{
			Description:    "Trasporto",
			Weight:         decimal.NewFromInt(1),
			UnitGrossPrice: decimal.RequireFromString("6.10"),
			VATBracket:     article.VATStandard22,
		}},
		"consegna mattina", nil, 1,
	)
	require.NoError(t, err)

	line, err := ticket.NewLine(31, "Prosciutto crudo", decimal.NewFromInt(2), ticket.UnitWeight, nil)
	require.NoError(t, err)
	taskTicketID := kernel.NewUUID()
	consumed, err := ticket.RestoreTicket(7, 1042, time.Now(), ticket.InTask, []ticket.Line{line}, &taskTicketID)
	require.NoError(t, err)

	art, err := article.NewArticle(31, "Prosciutto crudo", article.VATStandard22, decimal.RequireFromString("12.20"))
	require.NoError(t, err)

	client := document.ClientSnapshot{Name: "Ristorante Da Mario"}
	company := document.CompanySnapshot{Name: "Salumificio Centrale SRL"}

	registryRepo := new(MockRegistryRepository)
	ticketRepo := new(MockScanTicketRepository)
	articleRepo := new(MockArticleRepository)
	documentRepo := new(MockDocumentRepository)
	uow := new(MockDocumentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegistryRepository").Return(registryRepo).Once(),
		registryRepo.On("GetClient", ctx, int64(3)).Return(client, nil).Once(),
		registryRepo.On("GetCompany", ctx, int64(1)).Return(company, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7}).Return([]*ticket.Ticket{consumed}, nil).Once(),
		uow.On("ArticleRepository").Return(articleRepo).Once(),
		articleRepo.On("GetByIDs", ctx, []int64{31}).Return(map[int64]article.Article{31: art}, nil).Once(),
		uow.On("DocumentRepository").Return(documentRepo).Once(),
		documentRepo.On("NextIdentifiers", ctx).Return(int64(12), 4, nil).Once(),
		documentRepo.On("Add", ctx, mock.AnythingOfType("*document.Document")).Return(nil).Once(),
		ticketRepo.On("Update", ctx, consumed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDocumentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDocumentCommandHandler(factory)
	documentID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), documentID)
	assert.Equal(t, ticket.Processed, consumed.Status(), "consumed ticket leaves the pipeline")

	addCall := documentRepo.Calls[1]
	doc := addCall.Arguments[1].(*document.Document)
	assert.Equal(t, int64(12), doc.ID())
	assert.Equal(t, 4, doc.Sequence())
	assert.Equal(t, 2, doc.LineCount())
	assert.Equal(t, "Ristorante Da Mario", doc.Client().Name)

	// ticket line: gross 12.20 at 22% -> net unit 10.00, x2kg, 20% off -> 16.00 + 3.52 VAT
	// manual line: gross 6.10 at 22% -> net 5.00 + 1.10 VAT
	totals := doc.Totals()
	assert.True(t, totals.Net.Equal(decimal.RequireFromString("21.00")), "net: %s", totals.Net)
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("4.62")), "vat: %s", totals.VAT)
	assert.True(t, totals.Gross.Equal(decimal.RequireFromString("25.62")), "gross: %s", totals.Gross)

	registryRepo.AssertExpectations(t)
	ticketRepo.AssertExpectations(t)
	articleRepo.AssertExpectations(t)
	documentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDocumentCommandHandler_Handle_LinksOriginatingTask(t *testing.T) {
	ctx := t.Context()

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateDocumentCommand(
		3, 1,
		[]commands.TicketSelection{{TicketID: 7, DiscountPercent: decimal.Zero}},
		nil, "", &taskID, 1,
	)
	require.NoError(t, err)

	line, err := ticket.NewLine(31, "Prosciutto crudo", decimal.NewFromInt(1), ticket.UnitWeight, nil)
	require.NoError(t, err)
	taskTicketID := kernel.NewUUID()
	consumed, err := ticket.RestoreTicket(7, 1042, time.Now(), ticket.Processed, []ticket.Line{line}, &taskTicketID)
	require.NoError(t, err)

	art, err := article.NewArticle(31, "Prosciutto crudo", article.VATStandard22, decimal.RequireFromString("12.20"))
	require.NoError(t, err)

	number, err := task.NewNumber(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	taskTicket, err := task.RestoreTaskTicket(taskTicketID, 7, 1042, 1, 1, task.TicketStatusCompleted, nil)
	require.NoError(t, err)
	completedAt := time.Now()
	originatingTask, err := task.RestoreTask(taskID, number, task.StatusCompleted,
		1, nil, nil, time.Now(), &completedAt, nil, []*task.TaskTicket{taskTicket})
	require.NoError(t, err)

	registryRepo := new(MockRegistryRepository)
	ticketRepo := new(MockScanTicketRepository)
	articleRepo := new(MockArticleRepository)
	documentRepo := new(MockDocumentRepository)
	taskRepo := new(MockScanTaskRepository)
	uow := new(MockDocumentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegistryRepository").Return(registryRepo).Once(),
		registryRepo.On("GetClient", ctx, int64(3)).Return(document.ClientSnapshot{Name: "Ristorante Da Mario"}, nil).Once(),
		registryRepo.On("GetCompany", ctx, int64(1)).Return(document.CompanySnapshot{Name: "Salumificio Centrale SRL"}, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByIDs", ctx, []int64{7}).Return([]*ticket.Ticket{consumed}, nil).Once(),
		uow.On("ArticleRepository").Return(articleRepo).Once(),
		articleRepo.On("GetByIDs", ctx, []int64{31}).Return(map[int64]article.Article{31: art}, nil).Once(),
		uow.On("DocumentRepository").Return(documentRepo).Once(),
		documentRepo.On("NextIdentifiers", ctx).Return(int64(12), 4, nil).Once(),
		documentRepo.On("Add", ctx, mock.AnythingOfType("*document.Document")).Return(nil).Once(),
		ticketRepo.On("Update", ctx, consumed).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, taskID).Return(originatingTask, nil).Once(),
		taskRepo.On("Update", ctx, originatingTask).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDocumentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDocumentCommandHandler(factory)
	documentID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, originatingTask.DocumentID())
	assert.Equal(t, documentID, *originatingTask.DocumentID())
}

func TestNewCreateDocumentCommand_RequiresContent(t *testing.T) {
	_, err := commands.NewCreateDocumentCommand(3, 1, nil, nil, "", nil, 1)
	require.ErrorIs(t, err, commands.ErrDocumentHasNoContent)
}
