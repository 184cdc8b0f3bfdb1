// Package http exposes the fulfillment pipeline over a JSON API.
// Handlers translate requests into commands and queries; all business rules
// live behind them.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/scan"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTaskHandler     commands.CreateTaskCommandHandler
	deleteTaskHandler     commands.DeleteTaskCommandHandler
	recordScanHandler     commands.RecordScanCommandHandler
	checkoutHandler       commands.CheckoutTicketCommandHandler
	createDocumentHandler commands.CreateDocumentCommandHandler
	deleteDocumentHandler commands.DeleteDocumentCommandHandler
	sweepExpiredHandler   commands.SweepExpiredCommandHandler

	// Query handlers
	getPendingTicketsHandler queries.GetPendingTicketsQueryHandler
	getAllTasksHandler       queries.GetAllTasksQueryHandler
	getDocumentHandler       queries.GetDocumentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTaskHandler commands.CreateTaskCommandHandler,
	deleteTaskHandler commands.DeleteTaskCommandHandler,
	recordScanHandler commands.RecordScanCommandHandler,
	checkoutHandler commands.CheckoutTicketCommandHandler,
	createDocumentHandler commands.CreateDocumentCommandHandler,
	deleteDocumentHandler commands.DeleteDocumentCommandHandler,
	sweepExpiredHandler commands.SweepExpiredCommandHandler,
	getPendingTicketsHandler queries.GetPendingTicketsQueryHandler,
	getAllTasksHandler queries.GetAllTasksQueryHandler,
	getDocumentHandler queries.GetDocumentQueryHandler,
) *Server {
	return &Server{
		createTaskHandler:        createTaskHandler,
		deleteTaskHandler:        deleteTaskHandler,
		recordScanHandler:        recordScanHandler,
		checkoutHandler:          checkoutHandler,
		createDocumentHandler:    createDocumentHandler,
		deleteDocumentHandler:    deleteDocumentHandler,
		sweepExpiredHandler:      sweepExpiredHandler,
		getPendingTicketsHandler: getPendingTicketsHandler,
		getAllTasksHandler:       getAllTasksHandler,
		getDocumentHandler:       getDocumentHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/tickets/pending", s.GetPendingTickets)
	api.POST("/tickets/:ticketID/checkout", s.CheckoutTicket)

	api.POST("/tasks", s.CreateTask)
	api.GET("/tasks", s.GetTasks)
	api.DELETE("/tasks/:taskID", s.DeleteTask)

	api.POST("/scans", s.RecordScan)

	api.POST("/documents", s.CreateDocument)
	api.GET("/documents/:documentID", s.GetDocument)
	api.DELETE("/documents/:documentID", s.DeleteDocument)
}

// GetPendingTickets handles GET /api/v1/tickets/pending. The expiry sweep runs
// inline first, so the returned pool never contains tickets that should
// already be expired.
func (s *Server) GetPendingTickets(ctx echo.Context) error {
	sweepCmd, err := commands.NewSweepExpiredCommand(time.Now())
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err = s.sweepExpiredHandler.Handle(ctx.Request().Context(), sweepCmd); err != nil {
		return s.fail(ctx, err)
	}

	query := queries.NewGetPendingTicketsQuery()
	tickets, err := s.getPendingTicketsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]PendingTicket, len(tickets))
	for i, t := range tickets {
		response[i] = PendingTicket{
			ID:             t.ID,
			Number:         t.Number,
			IssuedAt:       t.IssuedAt,
			ItemCount:      t.ItemCount,
			EarliestExpiry: t.EarliestExpiry,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckoutTicket handles POST /api/v1/tickets/:ticketID/checkout.
func (s *Server) CheckoutTicket(ctx echo.Context) error {
	ticketID, err := strconv.ParseInt(ctx.Param("ticketID"), 10, 64)
	if err != nil {
		return s.badRequest(ctx, "Invalid ticket id")
	}

	var request CheckoutTicketRequest
	if err = ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCheckoutTicketCommand(ticketID, request.UserID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(ctx echo.Context) error {
	var request CreateTaskRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskCommand(
		taskID,
		request.TicketIDs,
		request.CreatedBy,
		request.AssignedTo,
		request.Deadline,
	)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.createTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateTaskResponse{ID: taskID.Bytes()})
}

// GetTasks handles GET /api/v1/tasks.
func (s *Server) GetTasks(ctx echo.Context) error {
	query := queries.NewGetAllTasksQuery()

	tasks, err := s.getAllTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Task, len(tasks))
	for i, t := range tasks {
		response[i] = Task{
			ID:               t.ID,
			Number:           t.Number,
			Status:           t.Status,
			CreatedBy:        t.CreatedBy,
			AssignedTo:       t.AssignedTo,
			Deadline:         t.Deadline,
			CreatedAt:        t.CreatedAt,
			CompletedAt:      t.CompletedAt,
			DocumentID:       t.DocumentID,
			TotalTickets:     t.TotalTickets,
			CompletedTickets: t.CompletedTickets,
			ScannedItems:     t.ScannedItems,
			TotalItems:       t.TotalItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteTask handles DELETE /api/v1/tasks/:taskID. Tickets return to the pool
// and their scan history is discarded.
func (s *Server) DeleteTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskID"))
	if err != nil {
		return s.badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewDeleteTaskCommand(taskID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordScan handles POST /api/v1/scans. A failed verification is a 200 with
// the failure outcome: the attempt was recorded and the operator retries.
func (s *Server) RecordScan(ctx echo.Context) error {
	var request RecordScanRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	taskTicketID, err := kernel.UUIDFromBytes(request.TaskTicketID[:])
	if err != nil {
		return s.badRequest(ctx, "Invalid task ticket id")
	}

	cmd, err := commands.NewRecordScanCommand(taskTicketID, request.Code, request.UserID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	outcome, err := s.recordScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RecordScanResponse{
		Outcome: outcome.String(),
		Success: outcome.IsSuccess(),
	})
}

// CreateDocument handles POST /api/v1/documents.
func (s *Server) CreateDocument(ctx echo.Context) error {
	var request CreateDocumentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	selections := make([]commands.TicketSelection, 0, len(request.Selections))
	for _, sel := range request.Selections {
		selections = append(selections, commands.TicketSelection{
			TicketID:        sel.TicketID,
			DiscountPercent: sel.DiscountPercent,
		})
	}

	manualEntries := make([]commands.ManualEntry, 0, len(request.ManualEntries))
	for _, entry := range request.ManualEntries {
		manualEntries = append(manualEntries, commands.ManualEntry{
			Description:    entry.Description,
			Weight:         entry.Weight,
			UnitGrossPrice: entry.UnitGrossPrice,
			VATBracket:     article.VATBracket(entry.VATBracket),
		})
	}

	var taskID *kernel.UUID
	if request.TaskID != nil {
		id, err := kernel.UUIDFromBytes((*request.TaskID)[:])
		if err != nil {
			return s.badRequest(ctx, "Invalid task id")
		}
		taskID = &id
	}

	cmd, err := commands.NewCreateDocumentCommand(
		request.ClientID,
		request.CompanyID,
		selections,
		manualEntries,
		request.Note,
		taskID,
		request.UserID,
	)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	documentID, err := s.createDocumentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDocumentResponse{ID: documentID})
}

// GetDocument handles GET /api/v1/documents/:documentID.
func (s *Server) GetDocument(ctx echo.Context) error {
	documentID, err := strconv.ParseInt(ctx.Param("documentID"), 10, 64)
	if err != nil {
		return s.badRequest(ctx, "Invalid document id")
	}

	query, err := queries.NewGetDocumentQuery(documentID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	doc, err := s.getDocumentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, documentToResponse(doc))
}

// DeleteDocument handles DELETE /api/v1/documents/:documentID, reversing the
// consolidation.
func (s *Server) DeleteDocument(ctx echo.Context) error {
	documentID, err := strconv.ParseInt(ctx.Param("documentID"), 10, 64)
	if err != nil {
		return s.badRequest(ctx, "Invalid document id")
	}

	cmd, err := commands.NewDeleteDocumentCommand(documentID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// documentToResponse flattens the document read model into the wire shape.
func documentToResponse(doc queries.GetDocumentQueryResponse) Document {
	lines := make([]DocumentLine, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		lines = append(lines, DocumentLine{
			Number:          line.Number,
			TicketID:        line.TicketID,
			Manual:          line.Manual,
			ArticleID:       line.ArticleID,
			Description:     line.Description,
			Weight:          line.Weight,
			UnitNetPrice:    line.UnitNetPrice,
			VATPercentage:   line.VATPercentage,
			DiscountPercent: line.DiscountPercent,
			NetAmount:       line.NetAmount,
			VATAmount:       line.VATAmount,
			GrossAmount:     line.GrossAmount,
		})
	}

	return Document{
		ID:         doc.ID,
		Sequence:   doc.Sequence,
		IssuedAt:   doc.IssuedAt,
		Note:       doc.Note,
		CreatedBy:  doc.CreatedBy,
		Client:     partyToResponse(doc.Client),
		Company:    partyToResponse(doc.Company),
		Lines:      lines,
		TotalNet:   doc.TotalNet,
		TotalVAT:   doc.TotalVAT,
		TotalGross: doc.TotalGross,
	}
}

func partyToResponse(party queries.DocumentPartyResponse) DocumentParty {
	return DocumentParty{
		Name:       party.Name,
		VATNumber:  party.VATNumber,
		TaxCode:    party.TaxCode,
		Address:    party.Address,
		Town:       party.Town,
		Province:   party.Province,
		PostalCode: party.PostalCode,
		Phone:      party.Phone,
		Email:      party.Email,
		Country:    party.Country,
	}
}

// badRequest replies 400 with the given message.
func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a use-case error onto the HTTP status taxonomy.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, scan.ErrMalformedCode),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, ticket.ErrIllegalTransition),
		errors.Is(err, commands.ErrTicketIsNotPending):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
