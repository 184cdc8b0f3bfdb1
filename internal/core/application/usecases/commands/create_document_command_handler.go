package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/domain/services"
)

// CreateDocumentCommandHandler handles the business logic for issuing a
// transport document: registry snapshots, consolidation math, identifier
// allocation and the ticket status transitions, all in one transaction.
type CreateDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewCreateDocumentCommandHandler creates a handler for document creation.
// Requires a DocumentUoWFactory for transactional persistence.
func NewCreateDocumentCommandHandler(uowFactory DocumentUoWFactory) CreateDocumentCommandHandler {
	return CreateDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document creation command and returns the new document
// id. Consolidation that produces zero lines is refused before anything is
// written, so no identifier is burned. Every consumed ticket transitions to
// processed; the originating task, when given, records the document link.
func (h CreateDocumentCommandHandler) Handle(ctx context.Context, cmd CreateDocumentCommand) (int64, error) {
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

	registryRepo := uow.RegistryRepository()
	client, err := registryRepo.GetClient(ctx, cmd.ClientID())
	if err != nil {
		return 0, err
	}
	company, err := registryRepo.GetCompany(ctx, cmd.CompanyID())
	if err != nil {
		return 0, err
	}

	ticketRepo := uow.TicketRepository()
	ticketIDs := make([]int64, 0, len(cmd.Selections()))
	for _, sel := range cmd.Selections() {
		ticketIDs = append(ticketIDs, sel.TicketID)
	}
	tickets, err := ticketRepo.GetByIDs(ctx, ticketIDs)
	if err != nil {
		return 0, err
	}
	ticketsByID := make(map[int64]*ticket.Ticket, len(tickets))
	for _, t := range tickets {
		ticketsByID[t.ID()] = t
	}

	articles, err := uow.ArticleRepository().GetByIDs(ctx, collectArticleIDs(tickets))
	if err != nil {
		return 0, err
	}

	selections := make([]services.TicketSelection, 0, len(cmd.Selections()))
	for _, sel := range cmd.Selections() {
		selections = append(selections, services.TicketSelection{
			Ticket:          ticketsByID[sel.TicketID],
			DiscountPercent: sel.DiscountPercent,
		})
	}
	manualEntries := make([]services.ManualEntry, 0, len(cmd.ManualEntries()))
	for _, entry := range cmd.ManualEntries() {
		manualEntries = append(manualEntries, services.ManualEntry{
			Description:    entry.Description,
			Weight:         entry.Weight,
			UnitGrossPrice: entry.UnitGrossPrice,
			VATBracket:     entry.VATBracket,
		})
	}

	lines, err := services.NewDocumentBuilder().BuildLines(selections, manualEntries, articles)
	if err != nil {
		return 0, err
	}

	documentRepo := uow.DocumentRepository()
	documentID, sequence, err := documentRepo.NextIdentifiers(ctx)
	if err != nil {
		return 0, err
	}

	doc, err := document.NewDocument(
		documentID, sequence, time.Now(), client, company, cmd.Note(), cmd.UserID(), lines,
	)
	if err != nil {
		return 0, err
	}
	if err = documentRepo.Add(ctx, doc); err != nil {
		return 0, err
	}

	for _, t := range tickets {
		if err = t.Transition(ticket.Processed); err != nil {
			return 0, err
		}
		if err = ticketRepo.Update(ctx, t); err != nil {
			return 0, err
		}
	}

	if cmd.TaskID() != nil {
		taskRepo := uow.TaskRepository()
		taskAggregate, err := taskRepo.Get(ctx, *cmd.TaskID())
		if err != nil {
			return 0, err
		}
		if err = taskAggregate.LinkDocument(documentID); err != nil {
			return 0, err
		}
		if err = taskRepo.Update(ctx, taskAggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return documentID, nil
}

// collectArticleIDs gathers the distinct catalog articles referenced by the
// tickets' lines.
func collectArticleIDs(tickets []*ticket.Ticket) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, t := range tickets {
		for _, line := range t.Lines() {
			if _, ok := seen[line.ArticleID()]; ok {
				continue
			}
			seen[line.ArticleID()] = struct{}{}
			ids = append(ids, line.ArticleID())
		}
	}
	return ids
}
