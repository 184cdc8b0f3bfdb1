package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	var f commands.TaskRemovalUoWFactory = FuncTaskRemovalUoWFactory(func() commands.TaskRemovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordScanCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutTicketCommandHandler() commands.CheckoutTicketCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutTicketCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepExpiredCommandHandler() commands.SweepExpiredCommandHandler {
	var f commands.TicketUoWFactory = FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpiredCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDocumentCommandHandler() commands.CreateDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDocumentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDocumentCommandHandler() commands.DeleteDocumentCommandHandler {
	var f commands.DocumentRemovalUoWFactory = FuncDocumentRemovalUoWFactory(func() commands.DocumentRemovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDocumentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPendingTicketsQueryHandler() queries.GetPendingTicketsQueryHandler {
	return queries.NewGetPendingTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTasksQueryHandler() queries.GetAllTasksQueryHandler {
	return queries.NewGetAllTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentQueryHandler() queries.GetDocumentQueryHandler {
	return queries.NewGetDocumentQueryHandler(c.gormDB)
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncTaskRemovalUoWFactory func() commands.TaskRemovalUoW

func (f FuncTaskRemovalUoWFactory) Create() commands.TaskRemovalUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncDocumentRemovalUoWFactory func() commands.DocumentRemovalUoW

func (f FuncDocumentRemovalUoWFactory) Create() commands.DocumentRemovalUoW {
	return f()
}
