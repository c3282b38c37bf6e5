package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/configsvc"
	"shipping/internal/adapters/out/events"
	"shipping/internal/adapters/out/facility"
	"shipping/internal/adapters/out/inventory"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	inventory  ports.InventoryGateway
	config     ports.ConfigGateway
	facility   ports.FacilityGateway
	publisher  ports.ShipmentEventPublisher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		inventory:  inventory.NewClient(configs.InventoryServiceURL),
		config:     configsvc.NewClient(configs.ConfigServiceURL),
		facility:   facility.NewClient(configs.FacilityServiceURL),
		publisher:  events.NewSlogPublisher(logger),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePackItemCommandHandler() commands.PackItemCommandHandler {
	return commands.NewPackItemCommandHandler(c.packingUoWFactory(), c.inventory, c.config)
}

func (c *CompositionRoot) CreateUnpackItemCommandHandler() commands.UnpackItemCommandHandler {
	return commands.NewUnpackItemCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateVerifyItemCommandHandler() commands.VerifyItemCommandHandler {
	return commands.NewVerifyItemCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateCancelVerificationCommandHandler() commands.CancelVerificationCommandHandler {
	return commands.NewCancelVerificationCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteShipmentCommandHandler() commands.CompleteShipmentCommandHandler {
	return commands.NewCompleteShipmentCommandHandler(
		c.packingUoWFactory(), c.inventory, c.config, c.facility, c.publisher)
}

func (c *CompositionRoot) CreateRevalidateShipmentsCommandHandler() commands.RevalidateShipmentsCommandHandler {
	return commands.NewRevalidateShipmentsCommandHandler(c.packingUoWFactory(), c.inventory)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentDetailsQueryHandler() queries.GetShipmentDetailsQueryHandler {
	return queries.NewGetShipmentDetailsQueryHandler(c.gormDB, c.facility)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRevalidateShipmentsCommandHandler(), logger)
}

func (c *CompositionRoot) packingUoWFactory() commands.PackingUoWFactory {
	return FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
