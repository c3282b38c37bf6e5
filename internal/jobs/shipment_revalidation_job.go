package jobs

import (
	"context"
	"errors"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ShipmentRevalidationJob manages the scheduled revalidation of open shipments.
// Runs every minute to re-check packed units against the inventory authority
// and flag units that went bad since packing.
type ShipmentRevalidationJob struct {
	handler commands.RevalidateShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentRevalidationJob creates a new job for revalidating open shipments.
// Uses RevalidateShipmentsCommandHandler to run the sweep every minute.
func NewShipmentRevalidationJob(
	handler commands.RevalidateShipmentsCommandHandler,
	logger *slog.Logger,
) *ShipmentRevalidationJob {
	return &ShipmentRevalidationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "shipment_revalidation_job"),
	}
}

// Start begins the revalidation job to run every minute.
func (j *ShipmentRevalidationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRevalidateShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			switch {
			case errors.Is(err, commands.ErrNoOpenShipments):
				// Expected business scenario, nothing to sweep.
			case errors.Is(err, ports.ErrInventoryServiceUnavailable):
				j.logger.WarnContext(ctx, "Shipment revalidation skipped, inventory service unavailable")
			default:
				j.logger.ErrorContext(ctx, "Shipment revalidation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment revalidation job started (running every minute)")
	return nil
}

// Stop stops the revalidation job.
func (j *ShipmentRevalidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment revalidation job stopped")
}
