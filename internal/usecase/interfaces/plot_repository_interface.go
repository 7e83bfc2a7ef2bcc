package interfaces

import (
	"context"

	"plotbook/internal/domain/entities"
)

//go:generate mockgen -source=plot_repository_interface.go -destination=mocks/mock_plot_repository.go -package=mock_interfaces

// IPlotRepository abstracts DynamoDB persistence for Plot inventory.

type IPlotRepository interface {
	Create(ctx context.Context, p entities.Plot) (entities.Plot, error)
	GetByID(ctx context.Context, id string) (entities.Plot, error)
	// UpdateStatus sets the plot's inventory status and booking backref.
	// An empty bookingID clears the backref (release on cancellation).
	UpdateStatus(ctx context.Context, id string, status entities.PlotStatus, bookingID string) (entities.Plot, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Plot, error)
}
