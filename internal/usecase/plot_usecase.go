package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plotbook/internal/domain/entities"
	"plotbook/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPlotInput = errors.New("invalid plot input")

// IPlotUseCase manages plot inventory. Status transitions between
// Available and Booked happen through the booking lifecycle, not here.

type IPlotUseCase interface {
	Create(ctx context.Context, projectID, plotNumber string, areaSqft, totalValue float64) (entities.Plot, error)
	GetByID(ctx context.Context, id string) (entities.Plot, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Plot, error)
}

type PlotUseCase struct {
	repo interfaces.IPlotRepository
}

var _ IPlotUseCase = (*PlotUseCase)(nil)

func NewPlotUseCase(repo interfaces.IPlotRepository) *PlotUseCase {
	return &PlotUseCase{repo: repo}
}

func (u *PlotUseCase) Create(ctx context.Context, projectID, plotNumber string, areaSqft, totalValue float64) (entities.Plot, error) {
	projectID = strings.TrimSpace(projectID)
	plotNumber = strings.TrimSpace(plotNumber)
	if projectID == "" || plotNumber == "" || totalValue <= 0 {
		return entities.Plot{}, ErrInvalidPlotInput
	}

	now := time.Now().UTC()
	p := entities.Plot{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		PlotNumber: plotNumber,
		AreaSqft:   areaSqft,
		TotalValue: totalValue,
		Status:     entities.PlotStatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Plot{}, err
	}
	log.Printf("[plot][usecase] created plot_id=%s project_id=%s value=%.2f", created.ID, created.ProjectID, created.TotalValue)
	return created, nil
}

func (u *PlotUseCase) GetByID(ctx context.Context, id string) (entities.Plot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plot{}, ErrInvalidPlotInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Plot{}, err
	}
	if p.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	return p, nil
}

func (u *PlotUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Plot, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidPlotInput
	}
	return u.repo.ListByProjectID(ctx, projectID)
}
