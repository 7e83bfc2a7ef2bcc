package response

import (
	"time"

	"plotbook/internal/domain/entities"
)

type PlotResponse struct {
	PlotID     string    `json:"plot_id"`
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	PlotNumber string    `json:"plot_number"`
	AreaSqft   float64   `json:"area_sqft,omitempty"`
	TotalValue float64   `json:"total_value"`
	Status     string    `json:"status"`
	BookingID  string    `json:"booking_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromPlot(p entities.Plot) PlotResponse {
	return PlotResponse{
		PlotID:     p.ID,
		ID:         p.ID,
		ProjectID:  p.ProjectID,
		PlotNumber: p.PlotNumber,
		AreaSqft:   p.AreaSqft,
		TotalValue: p.TotalValue,
		Status:     string(p.Status),
		BookingID:  p.BookingID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromPlots(plots []entities.Plot) []PlotResponse {
	out := make([]PlotResponse, 0, len(plots))
	for _, p := range plots {
		out = append(out, FromPlot(p))
	}
	return out
}
