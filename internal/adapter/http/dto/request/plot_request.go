package request

// PlotCreateRequest registers one unit of inventory in a project.
type PlotCreateRequest struct {
	ProjectID  string  `json:"project_id" binding:"required"`
	PlotNumber string  `json:"plot_number" binding:"required"`
	AreaSqft   float64 `json:"area_sqft"`
	TotalValue float64 `json:"total_value" binding:"required"`
}
