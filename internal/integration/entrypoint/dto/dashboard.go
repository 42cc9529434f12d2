// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/atelier-crm/backend/internal/application/usecase/dashboard"
)

// OverviewBucketResponse represents the items due in one overview period.
type OverviewBucketResponse struct {
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
	Tasks  []TaskResponse  `json:"tasks"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	Today       OverviewBucketResponse `json:"today"`
	Yesterday   OverviewBucketResponse `json:"yesterday"`
	ThisWeek    OverviewBucketResponse `json:"this_week"`
	WeekDisplay string                 `json:"week_display"`
}

// OrderTrendsResponse represents orders created per month.
type OrderTrendsResponse struct {
	Points []dashboard.TrendPoint `json:"points"`
}

// InventoryBreakdownResponse represents stocked quantity per apparel type.
type InventoryBreakdownResponse struct {
	Slices        []dashboard.BreakdownSlice `json:"slices"`
	TotalQuantity int                        `json:"total_quantity"`
}

// ToOverviewBucketResponse converts an overview bucket to its DTO.
func ToOverviewBucketResponse(bucket dashboard.OverviewBucket) OverviewBucketResponse {
	orders := make([]OrderResponse, len(bucket.Orders))
	for i, order := range bucket.Orders {
		orders[i] = ToOrderResponse(order)
	}
	tasks := make([]TaskResponse, len(bucket.Tasks))
	for i, task := range bucket.Tasks {
		tasks[i] = ToTaskResponse(task)
	}
	return OverviewBucketResponse{
		Count:  bucket.Count(),
		Orders: orders,
		Tasks:  tasks,
	}
}

// ToOverviewResponse converts the overview use case output to its DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Today:       ToOverviewBucketResponse(output.Today),
		Yesterday:   ToOverviewBucketResponse(output.Yesterday),
		ThisWeek:    ToOverviewBucketResponse(output.ThisWeek),
		WeekDisplay: output.WeekDisplay,
	}
}
