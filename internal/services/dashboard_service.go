package services

import (
	"voyago/internal/models/response_models"
	"voyago/internal/store"
)

type DashboardServiceInterface interface {
	GetDashboard() response_models.DashboardResponse
}

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(s *store.Store) DashboardServiceInterface {
	return &DashboardService{store: s}
}

const recentBookingLimit = 5

// GetDashboard aggregates counts, revenue and recent activity for the admin
// landing page. Everything is computed on the fly; collections are small.
func (d *DashboardService) GetDashboard() response_models.DashboardResponse {
	bookings := d.store.Bookings.List()
	drivers := d.store.Drivers.List()

	resp := response_models.DashboardResponse{
		TotalPackages:    d.store.Packages.Len(),
		TotalDrivers:     len(drivers),
		TotalBookings:    len(bookings),
		TotalBlogPosts:   d.store.BlogPosts.Len(),
		BookingsByStatus: make(map[string]int),
		DriversByStatus:  make(map[string]int),
	}

	for _, b := range bookings {
		resp.BookingsByStatus[string(b.Status)]++
		resp.TotalRevenue += b.TotalAmount
		if b.Paid {
			resp.PaidRevenue += b.TotalAmount
		}
	}

	for _, drv := range drivers {
		resp.DriversByStatus[string(drv.Status)]++
	}

	// Bookings are stored newest first, so the head is already recent.
	limit := recentBookingLimit
	if limit > len(bookings) {
		limit = len(bookings)
	}
	resp.RecentBookings = bookings[:limit]

	return resp
}
