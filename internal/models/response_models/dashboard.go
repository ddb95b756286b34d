package response_models

import "voyago/internal/models/db_models"

type DashboardResponse struct {
	TotalPackages  int `json:"total_packages"`
	TotalDrivers   int `json:"total_drivers"`
	TotalBookings  int `json:"total_bookings"`
	TotalBlogPosts int `json:"total_blog_posts"`

	BookingsByStatus map[string]int `json:"bookings_by_status"`
	DriversByStatus  map[string]int `json:"drivers_by_status"`

	TotalRevenue float64 `json:"total_revenue"`
	PaidRevenue  float64 `json:"paid_revenue"`

	RecentBookings []db_models.Booking `json:"recent_bookings"`
}
