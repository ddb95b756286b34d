package controllers

import (
	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Admin dashboard aggregates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	utils.RespondSuccess(c, d.dashboardService.GetDashboard(), "Dashboard retrieved successfully")
}
