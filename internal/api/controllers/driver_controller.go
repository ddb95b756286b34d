package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DriverController struct {
	driverService services.DriverServiceInterface
}

func NewDriverController(driverService services.DriverServiceInterface) *DriverController {
	return &DriverController{
		driverService: driverService,
	}
}

// ListDrivers godoc
// @Summary List taxi drivers
// @Tags Drivers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /drivers [get]
func (d *DriverController) ListDrivers(c *gin.Context) {
	utils.RespondSuccess(c, d.driverService.ListDrivers(), "Drivers retrieved successfully")
}

// GetDriver godoc
// @Summary Get a driver by id
// @Tags Drivers
// @Produce json
// @Param id path string true "Driver id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /drivers/{id} [get]
func (d *DriverController) GetDriver(c *gin.Context) {
	driver, err := d.driverService.GetDriverByID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, driver, "Driver retrieved successfully")
}

// CreateDriver godoc
// @Summary Register a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param request body db_models.Driver true "Driver payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/drivers [post]
func (d *DriverController) CreateDriver(c *gin.Context) {
	var driver db_models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := d.driverService.CreateDriver(actor(c), driver)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Driver created successfully")
}

// UpdateDriver godoc
// @Summary Update a driver profile
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver id"
// @Param request body db_models.Driver true "Driver payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/drivers/{id} [put]
func (d *DriverController) UpdateDriver(c *gin.Context) {
	var driver db_models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	driver.ID = c.Param("id")

	updated, err := d.driverService.UpdateDriver(actor(c), driver)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Driver updated successfully")
}

// UpdateDriverStatus godoc
// @Summary Change a driver's availability status
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver id"
// @Param request body request_models.UpdateDriverStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/drivers/{id}/status [patch]
func (d *DriverController) UpdateDriverStatus(c *gin.Context) {
	var req request_models.UpdateDriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	driver, err := d.driverService.UpdateDriverStatus(actor(c), c.Param("id"), db_models.DriverStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, driver, "Driver status updated successfully")
}

// DeleteDriver godoc
// @Summary Delete a driver
// @Tags Drivers
// @Produce json
// @Param id path string true "Driver id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/drivers/{id} [delete]
func (d *DriverController) DeleteDriver(c *gin.Context) {
	if err := d.driverService.DeleteDriver(actor(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Driver deleted successfully")
}
