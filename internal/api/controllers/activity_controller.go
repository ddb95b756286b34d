package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListActivity godoc
// @Summary List activity log entries, newest first
// @Tags Activity
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Entries per page, max 100"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/activity [get]
func (a *ActivityController) ListActivity(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	entries, err := a.activityService.ListActivity(page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Activity retrieved successfully")
}

// RevertActivity godoc
// @Summary Revert a logged change
// @Description Restores the entity snapshot stored on the entry; each entry can be reverted once
// @Tags Activity
// @Produce json
// @Param id path string true "Activity log entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/activity/{id}/revert [post]
func (a *ActivityController) RevertActivity(c *gin.Context) {
	if err := a.activityService.RevertActivity(actor(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Change reverted successfully")
}
