package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BackupController struct {
	backupService services.BackupServiceInterface
}

func NewBackupController(backupService services.BackupServiceInterface) *BackupController {
	return &BackupController{
		backupService: backupService,
	}
}

// ExportSnapshot godoc
// @Summary Download a full state snapshot
// @Tags Backup
// @Produce json
// @Success 200 {object} db_models.Snapshot
// @Router /admin/backup/export [get]
func (b *BackupController) ExportSnapshot(c *gin.Context) {
	snap := b.backupService.ExportSnapshot()
	c.Header("Content-Disposition", `attachment; filename="voyago-backup-`+snap.Timestamp+`.json"`)
	c.JSON(http.StatusOK, snap)
}

// ImportSnapshot godoc
// @Summary Restore state from an uploaded snapshot
// @Description The request body is the raw snapshot JSON produced by export
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/backup/import [post]
func (b *BackupController) ImportSnapshot(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read request body")
		return
	}

	if err := b.backupService.ImportSnapshot(actor(c), raw); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Backup restored successfully")
}

// ArchiveSnapshot godoc
// @Summary Archive the current state to the database
// @Tags Backup
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/backup/archive [post]
func (b *BackupController) ArchiveSnapshot(c *gin.Context) {
	if err := b.backupService.ArchiveSnapshot(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Snapshot archived successfully")
}

// ListArchives godoc
// @Summary List archived snapshots
// @Tags Backup
// @Produce json
// @Param limit query int false "Max rows to return"
// @Success 200 {object} utils.APIResponse
// @Router /admin/backup/archives [get]
func (b *BackupController) ListArchives(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	archives, err := b.backupService.ListArchives(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, archives, "Archives retrieved successfully")
}

// RestoreLatestArchive godoc
// @Summary Restore state from the newest archived snapshot
// @Tags Backup
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/backup/restore [post]
func (b *BackupController) RestoreLatestArchive(c *gin.Context) {
	if err := b.backupService.RestoreLatestArchive(c.Request.Context(), actor(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Archived snapshot restored successfully")
}
