package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// SuggestPackages godoc
// @Summary Suggest packages matching a free-text query
// @Description Vector similarity search over package embeddings; requires the archive database
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.SuggestPackagesRequest true "Search query"
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /packages/suggest [post]
func (r *RecommendController) SuggestPackages(c *gin.Context) {
	var req request_models.SuggestPackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	packages, err := r.recommendService.SuggestPackages(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packages, "Suggestions retrieved successfully")
}

// ReindexPackages godoc
// @Summary Rebuild the package embedding index
// @Tags AI
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/ai/reindex [post]
func (r *RecommendController) ReindexPackages(c *gin.Context) {
	indexed, err := r.recommendService.ReindexAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"indexed": indexed}, "Package index rebuilt successfully")
}
