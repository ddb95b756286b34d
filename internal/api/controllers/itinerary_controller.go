package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day trip plan
// @Description The request_token is echoed back so clients can discard responses from superseded requests
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// EnrichPackage godoc
// @Summary Fill a package's content sections with generated text
// @Description Sections the model returns empty keep their current content
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.EnrichPackageRequest true "Package to enrich"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/ai/enrich [post]
func (i *ItineraryController) EnrichPackage(c *gin.Context) {
	var req request_models.EnrichPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := i.itineraryService.EnrichPackage(c.Request.Context(), actor(c), req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package enriched successfully")
}

// GenerateBlogFAQ godoc
// @Summary Generate an FAQ section for a blog topic
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.BlogFAQRequest true "Blog topic"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/ai/blog-faq [post]
func (i *ItineraryController) GenerateBlogFAQ(c *gin.Context) {
	var req request_models.BlogFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	faq, err := i.itineraryService.GenerateBlogFAQ(c.Request.Context(), req.Topic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, faq, "FAQ generated successfully")
}
