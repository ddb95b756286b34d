package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetSettings godoc
// @Summary Get all settings groups
// @Description Secrets (admin hash, SMTP password, AI key) are blanked in the response
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings [get]
func (s *SettingsController) GetSettings(c *gin.Context) {
	utils.RespondSuccess(c, s.settingsService.GetSettings(), "Settings retrieved successfully")
}

// SaveCompanyProfile godoc
// @Summary Replace the company profile
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body db_models.CompanyProfile true "Company profile"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings/company [put]
func (s *SettingsController) SaveCompanyProfile(c *gin.Context) {
	var profile db_models.CompanyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	s.settingsService.SaveCompanyProfile(actor(c), profile)
	utils.RespondSuccess(c, nil, "Company profile saved successfully")
}

// SaveEmailSettings godoc
// @Summary Replace the SMTP settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body db_models.EmailSettings true "Email settings"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings/email [put]
func (s *SettingsController) SaveEmailSettings(c *gin.Context) {
	var email db_models.EmailSettings
	if err := c.ShouldBindJSON(&email); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	s.settingsService.SaveEmailSettings(actor(c), email)
	utils.RespondSuccess(c, nil, "Email settings saved successfully")
}

// SaveAISettings godoc
// @Summary Replace the AI provider settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body db_models.AISettings true "AI settings"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings/ai [put]
func (s *SettingsController) SaveAISettings(c *gin.Context) {
	var ai db_models.AISettings
	if err := c.ShouldBindJSON(&ai); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	s.settingsService.SaveAISettings(actor(c), ai)
	utils.RespondSuccess(c, nil, "AI settings saved successfully")
}

// SaveSeoSettings godoc
// @Summary Replace the SEO settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body db_models.SeoSettings true "SEO settings"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings/seo [put]
func (s *SettingsController) SaveSeoSettings(c *gin.Context) {
	var seo db_models.SeoSettings
	if err := c.ShouldBindJSON(&seo); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	s.settingsService.SaveSeoSettings(actor(c), seo)
	utils.RespondSuccess(c, nil, "SEO settings saved successfully")
}

// SavePageSettings godoc
// @Summary Replace the site page settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body db_models.PageSettings true "Page settings"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings/pages [put]
func (s *SettingsController) SavePageSettings(c *gin.Context) {
	var pages db_models.PageSettings
	if err := c.ShouldBindJSON(&pages); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	s.settingsService.SavePageSettings(actor(c), pages)
	utils.RespondSuccess(c, nil, "Page settings saved successfully")
}
