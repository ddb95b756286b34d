package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Login successful")
}

// ChangePassword godoc
// @Summary Change the admin password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/auth/change-password [post]
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ChangePassword(actor(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password changed successfully")
}

// RequestPasswordReset godoc
// @Summary Request a password reset email
// @Description Always responds with success so the endpoint cannot be used to probe for the admin address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestPasswordResetRequest true "Admin email"
// @Success 200 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) RequestPasswordReset(c *gin.Context) {
	var req request_models.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ConfirmPasswordReset godoc
// @Summary Set a new password using a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ConfirmPasswordResetRequest true "Reset token and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (a *AuthController) ConfirmPasswordReset(c *gin.Context) {
	var req request_models.ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ConfirmPasswordReset(req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Password reset successfully")
}
