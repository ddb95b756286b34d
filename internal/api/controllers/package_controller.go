package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
	}
}

// ListPackages godoc
// @Summary List tour packages
// @Description Returns the catalogue, optionally filtered by category and destination
// @Tags Packages
// @Produce json
// @Param category query string false "Exact category match"
// @Param destination query string false "Destination substring match"
// @Success 200 {object} utils.APIResponse
// @Router /packages [get]
func (p *PackageController) ListPackages(c *gin.Context) {
	packages := p.packageService.ListPackages(
		c.Query("category"),
		c.Query("destination"),
	)
	utils.RespondSuccess(c, packages, "Packages retrieved successfully")
}

// GetPackage godoc
// @Summary Get a package by id
// @Tags Packages
// @Produce json
// @Param id path string true "Package id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /packages/{id} [get]
func (p *PackageController) GetPackage(c *gin.Context) {
	pkg, err := p.packageService.GetPackageByID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package retrieved successfully")
}

// GetPackageBySlug godoc
// @Summary Get a package by slug
// @Tags Packages
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /packages/slug/{slug} [get]
func (p *PackageController) GetPackageBySlug(c *gin.Context) {
	pkg, err := p.packageService.GetPackageBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package retrieved successfully")
}

// CreatePackage godoc
// @Summary Create a tour package
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body db_models.TourPackage true "Package payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/packages [post]
func (p *PackageController) CreatePackage(c *gin.Context) {
	var pkg db_models.TourPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := p.packageService.CreatePackage(actor(c), pkg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Package created successfully")
}

// UpdatePackage godoc
// @Summary Update a tour package
// @Tags Packages
// @Accept json
// @Produce json
// @Param id path string true "Package id"
// @Param request body db_models.TourPackage true "Package payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/packages/{id} [put]
func (p *PackageController) UpdatePackage(c *gin.Context) {
	var pkg db_models.TourPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	pkg.ID = c.Param("id")

	updated, err := p.packageService.UpdatePackage(actor(c), pkg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Package updated successfully")
}

// DeletePackage godoc
// @Summary Delete a tour package
// @Tags Packages
// @Produce json
// @Param id path string true "Package id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/packages/{id} [delete]
func (p *PackageController) DeletePackage(c *gin.Context) {
	if err := p.packageService.DeletePackage(actor(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Package deleted successfully")
}
