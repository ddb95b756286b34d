package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// ListPublishedPosts godoc
// @Summary List published blog posts
// @Tags Blog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /blog [get]
func (b *BlogController) ListPublishedPosts(c *gin.Context) {
	utils.RespondSuccess(c, b.blogService.ListPublishedPosts(), "Posts retrieved successfully")
}

// GetPublishedPost godoc
// @Summary Get a published post by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /blog/{slug} [get]
func (b *BlogController) GetPublishedPost(c *gin.Context) {
	post, err := b.blogService.GetPublishedPostBySlug(c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post retrieved successfully")
}

// ListAllPosts godoc
// @Summary List all posts including drafts
// @Tags Blog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/blog [get]
func (b *BlogController) ListAllPosts(c *gin.Context) {
	utils.RespondSuccess(c, b.blogService.ListAllPosts(), "Posts retrieved successfully")
}

// GetPost godoc
// @Summary Get a post by id
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/blog/{id} [get]
func (b *BlogController) GetPost(c *gin.Context) {
	post, err := b.blogService.GetPostByID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post retrieved successfully")
}

// CreatePost godoc
// @Summary Create a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body db_models.BlogPost true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/blog [post]
func (b *BlogController) CreatePost(c *gin.Context) {
	var post db_models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := b.blogService.CreatePost(actor(c), post)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, "Post created successfully")
}

// UpdatePost godoc
// @Summary Update a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param request body db_models.BlogPost true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/blog/{id} [put]
func (b *BlogController) UpdatePost(c *gin.Context) {
	var post db_models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	post.ID = c.Param("id")

	updated, err := b.blogService.UpdatePost(actor(c), post)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a blog post
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/blog/{id} [delete]
func (b *BlogController) DeletePost(c *gin.Context) {
	if err := b.blogService.DeletePost(actor(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
