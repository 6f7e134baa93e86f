package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
	"github.com/grupoidi/deptoweb/internal/pkg/helpers"
)

// BlogController exposes the blog and subscription endpoints
type BlogController struct {
	blogService       *services.BlogService
	subscriberService *services.SubscriberService
}

// NewBlogController creates a new blog controller
func NewBlogController(blogService *services.BlogService, subscriberService *services.SubscriberService) *BlogController {
	return &BlogController{
		blogService:       blogService,
		subscriberService: subscriberService,
	}
}

// CreatePost handles POST /blog
func (ctrl *BlogController) CreatePost(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	post, err := ctrl.blogService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, post)
}

// GetPost handles GET /blog/:id
func (ctrl *BlogController) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := ctrl.blogService.GetPost(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, post)
}

// ListPosts handles GET /blog. The public listing hides drafts; admins pass
// todos=true to include them.
func (ctrl *BlogController) ListPosts(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	tag := helpers.QueryString(c, "tag")
	soloPublicados := !helpers.QueryBool(c, "todos", false)

	posts, err := ctrl.blogService.ListPosts(c.Request.Context(), tag, soloPublicados, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, posts, helpers.NewPaginationInfo(offset, limit, len(posts)))
}

// BuscarPosts handles GET /blog/buscar?q=termino
func (ctrl *BlogController) BuscarPosts(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)
	termino := c.Query("q")

	posts, err := ctrl.blogService.BuscarPosts(c.Request.Context(), termino, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, posts, helpers.NewPaginationInfo(offset, limit, len(posts)))
}

// UpdatePost handles PUT /blog/:id
func (ctrl *BlogController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	post, err := ctrl.blogService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, post)
}

// DeletePost handles DELETE /blog/:id
func (ctrl *BlogController) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.blogService.DeletePost(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscribe handles POST /blog/subscribir
func (ctrl *BlogController) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	subscriber, err := ctrl.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, subscriber)
}

// Unsubscribe handles DELETE /blog/subscribir
func (ctrl *BlogController) Unsubscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	if err := ctrl.subscriberService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSubscribers handles GET /blog/subscriptores (admin only)
func (ctrl *BlogController) ListSubscribers(c *gin.Context) {
	offset, limit := helpers.GetPaginationParams(c)

	subscribers, err := ctrl.subscriberService.ListSubscribers(c.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondList(c, subscribers, helpers.NewPaginationInfo(offset, limit, len(subscribers)))
}
