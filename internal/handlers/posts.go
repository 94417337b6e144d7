package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"jamiifund/admin/internal/middleware"
	"jamiifund/admin/internal/models"
	"jamiifund/admin/internal/repository"
)

func (h HandlerSet) ListPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list posts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type postRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

func (h HandlerSet) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := "admin"
	if claims, ok := middleware.ClaimsFrom(c); ok {
		author = claims.Name
	}

	post := models.BlogPost{
		ID:        ksuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		Published: req.Published,
	}

	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		h.log.Error().Err(err).Msg("create post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	h.recordActivity(c, "post_created", "Blog post \""+post.Title+"\" created")

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h HandlerSet) UpdatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), models.BlogPost{
		ID:        c.Param("id"),
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Str("post_id", c.Param("id")).Msg("update post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h HandlerSet) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Str("post_id", id).Msg("delete post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
