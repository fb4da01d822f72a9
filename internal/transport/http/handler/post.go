package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postline/internal/app"
	"postline/internal/model"
	"postline/internal/transport/http/middleware"
	"postline/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type PostCreateRequest struct {
	Title string `json:"title" binding:"required,max=100"`
	Text  string `json:"text" binding:"required,max=1000"`
}

type PostPatchRequest struct {
	Title *string `json:"title" binding:"omitempty,max=100"`
	Text  *string `json:"text" binding:"omitempty,max=1000"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	authorID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), authorID, req.Title, req.Text)
	if err != nil {
		writeServiceError(c, err, "create post failed")
		return
	}

	response.Created(c, post.Read())
}

func (h *PostHandler) Get(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.Get(postID)
	if err != nil {
		writeServiceError(c, err, "fetch post failed")
		return
	}

	response.OK(c, post.Read())
}

func (h *PostHandler) Patch(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	var req PostPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Patch(actingID, postID, app.PostPatch{
		Title: req.Title,
		Text:  req.Text,
	})
	if err != nil {
		writeServiceError(c, err, "patch post failed")
		return
	}

	response.OK(c, post.Read())
}

func (h *PostHandler) Delete(c *gin.Context) {
	actingID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid post id")
		return
	}

	if err := h.postService.Delete(actingID, postID); err != nil {
		writeServiceError(c, err, "delete post failed")
		return
	}

	response.OK(c, model.StatusMessage{Status: true, Message: "The post has been deleted!"})
}
