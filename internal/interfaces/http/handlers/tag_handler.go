package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FinNote-Intelligence/internal/application/tagging"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/notexml"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// TagHandler serves the entity tagging endpoints.
type TagHandler struct {
	service tagging.Service
}

// NewTagHandler creates a TagHandler backed by the given service.
func NewTagHandler(service tagging.Service) *TagHandler {
	return &TagHandler{service: service}
}

// TagTextRequest is the body of POST /api/v1/tag.
type TagTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// TagText extracts and resolves entity spans in a single unit of text and
// returns the spans plus the segmented form.
func (h *TagHandler) TagText(c *gin.Context) {
	var req TagTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	result, err := h.service.TagText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TagNote accepts a note XML document, tags it, and responds with the
// taxonomy-tagged XML. Run metadata is carried in response headers.
func (h *TagHandler) TagNote(c *gin.Context) {
	n, err := notexml.ReadNote(c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.TagNote(c.Request.Context(), n)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Run-ID", result.RunID)
	c.Header("X-Extraction-Mode", string(result.Mode))
	c.Status(http.StatusOK)
	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := notexml.WriteNote(c.Writer, result.Tagged); err != nil {
		// Headers already sent; nothing to recover here.
		_ = c.Error(err)
	}
}
