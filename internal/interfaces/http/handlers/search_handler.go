package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/pkg/errors"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

// SearchRunner runs one full patent search.  The discovery pipeline is the
// production implementation.
type SearchRunner interface {
	Run(ctx context.Context, req report.SearchRequest) (*report.SearchReport, error)
}

// SearchHandler serves the search endpoint.
type SearchHandler struct {
	runner SearchRunner
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(runner SearchRunner) *SearchHandler {
	return &SearchHandler{runner: runner}
}

// Search handles POST /api/v1/search.  The response is synchronous: the
// connection stays open for the full pipeline run, which takes minutes.
func (h *SearchHandler) Search(c *gin.Context) {
	var req report.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidParam("request body must be JSON with nome_molecula").WithCause(err))
		return
	}

	rep, err := h.runner.Run(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}
