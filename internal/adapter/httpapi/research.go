package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"logix-research/internal/domain/model"
)

// statusClientClosedRequest is reported when the caller goes away before
// the pipeline finishes.
const statusClientClosedRequest = 499

func (h *Handler) research(c *gin.Context) {
	var req model.ResearchQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "malformed research body", "error", err)
		abortDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if req.Query == nil {
		abortDetail(c, http.StatusUnprocessableEntity, "field required: query")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	matches, err := h.researcher.Run(ctx, *req.Query)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			abortDetail(c, http.StatusGatewayTimeout, "research query timed out")
		case errors.Is(err, context.Canceled):
			abortDetail(c, statusClientClosedRequest, "request canceled")
		default:
			abortDetail(c, http.StatusInternalServerError, "research query failed")
		}
		return
	}

	c.JSON(http.StatusOK, model.NewResearchResult(matches))
}
