package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/triplo/pkg/query"
	"github.com/soundprediction/triplo/pkg/server/dto"
)

// QueryHandler handles structured fact queries
type QueryHandler struct {
	adapter *query.Adapter
}

// NewQueryHandler creates a new query handler over the given store
func NewQueryHandler(store query.FactReader) *QueryHandler {
	return &QueryHandler{adapter: query.NewAdapter(store)}
}

// Query handles POST /api/v1/query. The response body is always one of
// the adapter's documents: {"response": [...]} with 200, or
// {"error": ..., "details": ...} with 400.
func (h *QueryHandler) Query(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, query.ErrorResponse{
			Error:   query.ErrInvalidJSON,
			Details: err.Error(),
		})
		return
	}

	var req dto.QueryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, query.ErrorResponse{
			Error:   query.ErrInvalidJSON,
			Details: err.Error(),
		})
		return
	}

	resp, errResp := h.adapter.Process(query.Request{
		QueryType: req.QueryType,
		Subject:   req.Subject,
		Object:    req.Object,
		Relation:  req.Relation,
	})
	if errResp != nil {
		c.JSON(http.StatusBadRequest, errResp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
