package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/triplo/pkg/factstore"
	"github.com/soundprediction/triplo/pkg/server/dto"
)

// FactsHandler serves the stored fact list and store statistics
type FactsHandler struct {
	store *factstore.Store
}

// NewFactsHandler creates a new facts handler
func NewFactsHandler(store *factstore.Store) *FactsHandler {
	return &FactsHandler{store: store}
}

// ListFacts handles GET /api/v1/facts
func (h *FactsHandler) ListFacts(c *gin.Context) {
	facts := h.store.ListFacts()
	c.JSON(http.StatusOK, dto.FactsResponse{
		Facts: facts,
		Total: len(facts),
	})
}

// Stats handles GET /api/v1/stats
func (h *FactsHandler) Stats(c *gin.Context) {
	stats := h.store.Stats()
	c.JSON(http.StatusOK, dto.StatsResponse{
		Facts:     stats.FactCount,
		Nodes:     stats.NodeCount,
		Relations: stats.RelationCount,
	})
}
