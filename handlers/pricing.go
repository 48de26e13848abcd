package handlers

import (
	"net/http"

	"cabtour/models"
	"cabtour/services/pricing"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves quotes and admin increment changes.
type PricingHandler struct {
	Pricing pricing.PricingService
}

func NewPricingHandler(ps pricing.PricingService) *PricingHandler {
	return &PricingHandler{Pricing: ps}
}

// categoryParam accepts the aliases ParseCabCategory knows and passes
// anything else through for the service to reject.
func categoryParam(raw string) models.CabCategory {
	if cat, ok := models.ParseCabCategory(raw); ok {
		return cat
	}
	return models.CabCategory(raw)
}

// QuoteHandler handles GET /api/quote?category=&from=&to=&city=&hours=.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	filter := models.QuoteFilter{
		Category: categoryParam(c.Query("category")),
		From:     c.Query("from"),
		To:       c.Query("to"),
		City:     c.Query("city"),
		Hours:    c.Query("hours"),
	}
	quotes, err := h.Pricing.Quote(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": filter.Category, "cabs": quotes, "count": len(quotes)})
}

// SetIncrementHandler handles PUT /api/admin/pricing/:category/:id/increment.
func (h *PricingHandler) SetIncrementHandler(c *gin.Context) {
	var req struct {
		IncrementPercent *float64 `json:"incrementPercent" binding:"required"`
		Version          int64    `json:"version" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	quote, err := h.Pricing.SetIncrement(c.Request.Context(), categoryParam(c.Param("category")), c.Param("id"), *req.IncrementPercent, req.Version)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// BulkIncrementHandler handles PUT /api/admin/pricing/:category/bulk-increment.
func (h *PricingHandler) BulkIncrementHandler(c *gin.Context) {
	var req struct {
		IncrementPercent *float64 `json:"incrementPercent" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	category := categoryParam(c.Param("category"))
	n, err := h.Pricing.BulkSetIncrement(c.Request.Context(), category, *req.IncrementPercent)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":         category,
		"incrementPercent": *req.IncrementPercent,
		"modifiedCount":    n,
	})
}

// BoundsHandler handles GET /api/admin/increment-bounds.
func (h *PricingHandler) BoundsHandler(c *gin.Context) {
	b := h.Pricing.Bounds()
	c.JSON(http.StatusOK, gin.H{"min": b.Min, "max": b.Max})
}
