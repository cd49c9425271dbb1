// internal/api/draw_handlers.go
// Draw generation HTTP handlers

package api

import (
	"net/http"

	"drawbracket/internal/draw"
	"drawbracket/internal/services"
	"drawbracket/internal/utils"

	"github.com/gin-gonic/gin"
)

// HandleGenerateDraw runs the draw engine for the posted request. An
// Idempotency-Key header, if present, makes retried requests replay the
// original response instead of generating a second draw.
func HandleGenerateDraw(drawService *services.DrawService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req draw.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		if err := utils.ValidateSportName(req.Context.Sport); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		idempotencyKey := c.GetHeader("Idempotency-Key")

		drawSeed, resp, err := drawService.Generate(c.Request.Context(), idempotencyKey, req)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if de, ok := err.(*draw.Error); ok && de.Kind == draw.KindInternalInvariantViolation {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"draw_seed": drawSeed,
			"response":  resp,
		})
	}
}

// HandleGetDraw retrieves a previously generated draw by its seed.
func HandleGetDraw(drawService *services.DrawService) gin.HandlerFunc {
	return func(c *gin.Context) {
		drawSeed := c.Param("seed")

		resp, err := drawService.GetBySeed(c.Request.Context(), drawSeed)
		if err != nil {
			if err == services.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draw"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"draw_seed": drawSeed,
			"response":  resp,
		})
	}
}
