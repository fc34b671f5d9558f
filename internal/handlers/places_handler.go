package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/httpresp"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/places"
)

// ======================================================
// PLACES PROXY (autocomplete + map)
// ======================================================

type PlacesHandler struct {
	places *places.Client
	log    zerolog.Logger
}

func NewPlacesHandler(pc *places.Client, log zerolog.Logger) *PlacesHandler {
	return &PlacesHandler{places: pc, log: log}
}

// Autocomplete debounces per browser session; a failed or superseded
// lookup degrades to an empty list.
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	input := c.Query("input")
	key := c.GetString(middleware.ContextSessionID)

	suggestions, err := h.places.Autocomplete(c.Request.Context(), key, input)
	if err != nil {
		h.log.Warn().Err(err).Msg("autocomplete degraded to empty")
		suggestions = nil
	}
	httpresp.List(c, suggestions)
}

func (h *PlacesHandler) StaticMap(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.Status(http.StatusNoContent)
		return
	}

	img, contentType, err := h.places.StaticMap(c.Request.Context(), address)
	if err != nil {
		h.log.Warn().Err(err).Msg("static map fetch failed")
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, contentType, img)
}
