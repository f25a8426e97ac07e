package controllers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"businessghat/internal/delivery/http/helpers"
	"businessghat/internal/domain"
)

// FeedErrorMessage is the only error detail the event feed ever returns to clients.
const FeedErrorMessage = "Failed to fetch Luma events"

type LumaEventsController struct {
	Logger   *slog.Logger
	Service  domain.LumaEventService
	Failures prometheus.Counter // optional
}

func NewLumaEventsController(logger *slog.Logger, svc domain.LumaEventService, failures prometheus.Counter) *LumaEventsController {
	return &LumaEventsController{
		Logger:   logger,
		Service:  svc,
		Failures: failures,
	}
}

// ListEvents godoc
// @Summary List Luma events
// @Description Returns every event of the Luma export, flattened, in export order. Any read or parse failure returns the same generic 500 body.
// @Tags events
// @Produce json
// @Success 200 {array} domain.PublicEvent
// @Failure 500 {object} helpers.ErrorBody "error: Failed to fetch Luma events"
// @Router /events [get]
func (c *LumaEventsController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "Error reading or parsing Luma events", "path", r.URL.Path, "method", r.Method, "err", err)
		if c.Failures != nil {
			c.Failures.Inc()
		}
		helpers.WriteJSON(w, http.StatusInternalServerError, helpers.ErrorBody{Error: FeedErrorMessage})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}
