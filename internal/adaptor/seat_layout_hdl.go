package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type SeatLayoutHandler struct {
	service usecase.SeatLayoutService
	log     *zap.Logger
}

func NewSeatLayoutHandler(service usecase.SeatLayoutService, log *zap.Logger) *SeatLayoutHandler {
	return &SeatLayoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat_layout")),
	}
}

// CreateSeatLayout handles POST /api/admin/seat-layouts
func (h *SeatLayoutHandler) CreateSeatLayout(w http.ResponseWriter, r *http.Request) {
	var req request.SeatLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	layout, err := h.service.CreateSeatLayout(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat layout")
		return
	}

	utils.ResponseCreated(w, layout)
}

// GetSeatLayouts handles GET /api/admin/seat-layouts
func (h *SeatLayoutHandler) GetSeatLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := h.service.GetSeatLayouts(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get seat layouts")
		return
	}

	utils.ResponseSuccess(w, layouts)
}
