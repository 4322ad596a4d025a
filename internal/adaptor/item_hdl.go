package adaptor

import (
	"encoding/json"
	"net/http"

	"lostfound-api/internal/data/entity"
	"lostfound-api/internal/dto/request"
	"lostfound-api/internal/dto/response"
	"lostfound-api/internal/usecase"
	"lostfound-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ItemHandler struct {
	service usecase.ItemService
	log     *zap.Logger
}

func NewItemHandler(service usecase.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log,
	}
}

// ReportLost handles POST /lost
func (h *ItemHandler) ReportLost(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, entity.ItemTypeLost)
}

// ReportFound handles POST /found
func (h *ItemHandler) ReportFound(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, entity.ItemTypeFound)
}

func (h *ItemHandler) report(w http.ResponseWriter, r *http.Request, itemType entity.ItemType) {
	var req request.ReportItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Report(r.Context(), itemType, &req); err != nil {
		respondServiceError(w, h.log, err, "report "+string(itemType)+" item")
		return
	}

	utils.ResponseCreated(w, string(itemType)+" item reported successfully", nil)
}

// ListLost handles GET /lost?limit=N
func (h *ItemHandler) ListLost(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, entity.ItemTypeLost)
}

// ListFound handles GET /found?limit=N
func (h *ItemHandler) ListFound(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, entity.ItemTypeFound)
}

func (h *ItemHandler) list(w http.ResponseWriter, r *http.Request, itemType entity.ItemType) {
	// Non-numeric, negative, or absent limits fall back to the default
	limit := utils.ParseInt(r.URL.Query().Get("limit"), usecase.DefaultListLimit)

	items, err := h.service.ListActive(r.Context(), itemType, limit)
	if err != nil {
		respondServiceError(w, h.log, err, "list "+string(itemType)+" items")
		return
	}

	utils.ResponseSuccess(w, string(itemType)+" items retrieved", items)
}

// StatsLost handles GET /stats/lost
func (h *ItemHandler) StatsLost(w http.ResponseWriter, r *http.Request) {
	h.stats(w, r, entity.ItemTypeLost)
}

// StatsFound handles GET /stats/found
func (h *ItemHandler) StatsFound(w http.ResponseWriter, r *http.Request) {
	h.stats(w, r, entity.ItemTypeFound)
}

func (h *ItemHandler) stats(w http.ResponseWriter, r *http.Request, itemType entity.ItemType) {
	count, err := h.service.CountActive(r.Context(), itemType)
	if err != nil {
		respondServiceError(w, h.log, err, "count "+string(itemType)+" items")
		return
	}

	utils.ResponseSuccess(w, string(itemType)+" stats retrieved", response.CountResponse{Count: count})
}

// StatsMyReported handles GET /stats/myreported/{userID}
func (h *ItemHandler) StatsMyReported(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	count, err := h.service.CountReportedBy(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "count reported items")
		return
	}

	utils.ResponseSuccess(w, "Reported stats retrieved", response.CountResponse{Count: count})
}
