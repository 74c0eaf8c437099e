package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
)

type WorkOrderHandler struct {
	service *service.WorkOrderService
}

func NewWorkOrderHandler(service *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.WorkOrderFilter{
		Search:        strings.TrimSpace(r.URL.Query().Get("q")),
		PriorityLabel: strings.TrimSpace(r.URL.Query().Get("priority")),
		StatusLabel:   strings.TrimSpace(r.URL.Query().Get("status")),
		CategoryLabel: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	orders := h.service.List(filter)
	writeSuccess(w, http.StatusOK, orders, &model.Meta{Total: len(orders)})
}

func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(chi.URLParam(r, "order_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, order, nil)
}

func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateWorkOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.service.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, order, nil)
}

func (h *WorkOrderHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(), nil)
}
