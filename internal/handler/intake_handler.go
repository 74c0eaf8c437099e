package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/calc"
	"smart-life-guard/internal/model"
)

// IntakeHandler exposes the stock-in intake table.
type IntakeHandler struct {
	table *calc.Table
}

func NewIntakeHandler(table *calc.Table) *IntakeHandler {
	return &IntakeHandler{table: table}
}

func (h *IntakeHandler) List(w http.ResponseWriter, _ *http.Request) {
	rows := h.table.Rows()
	writeSuccess(w, http.StatusOK, map[string]any{
		"rows":        rows,
		"grand_total": h.table.GrandTotal(),
	}, &model.Meta{Total: len(rows)})
}

func (h *IntakeHandler) AddRow(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusCreated, h.table.AddRow(), nil)
}

func (h *IntakeHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	var patch model.IntakeRowPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	row, err := h.table.UpdateRow(chi.URLParam(r, "row_id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, row, nil)
}

func (h *IntakeHandler) RemoveRow(w http.ResponseWriter, r *http.Request) {
	if !h.table.RemoveRow(chi.URLParam(r, "row_id")) {
		writeError(w, model.ErrInvalidInput)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "removed"}, nil)
}
