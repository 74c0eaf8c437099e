package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.UserFilter{
		Search:      strings.TrimSpace(r.URL.Query().Get("q")),
		Role:        strings.TrimSpace(r.URL.Query().Get("role")),
		StatusLabel: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	users := h.service.List(filter)
	writeSuccess(w, http.StatusOK, users, &model.Meta{Total: len(users)})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, user, nil)
}

func (h *UserHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Stats(), nil)
}

func (h *UserHandler) Roles(w http.ResponseWriter, _ *http.Request) {
	roles := h.service.Roles()
	writeSuccess(w, http.StatusOK, roles, &model.Meta{Total: len(roles)})
}

func (h *UserHandler) OperationLogs(w http.ResponseWriter, _ *http.Request) {
	logs := h.service.OperationLogs()
	writeSuccess(w, http.StatusOK, logs, &model.Meta{Total: len(logs)})
}
