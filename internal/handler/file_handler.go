package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/model"
	"smart-life-guard/internal/service"
)

type FileHandler struct {
	service *service.FileService
}

func NewFileHandler(service *service.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.FileFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
		Kind:   strings.TrimSpace(r.URL.Query().Get("kind")),
		Type:   strings.TrimSpace(r.URL.Query().Get("type")),
	}

	files := h.service.List(filter)
	writeSuccess(w, http.StatusOK, files, &model.Meta{Total: len(files)})
}

func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.Get(chi.URLParam(r, "file_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, file, nil)
}

func (h *FileHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.ToggleFavorite(chi.URLParam(r, "file_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, file, nil)
}

func (h *FileHandler) TypeCounts(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.TypeCounts(), nil)
}

func (h *FileHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	folder, err := h.service.CreateFolder(req.Name, req.Owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, folder, nil)
}

func (h *FileHandler) StartUpload(w http.ResponseWriter, r *http.Request) {
	var req model.StartUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	uploadID, err := h.service.StartUpload(req.Name, req.Size, req.Owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusAccepted, map[string]string{"upload_id": uploadID}, nil)
}

func (h *FileHandler) CancelUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelUpload(chi.URLParam(r, "upload_id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "cancelled"}, nil)
}
