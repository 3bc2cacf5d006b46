package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

const maxUploadSize = 20 << 20

// UploadMedia stores an admin-supplied file and returns its storage name and
// public URL. The storage decides the remote folder from the file extension.
func (a *App) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "file field is required")
		return
	}
	defer file.Close()

	name, err := a.Store.Save(r.Context(), header.Filename, file)
	if err != nil {
		a.error(w, http.StatusBadGateway, "storage_failure", "failed to store file")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"name": name,
		"url":  a.Store.URL(name),
	})
}

type deleteMediaRequest struct {
	Name string `json:"name"`
}

// DeleteMedia removes a stored file. Deletion is best effort: the response
// reports whether the backend confirmed removal.
func (a *App) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	var req deleteMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "invalid_input", "name is required")
		return
	}
	deleted := a.Store.Delete(r.Context(), req.Name)
	a.json(w, http.StatusOK, map[string]any{
		"name":    req.Name,
		"deleted": deleted,
	})
}
