package studio

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/common/locale"
	"photo-studio-server/modules/gateway"
	"photo-studio-server/modules/history"
	"photo-studio-server/modules/mirror"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes - attach every studio endpoint to the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/studio/state", h.GetState).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/studio/generate", h.Generate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/upscale", h.Upscale).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/mode", h.SetMode).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/source", h.UploadSource).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/controls", h.ApplyControls).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/undo", h.Undo).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/studio/redo", h.Redo).Methods("POST", "OPTIONS")

	r.HandleFunc("/api/history", h.ListHistory).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/history/select", h.SelectHistory).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/history/reorder", h.ReorderHistory).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/history/move", h.MoveToFolder).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/history/import", h.ImportHistory).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/history/{itemId}", h.DeleteHistory).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/api/folders", h.ListFolders).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/folders", h.CreateFolder).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/folders/active", h.SetActiveFolder).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/folders/{folderId}", h.DeleteFolder).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/api/mirror/link", h.LinkMirror).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/mirror/unlink", h.UnlinkMirror).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/mirror/folders", h.ScanMirrorFolders).Methods("GET", "OPTIONS")

	log.Println("✅ Studio routes registered: /api/studio, /api/history, /api/folders, /api/mirror")
}

// requestLang - language from query or body field, defaulting to English
func requestLang(r *http.Request, bodyLang string) locale.Language {
	if q := r.URL.Query().Get("lang"); q != "" {
		return locale.Normalize(q)
	}
	return locale.Normalize(bodyLang)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, lang locale.Language, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBusy):
		status = http.StatusConflict
	case errors.Is(err, ErrNoSource), errors.Is(err, ErrPromptRequired), errors.Is(err, gateway.ErrInvalidImage), errors.Is(err, mirror.ErrRootInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, history.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gateway.ErrNoImage):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   locale.Message(lang, errorKey(err)),
	})
}

func decode[T any](w http.ResponseWriter, r *http.Request, dst *T) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("❌ [Studio] Failed to parse request: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request format",
		})
		return false
	}
	return true
}

func preflight(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// sessionID - from body value or ?session= fallback
func sessionID(r *http.Request, bodyID string) string {
	if bodyID != "" {
		return bodyID
	}
	return r.URL.Query().Get("session")
}

// GetState - current session snapshot
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	id := r.URL.Query().Get("session")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing session parameter"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"state":   h.service.State(id),
	})
}

// Generate - run the current settings through the backend
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req sessionRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	result, err := h.service.Generate(r.Context(), sessionID(r, req.SessionID), lang)
	if err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   result.Image,
		"item":    result.Item,
		"state":   result.State,
	})
}

// Upscale - re-render the current image at high fidelity
func (h *Handler) Upscale(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req sessionRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	result, err := h.service.Upscale(r.Context(), sessionID(r, req.SessionID), lang)
	if err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   result.Image,
		"item":    result.Item,
		"state":   result.State,
	})
}

// SetMode - switch between Generate and Edit
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req modeRequest
	if !decode(w, r, &req) {
		return
	}

	mode := catalog.Mode(req.Mode)
	if mode != catalog.ModeGenerate && mode != catalog.ModeEdit {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown mode"})
		return
	}

	state := h.service.SetMode(sessionID(r, req.SessionID), mode)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

// UploadSource - load a source image for editing
func (h *Handler) UploadSource(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req sourceRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	state, err := h.service.UploadSource(sessionID(r, req.SessionID), req.Image)
	if err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

// ApplyControls - partial controls update
func (h *Handler) ApplyControls(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req controlsRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Controls.References != nil && len(*req.Controls.References) > gateway.MaxReferenceImages {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   locale.Message(requestLang(r, req.Lang), locale.MsgTooManyReferences),
		})
		return
	}

	state := h.service.ApplyControls(sessionID(r, req.SessionID), req.Controls)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

// Undo / Redo

func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req sessionRequest
	if !decode(w, r, &req) {
		return
	}

	state := h.service.Undo(sessionID(r, req.SessionID))
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

func (h *Handler) Redo(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req sessionRequest
	if !decode(w, r, &req) {
		return
	}

	state := h.service.Redo(sessionID(r, req.SessionID))
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

// ListHistory - items under the active folder filter, newest first
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	id := r.URL.Query().Get("session")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"items":        h.service.History().Items(id),
		"activeFolder": h.service.History().ActiveFolder(id),
	})
}

// SelectHistory - restore a stored item into the session
func (h *Handler) SelectHistory(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req itemRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	state, err := h.service.SelectHistory(sessionID(r, req.SessionID), req.ItemID)
	if err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": state})
}

// DeleteHistory - remove one item
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	itemID := mux.Vars(r)["itemId"]
	id := r.URL.Query().Get("session")
	lang := requestLang(r, "")

	if err := h.service.History().Delete(id, itemID); err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ReorderHistory - drag-and-drop reorder
func (h *Handler) ReorderHistory(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req reorderRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	if err := h.service.History().Reorder(sessionID(r, req.SessionID), req.DraggedID, req.TargetID); err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// MoveToFolder - assign an item to a folder (nil folderId = unsorted)
func (h *Handler) MoveToFolder(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req moveRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	if err := h.service.History().MoveToFolder(sessionID(r, req.SessionID), req.ItemID, req.FolderID); err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ImportHistory - replace the session's history with a saved payload
func (h *Handler) ImportHistory(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req importRequest
	if !decode(w, r, &req) {
		return
	}

	items := []history.Item{}
	if len(req.Items) > 0 {
		decoded, err := history.DecodeItems(req.Items)
		if err != nil {
			log.Printf("❌ [Studio] Failed to parse history payload: %v", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid request format",
			})
			return
		}
		items = decoded
	}

	h.service.History().Import(sessionID(r, req.SessionID), items, req.Folders)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"items":   h.service.History().AllItems(sessionID(r, req.SessionID)),
	})
}

// ListFolders - the session's folders
func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	id := r.URL.Query().Get("session")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"folders": h.service.History().Folders(id),
	})
}

// CreateFolder - add a folder; it becomes the active filter
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req folderRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing folder name"})
		return
	}

	folder := h.service.History().CreateFolder(sessionID(r, req.SessionID), req.Name)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "folder": folder})
}

// SetActiveFolder - change the filter; null clears it
func (h *Handler) SetActiveFolder(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req folderIDRequest
	if !decode(w, r, &req) {
		return
	}

	h.service.History().SetActiveFolder(sessionID(r, req.SessionID), req.FolderID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// DeleteFolder - remove a folder; its items return to unsorted
func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	folderID := mux.Vars(r)["folderId"]
	h.service.History().DeleteFolder(r.URL.Query().Get("session"), folderID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// LinkMirror - point the disk mirror at a directory
func (h *Handler) LinkMirror(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req mirrorRootRequest
	if !decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)

	if req.Path == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   locale.Message(lang, locale.MsgMirrorRootMissing),
		})
		return
	}

	if err := h.service.Mirror().LinkRoot(req.Path); err != nil {
		writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"root":    h.service.Mirror().Root(),
		"folders": h.service.Mirror().ScanFolders(),
	})
}

// UnlinkMirror - stop mirroring
func (h *Handler) UnlinkMirror(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	h.service.Mirror().UnlinkRoot()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ScanMirrorFolders - subdirectories of the linked root
func (h *Handler) ScanMirrorFolders(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"folders": h.service.Mirror().ScanFolders(),
	})
}
