package studio

import (
	"context"
	"encoding/json"
	"errors"

	"photo-studio-server/modules/gateway"
	"photo-studio-server/modules/history"
	"photo-studio-server/modules/session"
)

var (
	// ErrBusy - the session already has an operation in flight
	ErrBusy = errors.New("operation already in flight")
	// ErrNoSource - an edit was requested with no image loaded
	ErrNoSource = errors.New("no source image loaded")
	// ErrPromptRequired - Generate mode needs a non-empty instruction
	ErrPromptRequired = errors.New("prompt required")
)

// Backend - the image generation surface the studio drives. Satisfied by
// the gateway service; stubbed in tests.
type Backend interface {
	Generate(ctx context.Context, req *gateway.Request) (*gateway.Result, error)
	Edit(ctx context.Context, req *gateway.Request) (*gateway.Result, error)
}

// OpResult - outcome of a generate, edit or upscale operation
type OpResult struct {
	Image string
	Item  history.Item
	State session.StateSnapshot
}

// Request bodies

type sessionRequest struct {
	SessionID string `json:"sessionId"`
	Lang      string `json:"lang,omitempty"`
}

type modeRequest struct {
	sessionRequest
	Mode string `json:"mode"`
}

type sourceRequest struct {
	sessionRequest
	Image string `json:"image"`
}

type controlsRequest struct {
	sessionRequest
	Controls session.ControlsPatch `json:"controls"`
}

type itemRequest struct {
	sessionRequest
	ItemID string `json:"itemId"`
}

type reorderRequest struct {
	sessionRequest
	DraggedID string `json:"draggedId"`
	TargetID  string `json:"targetId"`
}

type moveRequest struct {
	sessionRequest
	ItemID   string  `json:"itemId"`
	FolderID *string `json:"folderId"`
}

type folderRequest struct {
	sessionRequest
	Name string `json:"name"`
}

type folderIDRequest struct {
	sessionRequest
	FolderID *string `json:"folderId"`
}

// importRequest - items stay raw so legacy field names survive until
// history.DecodeItems has absorbed them.
type importRequest struct {
	sessionRequest
	Items   json.RawMessage  `json:"items"`
	Folders []history.Folder `json:"folders"`
}

type mirrorRootRequest struct {
	sessionRequest
	Path string `json:"path"`
}
