package history

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

// ErrItemNotFound - no history item with the given id
var ErrItemNotFound = errors.New("history item not found")

// sessionHistory - one session's items, folders and active filter.
// Items are stored newest-first.
type sessionHistory struct {
	items        []Item
	folders      []Folder
	activeFolder *string
}

// Store - per-session history registry. An optional Snapshotter mirrors
// every change; mirroring is best-effort and never fails an operation.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionHistory
	snap     *Snapshotter
}

func NewStore(snap *Snapshotter) *Store {
	return &Store{
		sessions: make(map[string]*sessionHistory),
		snap:     snap,
	}
}

func (st *Store) session(sessionID string) *sessionHistory {
	h, ok := st.sessions[sessionID]
	if !ok {
		h = &sessionHistory{}
		if st.snap != nil {
			if restored, ok := st.snap.Load(sessionID); ok {
				h.items = restored.Items
				h.folders = restored.Folders
				log.Printf("📦 [History] Restored %d items, %d folders for session %s",
					len(h.items), len(h.folders), sessionID)
			}
		}
		st.sessions[sessionID] = h
	}
	return h
}

func (st *Store) persist(sessionID string, h *sessionHistory) {
	if st.snap == nil {
		return
	}
	st.snap.Save(sessionID, Snapshot{Items: h.items, Folders: h.folders})
}

// Append - add a new item at the front
func (st *Store) Append(sessionID string, item Item) Item {
	st.mu.Lock()
	defer st.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	h := st.session(sessionID)
	h.items = append([]Item{item}, h.items...)
	st.persist(sessionID, h)
	return item
}

// Get - look up one item by id
func (st *Store) Get(sessionID, itemID string) (Item, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	for _, item := range h.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// Delete - remove one item by id
func (st *Store) Delete(sessionID, itemID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	for i, item := range h.items {
		if item.ID == itemID {
			h.items = append(h.items[:i], h.items[i+1:]...)
			st.persist(sessionID, h)
			return nil
		}
	}
	return ErrItemNotFound
}

// Reorder - move the dragged item so it sits immediately before the target
// item. Dropping an item onto itself is a no-op.
func (st *Store) Reorder(sessionID, draggedID, targetID string) error {
	if draggedID == targetID {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	from := -1
	for i, item := range h.items {
		if item.ID == draggedID {
			from = i
			break
		}
	}
	if from < 0 {
		return ErrItemNotFound
	}

	dragged := h.items[from]
	rest := append(append([]Item{}, h.items[:from]...), h.items[from+1:]...)

	to := -1
	for i, item := range rest {
		if item.ID == targetID {
			to = i
			break
		}
	}
	if to < 0 {
		return ErrItemNotFound
	}

	h.items = append(rest[:to], append([]Item{dragged}, rest[to:]...)...)
	st.persist(sessionID, h)
	return nil
}

// MoveToFolder - assign an item to a folder; nil folderID means unsorted.
// An unknown folder id is treated as unsorted rather than rejected.
func (st *Store) MoveToFolder(sessionID, itemID string, folderID *string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	if folderID != nil && !hasFolder(h.folders, *folderID) {
		folderID = nil
	}

	for i := range h.items {
		if h.items[i].ID == itemID {
			h.items[i].FolderID = folderID
			st.persist(sessionID, h)
			return nil
		}
	}
	return ErrItemNotFound
}

// Items - the items visible under the session's active folder filter,
// newest first. A nil active folder shows everything.
func (st *Store) Items(sessionID string) []Item {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	if h.activeFolder == nil {
		return append([]Item(nil), h.items...)
	}

	out := make([]Item, 0, len(h.items))
	for _, item := range h.items {
		if item.FolderID != nil && *item.FolderID == *h.activeFolder {
			out = append(out, item)
		}
	}
	return out
}

// AllItems - every item regardless of the active filter
func (st *Store) AllItems(sessionID string) []Item {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	return append([]Item(nil), h.items...)
}

// Folders - the session's folders in creation order
func (st *Store) Folders(sessionID string) []Folder {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	return append([]Folder(nil), h.folders...)
}

// ActiveFolder - the current filter, nil when showing everything
func (st *Store) ActiveFolder(sessionID string) *string {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.session(sessionID).activeFolder
}

// SetActiveFolder - change the filter; an unknown folder id clears it
func (st *Store) SetActiveFolder(sessionID string, folderID *string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	if folderID != nil && !hasFolder(h.folders, *folderID) {
		folderID = nil
	}
	h.activeFolder = folderID
}

// CreateFolder - add a folder and make it the active filter
func (st *Store) CreateFolder(sessionID, name string) Folder {
	st.mu.Lock()
	defer st.mu.Unlock()

	folder := Folder{
		ID:   uuid.New().String(),
		Name: name,
	}

	h := st.session(sessionID)
	h.folders = append(h.folders, folder)
	h.activeFolder = &folder.ID
	st.persist(sessionID, h)
	return folder
}

// DeleteFolder - remove a folder, returning its items to unsorted. The
// filter falls back to showing everything if it pointed at the folder.
func (st *Store) DeleteFolder(sessionID, folderID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	h := st.session(sessionID)
	for i, f := range h.folders {
		if f.ID == folderID {
			h.folders = append(h.folders[:i], h.folders[i+1:]...)
			break
		}
	}
	for i := range h.items {
		if h.items[i].FolderID != nil && *h.items[i].FolderID == folderID {
			h.items[i].FolderID = nil
		}
	}
	if h.activeFolder != nil && *h.activeFolder == folderID {
		h.activeFolder = nil
	}
	st.persist(sessionID, h)
}

// Import - replace a session's history with externally saved state, run
// through legacy migration first.
func (st *Store) Import(sessionID string, items []Item, folders []Folder) {
	st.mu.Lock()
	defer st.mu.Unlock()

	Migrate(items)

	// Items pointing at folders that no longer exist fall back to unsorted.
	for i := range items {
		if items[i].FolderID != nil && !hasFolder(folders, *items[i].FolderID) {
			items[i].FolderID = nil
		}
	}

	h := st.session(sessionID)
	h.items = items
	h.folders = folders
	h.activeFolder = nil
	st.persist(sessionID, h)
	log.Printf("📥 [History] Imported %d items, %d folders for session %s", len(items), len(folders), sessionID)
}

func hasFolder(folders []Folder, id string) bool {
	for _, f := range folders {
		if f.ID == id {
			return true
		}
	}
	return false
}
