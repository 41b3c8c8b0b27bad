package mirror

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"photo-studio-server/modules/common/config"
	"photo-studio-server/modules/common/imaging"
)

// ErrRootInvalid - the requested mirror root does not exist or is not a
// directory
var ErrRootInvalid = errors.New("mirror root is not a usable directory")

var slugPattern = regexp.MustCompile(`[^a-z0-9]`)

const slugMaxLen = 30

// Mirror - best-effort disk copy of every produced image. Saving never
// fails the operation that produced the image: without a linked root it is
// a silent no-op, and write errors are logged and swallowed.
type Mirror struct {
	mu      sync.RWMutex
	root    string
	storage Storage

	webp    bool
	quality float32
}

func New(storage Storage) *Mirror {
	cfg := config.GetConfig()
	return &Mirror{
		storage: storage,
		webp:    cfg.MirrorWebP,
		quality: cfg.MirrorQuality,
	}
}

// LinkRoot - point the mirror at a directory. The directory must already
// exist; the mirror never creates its own root.
func (m *Mirror) LinkRoot(path string) error {
	info, err := m.storage.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootInvalid, path)
	}

	m.mu.Lock()
	m.root = path
	m.mu.Unlock()

	log.Printf("🔗 [Mirror] Linked root: %s", path)
	return nil
}

// UnlinkRoot - stop mirroring
func (m *Mirror) UnlinkRoot() {
	m.mu.Lock()
	m.root = ""
	m.mu.Unlock()
	log.Println("🔗 [Mirror] Root unlinked")
}

// Root - the linked directory, empty when mirroring is off
func (m *Mirror) Root() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// ScanFolders - subdirectory names of the linked root, sorted. Any failure
// yields an empty list, never an error.
func (m *Mirror) ScanFolders() []string {
	root := m.Root()
	if root == "" {
		return []string{}
	}

	entries, err := m.storage.ReadDir(root)
	if err != nil {
		log.Printf("⚠️ [Mirror] Folder scan failed: %v", err)
		return []string{}
	}

	folders := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	sort.Strings(folders)
	return folders
}

// Save - write one produced image under the root, optionally inside a
// folder. The encoded image is decoded from its data-URI form first.
func (m *Mirror) Save(folder, label, encoded string) {
	root := m.Root()
	if root == "" {
		return
	}

	blob, err := imaging.Decode(encoded)
	if err != nil {
		log.Printf("⚠️ [Mirror] Skipping save, undecodable image: %v", err)
		return
	}

	data := blob.Data
	ext := ".png"
	if m.webp && blob.MimeType == "image/png" {
		if converted, err := imaging.ConvertPNGToWebP(blob.Data, m.quality); err != nil {
			log.Printf("⚠️ [Mirror] WebP conversion failed, keeping PNG: %v", err)
		} else {
			data = converted
			ext = ".webp"
		}
	}

	dir := root
	if folder != "" {
		dir = filepath.Join(root, folder)
		if err := m.storage.MkdirAll(dir, 0o755); err != nil {
			log.Printf("⚠️ [Mirror] Could not create folder %s: %v", dir, err)
			return
		}
	}

	path := filepath.Join(dir, fileName(time.Now(), label)+ext)
	if err := m.storage.WriteFile(path, data, 0o644); err != nil {
		log.Printf("⚠️ [Mirror] Write failed for %s: %v", path, err)
		return
	}

	log.Printf("💾 [Mirror] Saved %s (%d bytes)", path, len(data))
}

// fileName - "<timestamp>_<slug>", filesystem-safe on every platform
func fileName(now time.Time, label string) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return ts + "_" + slugify(label)
}

func slugify(label string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(label), "_")
	if len(slug) > slugMaxLen {
		slug = slug[:slugMaxLen]
	}
	if slug == "" {
		slug = "image"
	}
	return slug
}
