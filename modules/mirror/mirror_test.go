package mirror

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return 0o755 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

type fakeEntry struct {
	name string
	dir  bool
}

func (f fakeEntry) Name() string               { return f.name }
func (f fakeEntry) IsDir() bool                { return f.dir }
func (f fakeEntry) Type() fs.FileMode          { return 0 }
func (f fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo{f.name, f.dir}, nil }

// fakeStorage - in-memory Storage with injectable failures
type fakeStorage struct {
	dirs     map[string]bool
	files    map[string][]byte
	entries  []fs.DirEntry
	statErr  error
	writeErr error
	mkdirErr error
	readErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		dirs:  map[string]bool{"/photos": true},
		files: map[string][]byte{},
	}
}

func (f *fakeStorage) Stat(path string) (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	if f.dirs[path] {
		return fakeInfo{filepath.Base(path), true}, nil
	}
	return nil, fs.ErrNotExist
}

func (f *fakeStorage) MkdirAll(path string, perm fs.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	f.dirs[path] = true
	return nil
}

func (f *fakeStorage) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.files[path] = data
	return nil
}

func (f *fakeStorage) ReadDir(path string) ([]fs.DirEntry, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.entries, nil
}

func newTestMirror(st Storage) *Mirror {
	return &Mirror{storage: st}
}

func TestLinkRoot(t *testing.T) {
	st := newFakeStorage()
	m := newTestMirror(st)

	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}
	if m.Root() != "/photos" {
		t.Errorf("Root() = %q, want /photos", m.Root())
	}

	if err := m.LinkRoot("/missing"); !errors.Is(err, ErrRootInvalid) {
		t.Errorf("LinkRoot(missing) error = %v, want %v", err, ErrRootInvalid)
	}

	m.UnlinkRoot()
	if m.Root() != "" {
		t.Errorf("Root() after unlink = %q, want empty", m.Root())
	}
}

func TestSaveWithoutRootIsNoop(t *testing.T) {
	st := newFakeStorage()
	m := newTestMirror(st)

	m.Save("", "a red fox", tinyPNG)

	if len(st.files) != 0 {
		t.Errorf("Save() without root wrote %d files, want 0", len(st.files))
	}
}

func TestSaveWritesUnderRoot(t *testing.T) {
	st := newFakeStorage()
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	m.Save("", "A Red Fox!", tinyPNG)

	if len(st.files) != 1 {
		t.Fatalf("Save() wrote %d files, want 1", len(st.files))
	}
	for path := range st.files {
		if filepath.Dir(path) != "/photos" {
			t.Errorf("file written to %s, want directly under /photos", path)
		}
		name := filepath.Base(path)
		if !strings.HasSuffix(name, "_a_red_fox_.png") {
			t.Errorf("file name = %q, want slugged label with .png suffix", name)
		}
		if strings.ContainsAny(name, ":") {
			t.Errorf("file name %q contains characters unsafe on some filesystems", name)
		}
	}
}

func TestSaveIntoFolderCreatesIt(t *testing.T) {
	st := newFakeStorage()
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	m.Save("portraits", "studio shot", tinyPNG)

	if !st.dirs["/photos/portraits"] {
		t.Error("Save() did not create the folder directory")
	}
	for path := range st.files {
		if filepath.Dir(path) != "/photos/portraits" {
			t.Errorf("file written to %s, want under /photos/portraits", path)
		}
	}
}

func TestSaveSwallowsWriteFailure(t *testing.T) {
	st := newFakeStorage()
	st.writeErr = errors.New("disk full")
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	// Must not panic or surface the error.
	m.Save("", "anything", tinyPNG)
}

func TestSaveSkipsUndecodableImage(t *testing.T) {
	st := newFakeStorage()
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	m.Save("", "broken", "not a data uri")

	if len(st.files) != 0 {
		t.Errorf("Save() wrote %d files for an undecodable image, want 0", len(st.files))
	}
}

func TestScanFolders(t *testing.T) {
	st := newFakeStorage()
	st.entries = []fs.DirEntry{
		fakeEntry{"zebra", true},
		fakeEntry{"notes.txt", false},
		fakeEntry{"alpha", true},
	}
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	got := m.ScanFolders()
	want := []string{"alpha", "zebra"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ScanFolders() = %v, want %v", got, want)
	}
}

func TestScanFoldersFailureYieldsEmpty(t *testing.T) {
	st := newFakeStorage()
	st.readErr = errors.New("permission denied")
	m := newTestMirror(st)
	if err := m.LinkRoot("/photos"); err != nil {
		t.Fatalf("LinkRoot() error = %v", err)
	}

	if got := m.ScanFolders(); len(got) != 0 {
		t.Errorf("ScanFolders() on failure = %v, want empty", got)
	}

	m2 := newTestMirror(newFakeStorage())
	if got := m2.ScanFolders(); len(got) != 0 {
		t.Errorf("ScanFolders() without root = %v, want empty", got)
	}
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	got := fileName(ts, "A Red Fox, at Dawn!")
	want := "2026-03-14T09-26-53-589Z_a_red_fox__at_dawn_"
	if got != want {
		t.Errorf("fileName() = %q, want %q", got, want)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abc ", 20)
	got := slugify(long)
	if len(got) != 30 {
		t.Errorf("slugify() length = %d, want 30", len(got))
	}

	if got := slugify(""); got != "image" {
		t.Errorf("slugify(\"\") = %q, want fallback", got)
	}
}
