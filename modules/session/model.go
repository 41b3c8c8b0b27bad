package session

import (
	"sync"
	"time"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/composer"
)

// Session - the full working state of one studio tab. All mutation goes
// through methods; the mutex makes each transition atomic.
type Session struct {
	mu sync.Mutex

	ID string

	Mode         catalog.Mode
	Instruction  string
	Model        catalog.ImageModel
	PhotoType    string
	VisualEffect string
	AspectRatio  catalog.AspectRatio
	Quality      catalog.ImageQuality
	Settings     catalog.SubjectSettings
	References   []string

	// Generate mode output
	GeneratedImage string

	// Edit mode state: the uploaded source plus the undo/redo stack of
	// edit results. EditIndex is -1 while no image is loaded.
	SourceImage string
	EditStack   []string
	EditIndex   int

	// LastError holds a locale message key, empty when no error is shown.
	LastError string

	busy bool

	CreatedAt  time.Time
	LastActive time.Time
}

// ControlsPatch - partial update of the user-facing controls; nil fields
// are left untouched.
type ControlsPatch struct {
	Instruction  *string                  `json:"instruction,omitempty"`
	Model        *catalog.ImageModel      `json:"model,omitempty"`
	PhotoType    *string                  `json:"photoType,omitempty"`
	VisualEffect *string                  `json:"visualEffect,omitempty"`
	AspectRatio  *catalog.AspectRatio     `json:"aspectRatio,omitempty"`
	Quality      *catalog.ImageQuality    `json:"quality,omitempty"`
	Settings     *catalog.SubjectSettings `json:"settings,omitempty"`
	References   *[]string                `json:"references,omitempty"`
}

// HistorySelection - the state carried by a stored history item, used to
// put the session back where it was when the item was created.
type HistorySelection struct {
	Mode        catalog.Mode
	Instruction string
	Model       catalog.ImageModel
	PhotoType   string
	AspectRatio catalog.AspectRatio
	Quality     catalog.ImageQuality
	Settings    catalog.SubjectSettings
	References  []string
	SourceImage string
	ResultImage string
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Mode:         catalog.ModeGenerate,
		Model:        catalog.ModelImagen,
		PhotoType:    catalog.DefaultPhotoType(),
		VisualEffect: catalog.EffectNone,
		AspectRatio:  catalog.AspectSquare,
		Quality:      catalog.QualityMedium,
		Settings:     catalog.DefaultSubjectSettings(),
		EditIndex:    -1,
		CreatedAt:    now,
		LastActive:   now,
	}
}

func (s *Session) touch() {
	s.LastActive = time.Now()
}

// SetMode - switch between Generate and Edit. Switching is destructive on
// purpose: the two modes do not share output state.
func (s *Session) SetMode(mode catalog.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if mode == s.Mode {
		return
	}

	switch mode {
	case catalog.ModeEdit:
		s.Model = catalog.ModelGeminiFlash
		s.GeneratedImage = ""
		s.LastError = ""
	case catalog.ModeGenerate:
		s.SourceImage = ""
		s.EditStack = nil
		s.EditIndex = -1
		s.GeneratedImage = ""
		s.LastError = ""
		s.Model = catalog.ModelImagen
	default:
		return
	}
	s.Mode = mode
}

// SetSource - load a new source image in Edit mode. Resets the edit stack
// to just the upload.
func (s *Session) SetSource(encoded string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.SourceImage = encoded
	s.EditStack = []string{encoded}
	s.EditIndex = 0
	s.GeneratedImage = ""
	s.LastError = ""
}

// ApplyControls - apply a partial controls update
func (s *Session) ApplyControls(p ControlsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if p.Instruction != nil {
		s.Instruction = *p.Instruction
	}
	if p.Model != nil {
		s.Model = *p.Model
	}
	if p.PhotoType != nil {
		s.PhotoType = *p.PhotoType
	}
	if p.VisualEffect != nil {
		s.VisualEffect = *p.VisualEffect
	}
	if p.AspectRatio != nil && catalog.IsValidAspectRatio(*p.AspectRatio) {
		s.AspectRatio = *p.AspectRatio
	}
	if p.Quality != nil && catalog.IsValidQuality(*p.Quality) {
		s.Quality = *p.Quality
	}
	if p.Settings != nil {
		s.Settings = p.Settings.Clone()
	}
	if p.References != nil {
		s.References = append([]string(nil), (*p.References)...)
	}
}

// ApplyGenerateResult - record a successful Generate call
func (s *Session) ApplyGenerateResult(encoded string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.GeneratedImage = encoded
	s.LastError = ""
}

// ApplyEditResult - record a successful Edit call. Any redo states beyond
// the current index are discarded before the new result is appended.
func (s *Session) ApplyEditResult(encoded string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.EditIndex < 0 {
		s.EditStack = []string{encoded}
		s.EditIndex = 0
	} else {
		s.EditStack = append(s.EditStack[:s.EditIndex+1], encoded)
		s.EditIndex = len(s.EditStack) - 1
	}
	s.LastError = ""
}

// Undo - step back in the edit stack; reports whether anything changed
func (s *Session) Undo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.EditIndex <= 0 {
		return s.currentEditLocked(), false
	}
	s.EditIndex--
	return s.EditStack[s.EditIndex], true
}

// Redo - step forward in the edit stack; reports whether anything changed
func (s *Session) Redo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.EditIndex < 0 || s.EditIndex >= len(s.EditStack)-1 {
		return s.currentEditLocked(), false
	}
	s.EditIndex++
	return s.EditStack[s.EditIndex], true
}

func (s *Session) currentEditLocked() string {
	if s.EditIndex >= 0 && s.EditIndex < len(s.EditStack) {
		return s.EditStack[s.EditIndex]
	}
	return ""
}

// CurrentEdit - the image the next edit operates on
func (s *Session) CurrentEdit() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentEditLocked()
}

// ApplySelection - restore session state from a stored history item. Edit
// items rebuild a two-entry stack (source, result) positioned on the
// result. The visual effect is deliberately left as-is.
func (s *Session) ApplySelection(sel HistorySelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.Mode = sel.Mode
	s.Instruction = sel.Instruction
	s.Model = sel.Model
	s.PhotoType = sel.PhotoType
	s.AspectRatio = sel.AspectRatio
	s.Quality = sel.Quality
	s.Settings = sel.Settings.Clone()
	s.References = append([]string(nil), sel.References...)
	s.LastError = ""

	if sel.Mode == catalog.ModeEdit && sel.SourceImage != "" {
		s.SourceImage = sel.SourceImage
		s.EditStack = []string{sel.SourceImage, sel.ResultImage}
		s.EditIndex = 1
		s.GeneratedImage = ""
	} else {
		s.GeneratedImage = sel.ResultImage
		s.SourceImage = ""
		s.EditStack = nil
		s.EditIndex = -1
	}
}

// TryAcquire - single-flight gate; a second caller is rejected, not queued
func (s *Session) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// Release - end the in-flight operation. Safe to call unconditionally.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Busy - whether an operation is currently in flight
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetError - record a locale message key to surface to the client
func (s *Session) SetError(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = key
}

// StateSnapshot - a consistent copy of the session for serialization
type StateSnapshot struct {
	ID             string                  `json:"id"`
	Mode           catalog.Mode            `json:"mode"`
	Instruction    string                  `json:"instruction"`
	Model          catalog.ImageModel      `json:"model"`
	PhotoType      string                  `json:"photoType"`
	VisualEffect   string                  `json:"visualEffect"`
	AspectRatio    catalog.AspectRatio     `json:"aspectRatio"`
	Quality        catalog.ImageQuality    `json:"quality"`
	Settings       catalog.SubjectSettings `json:"settings"`
	References     []string                `json:"references,omitempty"`
	GeneratedImage string                  `json:"generatedImage,omitempty"`
	SourceImage    string                  `json:"sourceImage,omitempty"`
	CurrentEdit    string                  `json:"currentEdit,omitempty"`
	CanUndo        bool                    `json:"canUndo"`
	CanRedo        bool                    `json:"canRedo"`
	Busy           bool                    `json:"busy"`
	LastError      string                  `json:"lastError,omitempty"`
}

// Snapshot - copy the session state under the lock
func (s *Session) Snapshot() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StateSnapshot{
		ID:             s.ID,
		Mode:           s.Mode,
		Instruction:    s.Instruction,
		Model:          s.Model,
		PhotoType:      s.PhotoType,
		VisualEffect:   s.VisualEffect,
		AspectRatio:    s.AspectRatio,
		Quality:        s.Quality,
		Settings:       s.Settings.Clone(),
		References:     append([]string(nil), s.References...),
		GeneratedImage: s.GeneratedImage,
		SourceImage:    s.SourceImage,
		CurrentEdit:    s.currentEditLocked(),
		CanUndo:        s.EditIndex > 0,
		CanRedo:        s.EditIndex >= 0 && s.EditIndex < len(s.EditStack)-1,
		Busy:           s.busy,
		LastError:      s.LastError,
	}
}

// ComposerInput - snapshot of the fields the prompt composer consumes
func (s *Session) ComposerInput() composer.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	return composer.Input{
		Instruction:  s.Instruction,
		Mode:         s.Mode,
		PhotoType:    s.PhotoType,
		VisualEffect: s.VisualEffect,
		Quality:      s.Quality,
		Settings:     s.Settings.Clone(),
	}
}
