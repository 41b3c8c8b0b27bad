package studio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/common/imaging"
	"photo-studio-server/modules/common/locale"
	"photo-studio-server/modules/composer"
	"photo-studio-server/modules/events"
	"photo-studio-server/modules/gateway"
	"photo-studio-server/modules/history"
	"photo-studio-server/modules/mirror"
	"photo-studio-server/modules/session"
)

// Service - ties the session state machine, prompt composer, generation
// backend, history store and disk mirror together. One instance serves
// every session.
type Service struct {
	sessions *session.Store
	history  *history.Store
	backend  Backend
	mirror   *mirror.Mirror
	hub      *events.Hub
}

func NewService(sessions *session.Store, hist *history.Store, backend Backend, m *mirror.Mirror, hub *events.Hub) *Service {
	return &Service{
		sessions: sessions,
		history:  hist,
		backend:  backend,
		mirror:   m,
		hub:      hub,
	}
}

// Generate - run the session's current settings through the composer and
// the backend, then record the result. Rejects with ErrBusy if the
// session already has a call in flight.
func (s *Service) Generate(ctx context.Context, sessionID string, lang locale.Language) (*OpResult, error) {
	sess := s.sessions.GetOrCreate(sessionID)
	if !sess.TryAcquire() {
		return nil, ErrBusy
	}
	defer sess.Release()
	defer s.publishBusy(sessionID, false)
	s.publishBusy(sessionID, true)

	sess.SetError("")
	snap := sess.Snapshot()

	// An empty instruction only makes sense against a source image.
	if snap.Mode == catalog.ModeGenerate && strings.TrimSpace(snap.Instruction) == "" {
		s.failSession(sessionID, sess, lang, ErrPromptRequired)
		return nil, ErrPromptRequired
	}

	prompt := composer.Compose(sess.ComposerInput())

	log.Printf("🎨 [Studio] %s request for session %s (model: %s)", snap.Mode, sessionID, snap.Model)

	var (
		result *gateway.Result
		err    error
	)
	if snap.Mode == catalog.ModeEdit {
		source := sess.CurrentEdit()
		if source == "" {
			s.failSession(sessionID, sess, lang, ErrNoSource)
			return nil, ErrNoSource
		}
		result, err = s.backend.Edit(ctx, &gateway.Request{
			Prompt:      prompt,
			Model:       snap.Model,
			AspectRatio: snap.AspectRatio,
			SourceImage: source,
			References:  snap.References,
		})
	} else {
		result, err = s.backend.Generate(ctx, &gateway.Request{
			Prompt:      prompt,
			Model:       snap.Model,
			AspectRatio: snap.AspectRatio,
			References:  snap.References,
		})
	}
	if err != nil {
		s.failSession(sessionID, sess, lang, err)
		return nil, err
	}

	if snap.Mode == catalog.ModeEdit {
		sess.ApplyEditResult(result.Image)
	} else {
		sess.ApplyGenerateResult(result.Image)
	}

	sourceImage := ""
	if snap.Mode == catalog.ModeEdit {
		sourceImage = snap.CurrentEdit
		if sourceImage == "" {
			sourceImage = snap.SourceImage
		}
	}
	item := s.recordHistory(sessionID, snap, snap.PhotoType, snap.Quality, snap.Instruction, sourceImage, result.Image)
	s.mirrorResult(sessionID, item)

	s.hub.Publish(events.Event{
		Type:      events.EventResult,
		SessionID: sessionID,
		Image:     result.Image,
	})

	return &OpResult{
		Image: result.Image,
		Item:  item,
		State: sess.Snapshot(),
	}, nil
}

// Upscale - re-render the current image at high fidelity with a fixed
// instruction; the session's own settings are left out on purpose.
func (s *Service) Upscale(ctx context.Context, sessionID string, lang locale.Language) (*OpResult, error) {
	sess := s.sessions.GetOrCreate(sessionID)
	if !sess.TryAcquire() {
		return nil, ErrBusy
	}
	defer sess.Release()
	defer s.publishBusy(sessionID, false)
	s.publishBusy(sessionID, true)

	sess.SetError("")
	snap := sess.Snapshot()

	source := snap.CurrentEdit
	if source == "" {
		source = snap.GeneratedImage
	}
	if source == "" {
		s.failSession(sessionID, sess, lang, ErrNoSource)
		return nil, ErrNoSource
	}

	log.Printf("🔍 [Studio] Upscale request for session %s", sessionID)

	// Fixed instruction, no ratio: the model re-renders the image as-is.
	result, err := s.backend.Edit(ctx, &gateway.Request{
		Prompt:      composer.UpscalePrompt,
		Model:       catalog.ModelGeminiFlash,
		SourceImage: source,
	})
	if err != nil {
		s.failSession(sessionID, sess, lang, err)
		return nil, err
	}

	if snap.Mode == catalog.ModeEdit {
		sess.ApplyEditResult(result.Image)
	} else {
		sess.ApplyGenerateResult(result.Image)
	}

	upscaleSnap := snap
	upscaleSnap.Model = catalog.ModelGeminiFlash
	item := s.recordHistory(sessionID, upscaleSnap, "Upscaled", catalog.QualityHigh, composer.UpscalePrompt, source, result.Image)
	s.mirrorResult(sessionID, item)

	s.hub.Publish(events.Event{
		Type:      events.EventResult,
		SessionID: sessionID,
		Image:     result.Image,
	})

	return &OpResult{
		Image: result.Image,
		Item:  item,
		State: sess.Snapshot(),
	}, nil
}

// SetMode - switch the session between Generate and Edit
func (s *Service) SetMode(sessionID string, mode catalog.Mode) session.StateSnapshot {
	sess := s.sessions.GetOrCreate(sessionID)
	sess.SetMode(mode)
	return sess.Snapshot()
}

// UploadSource - load a new source image for editing
func (s *Service) UploadSource(sessionID, encoded string) (session.StateSnapshot, error) {
	sess := s.sessions.GetOrCreate(sessionID)
	if !imaging.IsEncoded(encoded) {
		return sess.Snapshot(), fmt.Errorf("%w: source upload", gateway.ErrInvalidImage)
	}

	sess.SetMode(catalog.ModeEdit)
	sess.SetSource(encoded)
	return sess.Snapshot(), nil
}

// ApplyControls - partial update of the session's controls
func (s *Service) ApplyControls(sessionID string, patch session.ControlsPatch) session.StateSnapshot {
	sess := s.sessions.GetOrCreate(sessionID)
	sess.ApplyControls(patch)
	return sess.Snapshot()
}

// Undo / Redo - step through the edit stack
func (s *Service) Undo(sessionID string) session.StateSnapshot {
	sess := s.sessions.GetOrCreate(sessionID)
	sess.Undo()
	return sess.Snapshot()
}

func (s *Service) Redo(sessionID string) session.StateSnapshot {
	sess := s.sessions.GetOrCreate(sessionID)
	sess.Redo()
	return sess.Snapshot()
}

// SelectHistory - restore the session to the state a history item captured
func (s *Service) SelectHistory(sessionID, itemID string) (session.StateSnapshot, error) {
	sess := s.sessions.GetOrCreate(sessionID)

	item, err := s.history.Get(sessionID, itemID)
	if err != nil {
		return sess.Snapshot(), err
	}

	sess.ApplySelection(session.HistorySelection{
		Mode:        item.Mode,
		Instruction: item.Instruction,
		Model:       item.Model,
		PhotoType:   item.PhotoType,
		AspectRatio: item.AspectRatio,
		Quality:     item.Quality,
		Settings:    item.Settings,
		References:  item.References,
		SourceImage: item.SourceImage,
		ResultImage: item.ResultImage,
	})
	return sess.Snapshot(), nil
}

// State - current session snapshot
func (s *Service) State(sessionID string) session.StateSnapshot {
	return s.sessions.GetOrCreate(sessionID).Snapshot()
}

// History - the store, exposed for the handler's passthrough endpoints
func (s *Service) History() *history.Store {
	return s.history
}

// Mirror - the disk mirror, exposed for the handler's endpoints
func (s *Service) Mirror() *mirror.Mirror {
	return s.mirror
}

// recordHistory - append a history item built from a state snapshot. New
// items land in the session's active folder.
func (s *Service) recordHistory(sessionID string, snap session.StateSnapshot, photoType string, quality catalog.ImageQuality, instruction, sourceImage, resultImage string) history.Item {
	return s.history.Append(sessionID, history.Item{
		Timestamp:    time.Now(),
		Mode:         snap.Mode,
		Instruction:  instruction,
		PhotoType:    photoType,
		VisualEffect: snap.VisualEffect,
		Quality:      quality,
		Model:        snap.Model,
		AspectRatio:  snap.AspectRatio,
		Settings:     snap.Settings,
		References:   snap.References,
		SourceImage:  sourceImage,
		FolderID:     s.history.ActiveFolder(sessionID),
		ResultImage:  resultImage,
	})
}

// mirrorResult - fire-and-forget disk copy; failures stay inside the mirror
func (s *Service) mirrorResult(sessionID string, item history.Item) {
	folder := ""
	if item.FolderID != nil {
		for _, f := range s.history.Folders(sessionID) {
			if f.ID == *item.FolderID {
				folder = f.Name
				break
			}
		}
	}

	label := item.Instruction
	if label == "" {
		label = item.PhotoType
	}

	go s.mirror.Save(folder, label, item.ResultImage)
}

func (s *Service) failSession(sessionID string, sess *session.Session, lang locale.Language, err error) {
	key := errorKey(err)
	sess.SetError(key)

	s.hub.Publish(events.Event{
		Type:      events.EventError,
		SessionID: sessionID,
		Message:   locale.Message(lang, key),
	})

	log.Printf("❌ [Studio] Operation failed for session %s: %v", sessionID, err)
}

func (s *Service) publishBusy(sessionID string, busy bool) {
	s.hub.Publish(events.Event{
		Type:      events.EventBusy,
		SessionID: sessionID,
		Busy:      busy,
	})
}

// errorKey - map an operation error onto the locale key shown to the user
func errorKey(err error) string {
	switch {
	case errors.Is(err, ErrBusy):
		return locale.MsgBusy
	case errors.Is(err, ErrNoSource):
		return locale.MsgNoSourceImage
	case errors.Is(err, ErrPromptRequired):
		return locale.MsgPromptRequired
	case errors.Is(err, gateway.ErrInvalidImage):
		return locale.MsgInvalidImage
	case errors.Is(err, gateway.ErrNoImage):
		return locale.MsgNoImageProduced
	case errors.Is(err, history.ErrItemNotFound):
		return locale.MsgHistoryItemMissing
	case errors.Is(err, mirror.ErrRootInvalid):
		return locale.MsgMirrorRootInvalid
	default:
		return locale.MsgUnexpected
	}
}
