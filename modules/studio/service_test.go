package studio

import (
	"context"
	"errors"
	"sync"
	"testing"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/common/config"
	"photo-studio-server/modules/common/locale"
	"photo-studio-server/modules/composer"
	"photo-studio-server/modules/events"
	"photo-studio-server/modules/gateway"
	"photo-studio-server/modules/history"
	"photo-studio-server/modules/mirror"
	"photo-studio-server/modules/session"
)

const testImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// stubBackend - records requests and answers from canned results
type stubBackend struct {
	mu       sync.Mutex
	requests []*gateway.Request
	edits    []*gateway.Request
	result   *gateway.Result
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (b *stubBackend) answer(req *gateway.Request) (*gateway.Result, error) {
	if b.started != nil {
		b.started <- struct{}{}
	}
	if b.release != nil {
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

func (b *stubBackend) Generate(ctx context.Context, req *gateway.Request) (*gateway.Result, error) {
	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.mu.Unlock()
	return b.answer(req)
}

func (b *stubBackend) Edit(ctx context.Context, req *gateway.Request) (*gateway.Result, error) {
	b.mu.Lock()
	b.edits = append(b.edits, req)
	b.mu.Unlock()
	return b.answer(req)
}

func okBackend() *stubBackend {
	return &stubBackend{result: &gateway.Result{Image: testImage, MimeType: "image/png"}}
}

func newTestService(t *testing.T, backend Backend) *Service {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	return NewService(
		session.NewStore(),
		history.NewStore(nil),
		backend,
		mirror.New(mirror.NewDiskStorage()),
		events.NewHub(),
	)
}

func TestGenerateRecordsHistory(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	instruction := "A red fox"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &instruction})

	result, err := svc.Generate(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Image != testImage {
		t.Errorf("result image = %q, want backend image", result.Image)
	}
	if result.State.GeneratedImage != testImage {
		t.Errorf("state generated image = %q, want backend image", result.State.GeneratedImage)
	}
	if result.State.Busy {
		t.Error("session still busy after Generate()")
	}

	items := svc.History().AllItems("s1")
	if len(items) != 1 {
		t.Fatalf("history has %d items, want 1", len(items))
	}
	if items[0].Mode != catalog.ModeGenerate {
		t.Errorf("history item mode = %v, want Generate", items[0].Mode)
	}
	if items[0].Instruction != "A red fox" {
		t.Errorf("history item instruction = %q, want A red fox", items[0].Instruction)
	}
}

func TestGenerateComposesPrompt(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	instruction := "A red fox"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &instruction})

	if _, err := svc.Generate(context.Background(), "s1", locale.English); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(backend.requests) != 1 {
		t.Fatalf("backend saw %d generate calls, want 1", len(backend.requests))
	}
	want := "Photorealistic style: A red fox"
	if backend.requests[0].Prompt != want {
		t.Errorf("backend prompt = %q, want %q", backend.requests[0].Prompt, want)
	}
	if backend.requests[0].Model != catalog.ModelImagen {
		t.Errorf("backend model = %v, want Imagen", backend.requests[0].Model)
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	_, err := svc.Generate(context.Background(), "s1", locale.English)
	if !errors.Is(err, ErrPromptRequired) {
		t.Fatalf("Generate() error = %v, want %v", err, ErrPromptRequired)
	}
	if len(backend.requests) != 0 {
		t.Errorf("backend saw %d generate calls, want 0", len(backend.requests))
	}

	state := svc.State("s1")
	if state.LastError != locale.MsgPromptRequired {
		t.Errorf("session error = %q, want %q", state.LastError, locale.MsgPromptRequired)
	}
	if state.Busy {
		t.Error("session left busy after a rejected generation")
	}
}

func TestEditWithoutSource(t *testing.T) {
	svc := newTestService(t, okBackend())
	svc.SetMode("s1", catalog.ModeEdit)

	_, err := svc.Generate(context.Background(), "s1", locale.English)
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Generate() error = %v, want %v", err, ErrNoSource)
	}

	state := svc.State("s1")
	if state.LastError != locale.MsgNoSourceImage {
		t.Errorf("session error = %q, want %q", state.LastError, locale.MsgNoSourceImage)
	}
	if state.Busy {
		t.Error("session left busy after a rejected edit")
	}
}

func TestEditUsesCurrentStackImage(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	if _, err := svc.UploadSource("s1", testImage); err != nil {
		t.Fatalf("UploadSource() error = %v", err)
	}

	result, err := svc.Generate(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(backend.edits) != 1 {
		t.Fatalf("backend saw %d edit calls, want 1", len(backend.edits))
	}
	if backend.edits[0].SourceImage != testImage {
		t.Error("edit call did not use the uploaded source")
	}
	if !result.State.CanUndo {
		t.Error("edit result did not extend the undo stack")
	}
	if result.State.Mode != catalog.ModeEdit {
		t.Errorf("mode = %v, want Edit", result.State.Mode)
	}
}

func TestUploadSourceRejectsRawBytes(t *testing.T) {
	svc := newTestService(t, okBackend())

	_, err := svc.UploadSource("s1", "just some text")
	if !errors.Is(err, gateway.ErrInvalidImage) {
		t.Errorf("UploadSource() error = %v, want %v", err, gateway.ErrInvalidImage)
	}
}

func TestSingleFlightRejectsSecondCall(t *testing.T) {
	backend := okBackend()
	backend.started = make(chan struct{})
	backend.release = make(chan struct{})
	svc := newTestService(t, backend)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), "s1", locale.English)
		done <- err
	}()
	<-backend.started

	if _, err := svc.Generate(context.Background(), "s1", locale.English); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent Generate() error = %v, want %v", err, ErrBusy)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	// The gate is released; a new call goes through.
	if _, err := svc.Generate(context.Background(), "s1", locale.English); err != nil {
		t.Errorf("Generate() after release error = %v", err)
	}
}

func TestBackendFailureReleasesGate(t *testing.T) {
	backend := &stubBackend{err: gateway.ErrNoImage}
	svc := newTestService(t, backend)

	_, err := svc.Generate(context.Background(), "s1", locale.English)
	if !errors.Is(err, gateway.ErrNoImage) {
		t.Fatalf("Generate() error = %v, want %v", err, gateway.ErrNoImage)
	}

	state := svc.State("s1")
	if state.Busy {
		t.Error("session left busy after backend failure")
	}
	if state.LastError != locale.MsgNoImageProduced {
		t.Errorf("session error = %q, want %q", state.LastError, locale.MsgNoImageProduced)
	}
	if items := svc.History().AllItems("s1"); len(items) != 0 {
		t.Errorf("failed operation recorded %d history items, want 0", len(items))
	}
}

func TestUpscaleUsesFixedPrompt(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	if _, err := svc.UploadSource("s1", testImage); err != nil {
		t.Fatalf("UploadSource() error = %v", err)
	}

	result, err := svc.Upscale(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Upscale() error = %v", err)
	}

	if len(backend.edits) != 1 {
		t.Fatalf("backend saw %d edit calls, want 1", len(backend.edits))
	}
	if backend.edits[0].Prompt != composer.UpscalePrompt {
		t.Errorf("upscale prompt = %q, want the fixed instruction", backend.edits[0].Prompt)
	}
	if backend.edits[0].Model != catalog.ModelGeminiFlash {
		t.Errorf("upscale model = %v, want Gemini Flash", backend.edits[0].Model)
	}
	if backend.edits[0].AspectRatio != "" {
		t.Errorf("upscale ratio = %q, want none", backend.edits[0].AspectRatio)
	}

	if result.Item.PhotoType != "Upscaled" {
		t.Errorf("history photoType = %q, want Upscaled", result.Item.PhotoType)
	}
	if result.Item.Quality != catalog.QualityHigh {
		t.Errorf("history quality = %v, want High", result.Item.Quality)
	}
	if result.Item.SourceImage != testImage {
		t.Errorf("history sourceImage = %q, want the upscaled source", result.Item.SourceImage)
	}
}

func TestUpscaleInGenerateModeRecordsSource(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	instruction := "A red fox"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &instruction})
	if _, err := svc.Generate(context.Background(), "s1", locale.English); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	generated := svc.State("s1").GeneratedImage

	result, err := svc.Upscale(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Upscale() error = %v", err)
	}

	if result.Item.SourceImage != generated {
		t.Errorf("history sourceImage = %q, want the generated image", result.Item.SourceImage)
	}
}

func TestUpscaleWithoutImage(t *testing.T) {
	svc := newTestService(t, okBackend())

	_, err := svc.Upscale(context.Background(), "s1", locale.English)
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Upscale() error = %v, want %v", err, ErrNoSource)
	}
}

func TestSelectHistoryRestoresState(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	instruction := "A red fox"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &instruction})
	result, err := svc.Generate(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Drift the session away, then restore.
	other := "something else"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &other})
	svc.SetMode("s1", catalog.ModeEdit)

	state, err := svc.SelectHistory("s1", result.Item.ID)
	if err != nil {
		t.Fatalf("SelectHistory() error = %v", err)
	}
	if state.Mode != catalog.ModeGenerate {
		t.Errorf("mode = %v, want Generate", state.Mode)
	}
	if state.Instruction != "A red fox" {
		t.Errorf("instruction = %q, want restored value", state.Instruction)
	}
	if state.GeneratedImage != testImage {
		t.Error("generated image not restored from the history item")
	}
}

func TestSelectHistoryMissingItem(t *testing.T) {
	svc := newTestService(t, okBackend())

	_, err := svc.SelectHistory("s1", "no-such-item")
	if !errors.Is(err, history.ErrItemNotFound) {
		t.Errorf("SelectHistory() error = %v, want %v", err, history.ErrItemNotFound)
	}
}

func TestNewItemsLandInActiveFolder(t *testing.T) {
	backend := okBackend()
	svc := newTestService(t, backend)

	folder := svc.History().CreateFolder("s1", "foxes")

	instruction := "A red fox"
	svc.ApplyControls("s1", session.ControlsPatch{Instruction: &instruction})
	result, err := svc.Generate(context.Background(), "s1", locale.English)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Item.FolderID == nil || *result.Item.FolderID != folder.ID {
		t.Error("new item not assigned to the active folder")
	}
}
