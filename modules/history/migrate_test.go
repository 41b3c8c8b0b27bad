package history

import (
	"reflect"
	"testing"

	"photo-studio-server/modules/catalog"
)

func TestMigrateBackfillsDefaults(t *testing.T) {
	items := []Item{{ID: "a", ResultImage: "img"}}

	Migrate(items)

	got := items[0]
	if got.PhotoType != catalog.DefaultPhotoType() {
		t.Errorf("photoType = %q, want default", got.PhotoType)
	}
	if got.VisualEffect != catalog.EffectNone {
		t.Errorf("visualEffect = %q, want %q", got.VisualEffect, catalog.EffectNone)
	}
	if got.Quality != catalog.QualityMedium {
		t.Errorf("quality = %q, want Medium", got.Quality)
	}
	if got.AspectRatio != catalog.AspectSquare {
		t.Errorf("aspectRatio = %q, want 1:1", got.AspectRatio)
	}
	if got.Mode != catalog.ModeGenerate {
		t.Errorf("mode = %q, want Generate", got.Mode)
	}
	if got.Model != catalog.ModelImagen {
		t.Errorf("model = %q, want Imagen", got.Model)
	}
	if got.Settings.Pose != catalog.SentinelNone {
		t.Errorf("pose = %q, want sentinel", got.Settings.Pose)
	}
	if got.Settings.Camera != catalog.SentinelDefault {
		t.Errorf("camera = %q, want sentinel", got.Settings.Camera)
	}
}

func TestMigrateInfersEditMode(t *testing.T) {
	items := []Item{{ID: "a", SourceImage: "src", ResultImage: "img"}}

	Migrate(items)

	if items[0].Mode != catalog.ModeEdit {
		t.Errorf("mode = %q, want Edit", items[0].Mode)
	}
	if items[0].Model != catalog.ModelGeminiFlash {
		t.Errorf("model = %q, want Gemini Flash", items[0].Model)
	}
}

func TestMigrateFoldsFocusArea(t *testing.T) {
	items := []Item{{ID: "a", ResultImage: "img"}}
	items[0].Settings.FocusArea = catalog.FocusTopLeft

	Migrate(items)

	want := []catalog.FocusArea{catalog.FocusTopLeft}
	if !reflect.DeepEqual(items[0].Settings.FocusAreas, want) {
		t.Errorf("focusAreas = %v, want %v", items[0].Settings.FocusAreas, want)
	}
	if items[0].Settings.FocusArea != catalog.FocusNone {
		t.Errorf("focusArea = %q, want reset to None", items[0].Settings.FocusArea)
	}
}

func TestMigrateFocusFoldIdempotent(t *testing.T) {
	items := []Item{{ID: "a", ResultImage: "img"}}
	items[0].Settings.FocusArea = catalog.FocusCenter

	Migrate(items)
	first := append([]catalog.FocusArea(nil), items[0].Settings.FocusAreas...)
	Migrate(items)

	if !reflect.DeepEqual(items[0].Settings.FocusAreas, first) {
		t.Errorf("second migration changed focusAreas: %v vs %v", items[0].Settings.FocusAreas, first)
	}
}

func TestMigrateKeepsExistingFocusAreas(t *testing.T) {
	items := []Item{{ID: "a", ResultImage: "img"}}
	items[0].Settings.FocusAreas = []catalog.FocusArea{catalog.FocusBottomRight}
	items[0].Settings.FocusArea = catalog.FocusTopLeft

	Migrate(items)

	want := []catalog.FocusArea{catalog.FocusBottomRight}
	if !reflect.DeepEqual(items[0].Settings.FocusAreas, want) {
		t.Errorf("focusAreas = %v, want existing list %v", items[0].Settings.FocusAreas, want)
	}
}

func TestDecodeItemsLegacyCharacterDescription(t *testing.T) {
	payload := []byte(`[
		{
			"id": "a",
			"resultImage": "img",
			"settings": {"characterDescription": "tall model in a red coat"}
		}
	]`)

	items, err := DecodeItems(payload)
	if err != nil {
		t.Fatalf("DecodeItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("DecodeItems() returned %d items, want 1", len(items))
	}
	if items[0].Settings.Description != "tall model in a red coat" {
		t.Errorf("description = %q, want legacy characterDescription value", items[0].Settings.Description)
	}
}

func TestDecodeItemsModernDescriptionWins(t *testing.T) {
	payload := []byte(`[
		{
			"id": "a",
			"resultImage": "img",
			"settings": {"description": "new", "characterDescription": "old"}
		}
	]`)

	items, err := DecodeItems(payload)
	if err != nil {
		t.Fatalf("DecodeItems() error = %v", err)
	}
	if items[0].Settings.Description != "new" {
		t.Errorf("description = %q, want %q", items[0].Settings.Description, "new")
	}
}

func TestDecodeItemsBadPayload(t *testing.T) {
	if _, err := DecodeItems([]byte(`{"not": "a list"}`)); err == nil {
		t.Error("DecodeItems() accepted a non-array payload")
	}
}
