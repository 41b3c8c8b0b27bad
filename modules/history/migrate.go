package history

import (
	"encoding/json"

	"photo-studio-server/modules/catalog"
)

// legacySettings - older clients stored the subject description under
// characterDescription and the focus selection as a single focusArea.
type legacySettings struct {
	catalog.SubjectSettings
	CharacterDescription string `json:"characterDescription,omitempty"`
}

type legacyItem struct {
	Item
	Settings legacySettings `json:"settings"`
}

// DecodeItems - parse a saved history payload, absorbing legacy field
// names, and normalize every item.
func DecodeItems(data []byte) ([]Item, error) {
	var raw []legacyItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(raw))
	for _, li := range raw {
		item := li.Item
		item.Settings = li.Settings.SubjectSettings
		if item.Settings.Description == "" && li.Settings.CharacterDescription != "" {
			item.Settings.Description = li.Settings.CharacterDescription
		}
		items = append(items, item)
	}

	Migrate(items)
	return items, nil
}

// Migrate - normalize items saved by older versions, in place. Safe to run
// repeatedly; a second pass changes nothing.
func Migrate(items []Item) {
	for i := range items {
		migrateItem(&items[i])
	}
}

func migrateItem(item *Item) {
	if item.PhotoType == "" {
		item.PhotoType = catalog.DefaultPhotoType()
	}
	if item.VisualEffect == "" {
		item.VisualEffect = catalog.EffectNone
	}
	if !catalog.IsValidQuality(item.Quality) {
		item.Quality = catalog.QualityMedium
	}
	if !catalog.IsValidAspectRatio(item.AspectRatio) {
		item.AspectRatio = catalog.AspectSquare
	}
	if item.Mode == "" {
		if item.SourceImage != "" {
			item.Mode = catalog.ModeEdit
		} else {
			item.Mode = catalog.ModeGenerate
		}
	}
	if item.Model == "" {
		if item.Mode == catalog.ModeEdit {
			item.Model = catalog.ModelGeminiFlash
		} else {
			item.Model = catalog.ModelImagen
		}
	}

	migrateSettings(&item.Settings)
}

func migrateSettings(s *catalog.SubjectSettings) {
	if s.Position == "" {
		s.Position = catalog.PositionCenter
	}
	if s.Pose == "" {
		s.Pose = catalog.SentinelNone
	}
	if s.Emotion == "" {
		s.Emotion = catalog.SentinelNone
	}
	if s.Lighting == "" {
		s.Lighting = catalog.SentinelDefault
	}
	if s.Background == "" {
		s.Background = catalog.SentinelNone
	}
	if s.CameraAngle == "" {
		s.CameraAngle = catalog.SentinelDefault
	}
	if s.Camera == "" {
		s.Camera = catalog.SentinelDefault
	}
	if s.Lens == "" {
		s.Lens = catalog.SentinelDefault
	}
	if s.Aperture == "" {
		s.Aperture = catalog.SentinelDefault
	}

	// Fold the single-area field into the list exactly once; the fold
	// resets focusArea so rerunning it cannot duplicate the entry.
	if len(s.FocusAreas) == 0 && s.FocusArea != "" && s.FocusArea != catalog.FocusNone {
		s.FocusAreas = []catalog.FocusArea{s.FocusArea}
	}
	s.FocusArea = catalog.FocusNone
	if s.FocusAreas == nil {
		s.FocusAreas = []catalog.FocusArea{}
	}
}
