package catalog

// Mode - top-level studio mode
type Mode string

const (
	ModeGenerate Mode = "Generate"
	ModeEdit     Mode = "Edit"
)

// ImageModel - the two supported backends
type ImageModel string

const (
	// ModelImagen is the batch text-to-image backend (prompt in, one image out).
	ModelImagen ImageModel = "imagen-4.0-generate-001"
	// ModelGeminiFlash is the multimodal backend (text + inline image parts).
	ModelGeminiFlash ImageModel = "gemini-2.5-flash-image"
)

// AspectRatio - fixed set of supported output ratios
type AspectRatio string

const (
	AspectSquare       AspectRatio = "1:1"
	AspectPortrait34   AspectRatio = "3:4"
	AspectLandscape43  AspectRatio = "4:3"
	AspectPortrait916  AspectRatio = "9:16"
	AspectLandscape169 AspectRatio = "16:9"
)

// AspectRatios - every supported ratio, in display order
var AspectRatios = []AspectRatio{
	AspectSquare,
	AspectPortrait34,
	AspectLandscape43,
	AspectPortrait916,
	AspectLandscape169,
}

// ImageQuality - quality tier, folded into the prompt as a suffix
type ImageQuality string

const (
	QualityLow    ImageQuality = "Low"
	QualityMedium ImageQuality = "Medium"
	QualityHigh   ImageQuality = "High"
	QualityTwoK   ImageQuality = "2K (Ultra High)"
	QualityFourK  ImageQuality = "4K (Masterpiece)"
)

// Qualities - every supported tier, in display order
var Qualities = []ImageQuality{
	QualityLow,
	QualityMedium,
	QualityHigh,
	QualityTwoK,
	QualityFourK,
}

// SubjectPosition - placement of the subject inside the frame
type SubjectPosition string

const (
	PositionCenter SubjectPosition = "Center"
	PositionLeft   SubjectPosition = "Left"
	PositionRight  SubjectPosition = "Right"
	PositionTop    SubjectPosition = "Top"
	PositionBottom SubjectPosition = "Bottom"
)

// FocusArea - 3x3 grid cell for edit-mode focus directives
type FocusArea string

const (
	FocusNone         FocusArea = "None"
	FocusTopLeft      FocusArea = "Top-Left"
	FocusTopCenter    FocusArea = "Top-Center"
	FocusTopRight     FocusArea = "Top-Right"
	FocusMiddleLeft   FocusArea = "Middle-Left"
	FocusCenter       FocusArea = "Center"
	FocusMiddleRight  FocusArea = "Middle-Right"
	FocusBottomLeft   FocusArea = "Bottom-Left"
	FocusBottomCenter FocusArea = "Bottom-Center"
	FocusBottomRight  FocusArea = "Bottom-Right"
)

// Sentinel catalog values: "omit this clause", never literal prompt text.
const (
	SentinelDefault = "Default"
	SentinelNone    = "None (Default)"
	EffectNone      = "None"
)

// Label - display text per UI language
type Label struct {
	EN string `json:"en"`
	RU string `json:"ru"`
}

// Option - one selectable catalog entry
type Option struct {
	Value string `json:"value"`
	Label Label  `json:"label"`
}

// OptionGroup - a named category of options
type OptionGroup struct {
	Name    Label    `json:"name"`
	Options []Option `json:"options"`
}

// SubjectSettings - the structured description used to build a prompt.
// Copied by value into every history item; optional fields default to their
// sentinel value, which the composer omits from the output.
type SubjectSettings struct {
	Description string          `json:"description"`
	Position    SubjectPosition `json:"position"`
	Pose        string          `json:"pose"`
	Emotion     string          `json:"emotion,omitempty"`
	Lighting    string          `json:"lighting,omitempty"`
	Background  string          `json:"background,omitempty"`
	CameraAngle string          `json:"cameraAngle"`
	FocusArea   FocusArea       `json:"focusArea,omitempty"`
	FocusAreas  []FocusArea     `json:"focusAreas,omitempty"`
	Camera      string          `json:"camera,omitempty"`
	Lens        string          `json:"lens,omitempty"`
	Aperture    string          `json:"aperture,omitempty"`
}

// DefaultSubjectSettings - canonical all-sentinel settings record
func DefaultSubjectSettings() SubjectSettings {
	return SubjectSettings{
		Description: "",
		Position:    PositionCenter,
		Pose:        SentinelNone,
		Emotion:     SentinelNone,
		Lighting:    SentinelDefault,
		Background:  SentinelNone,
		CameraAngle: SentinelDefault,
		FocusArea:   FocusNone,
		FocusAreas:  []FocusArea{},
		Camera:      SentinelDefault,
		Lens:        SentinelDefault,
		Aperture:    SentinelDefault,
	}
}

// Clone - deep copy, so live settings edits never mutate stored history
func (s SubjectSettings) Clone() SubjectSettings {
	out := s
	out.FocusAreas = append([]FocusArea(nil), s.FocusAreas...)
	return out
}
