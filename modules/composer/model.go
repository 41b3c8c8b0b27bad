package composer

import "photo-studio-server/modules/catalog"

// Input - everything the composer needs to build one instruction string.
// Composition is pure: same input, same output, no I/O.
type Input struct {
	Instruction  string
	Mode         catalog.Mode
	PhotoType    string
	VisualEffect string
	Quality      catalog.ImageQuality
	Settings     catalog.SubjectSettings
}

// editPlaceholder substitutes an empty instruction in Edit mode, where the
// source image itself carries most of the intent.
const editPlaceholder = "Modify this image"

// UpscalePrompt - fixed instruction for the upscale operation; user settings
// are deliberately ignored.
const UpscalePrompt = "Upscale this image to high fidelity 4k resolution, enhancing clarity and texture while preserving original elements."
