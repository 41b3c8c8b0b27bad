package composer

import (
	"fmt"
	"strings"

	"photo-studio-server/modules/catalog"
)

// Compose - build the single natural-language instruction string sent to the
// backend. Clause order is a contract, not an accident: the downstream model
// is sensitive to it. Order: style prefix, subject description, placement,
// pose, emotion, lighting, background, camera angle, gear, focus directive
// (Edit mode only), effect clause, quality-adjusted instruction.
func Compose(in Input) string {
	instruction := strings.TrimSpace(in.Instruction)
	if instruction == "" && in.Mode == catalog.ModeEdit {
		instruction = editPlaceholder
	}

	var b strings.Builder
	b.WriteString(in.PhotoType)
	b.WriteString(" style: ")
	b.WriteString(subjectClauses(in.Settings, in.Mode))

	if in.VisualEffect != "" && in.VisualEffect != catalog.EffectNone {
		b.WriteString(fmt.Sprintf("Apply visual effect: %s. ", in.VisualEffect))
	}

	b.WriteString(applyQuality(instruction, in.Quality))

	return strings.TrimSpace(b.String())
}

// subjectClauses - settings record to prompt clauses, skipping sentinels
func subjectClauses(s catalog.SubjectSettings, mode catalog.Mode) string {
	var b strings.Builder

	if desc := strings.TrimSpace(s.Description); desc != "" {
		b.WriteString(fmt.Sprintf("Subject details: %s. ", desc))
	}
	if s.Position != catalog.PositionCenter && s.Position != "" {
		b.WriteString(fmt.Sprintf("Subject placement: %s part of the frame. ", strings.ToLower(string(s.Position))))
	}
	if s.Pose != "" && s.Pose != catalog.SentinelNone {
		b.WriteString(fmt.Sprintf("Pose: %s. ", s.Pose))
	}
	if s.Emotion != "" && s.Emotion != catalog.SentinelNone {
		b.WriteString(fmt.Sprintf("Emotion/Expression: %s. ", s.Emotion))
	}
	if s.Lighting != "" && s.Lighting != catalog.SentinelDefault {
		b.WriteString(fmt.Sprintf("Lighting: %s. ", s.Lighting))
	}
	if s.Background != "" && s.Background != catalog.SentinelNone {
		b.WriteString(fmt.Sprintf("Background: %s. ", s.Background))
	}
	if s.CameraAngle != "" && s.CameraAngle != catalog.SentinelDefault {
		b.WriteString(fmt.Sprintf("Camera Angle: %s. ", s.CameraAngle))
	}

	var gear []string
	if s.Camera != "" && s.Camera != catalog.SentinelDefault {
		gear = append(gear, fmt.Sprintf("Shot on %s", s.Camera))
	}
	if s.Lens != "" && s.Lens != catalog.SentinelDefault {
		gear = append(gear, fmt.Sprintf("Lens: %s", s.Lens))
	}
	if s.Aperture != "" && s.Aperture != catalog.SentinelDefault {
		gear = append(gear, fmt.Sprintf("Aperture: %s", s.Aperture))
	}
	if len(gear) > 0 {
		b.WriteString(fmt.Sprintf("Photography Gear: %s. ", strings.Join(gear, ", ")))
	}

	// Focus directives only make sense against an existing image.
	if mode == catalog.ModeEdit && len(s.FocusAreas) > 0 {
		names := make([]string, 0, len(s.FocusAreas))
		for _, area := range s.FocusAreas {
			if area == catalog.FocusNone {
				continue
			}
			names = append(names, string(area))
		}
		if len(names) > 0 {
			b.WriteString(fmt.Sprintf("Focus edits on: %s areas. Keep all other areas unchanged. ", strings.Join(names, ", ")))
		}
	}

	return b.String()
}

// applyQuality - fixed suffix per tier; Medium adds nothing
func applyQuality(prompt string, quality catalog.ImageQuality) string {
	switch quality {
	case catalog.QualityHigh:
		return prompt + ", high-resolution, photorealistic, intricate details, sharp focus"
	case catalog.QualityTwoK:
		return prompt + ", 2k resolution, highly detailed, sharp focus, professional photography, crystal clear, 1440p"
	case catalog.QualityFourK:
		return prompt + ", 4k resolution, ultra detailed, hyper-realistic, masterpiece, 8k textures, insane details, 2160p"
	case catalog.QualityLow:
		return prompt + ", low quality, jpeg artifacts, blurry"
	default:
		return prompt
	}
}
