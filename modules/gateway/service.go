package gateway

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"photo-studio-server/modules/catalog"
	"photo-studio-server/modules/common/config"
	"photo-studio-server/modules/common/imaging"
)

type Service struct {
	genaiClient *genai.Client
	geminiModel string
	imagenModel string
}

func NewService(ctx context.Context) (*Service, error) {
	cfg := config.GetConfig()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	log.Println("✅ [Gateway] Service initialized")
	return &Service{
		genaiClient: genaiClient,
		geminiModel: cfg.GeminiModel,
		imagenModel: cfg.ImagenModel,
	}, nil
}

// modelID - the deployed model id for a catalog model selection. The env
// config can point either family at a newer deployment.
func (s *Service) modelID(m catalog.ImageModel) string {
	if m == catalog.ModelImagen {
		if s.imagenModel != "" {
			return s.imagenModel
		}
	} else if s.geminiModel != "" {
		return s.geminiModel
	}
	return string(m)
}

// Generate - text-to-image, dispatched on the selected model. Reference
// images only reach the multimodal path; the batch path ignores them.
func (s *Service) Generate(ctx context.Context, req *Request) (*Result, error) {
	if req.Model == catalog.ModelImagen {
		return s.generateImagen(ctx, req)
	}
	return s.generateGemini(ctx, req)
}

// Edit - image-to-image. The source image leads the parts so the model
// treats the prompt as an instruction against it.
func (s *Service) Edit(ctx context.Context, req *Request) (*Result, error) {
	source, err := imaging.Decode(req.SourceImage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(source.Data, source.MimeType),
		genai.NewPartFromText(req.Prompt),
	}
	parts = append(parts, referenceParts(req.References)...)

	log.Printf("🖌️ [Gateway] Editing image - model: %s, refs: %d, prompt: %s",
		req.Model, len(parts)-2, truncateString(req.Prompt, 50))

	return s.callGemini(ctx, s.modelID(req.Model), parts, req.AspectRatio)
}

func (s *Service) generateImagen(ctx context.Context, req *Request) (*Result, error) {
	log.Printf("🎨 [Gateway] Generating image (Imagen) - ratio: %s, prompt: %s",
		req.AspectRatio, truncateString(req.Prompt, 50))

	resp, err := s.genaiClient.Models.GenerateImages(
		ctx,
		s.modelID(req.Model),
		req.Prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    string(req.AspectRatio),
			OutputMIMEType: "image/jpeg",
		},
	)
	if err != nil {
		log.Printf("❌ [Gateway] Imagen API error: %v", err)
		return nil, fmt.Errorf("imagen api: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, ErrNoImage
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}

	log.Printf("✅ [Gateway] Image generated (Imagen): %d bytes", len(img.ImageBytes))
	return &Result{
		Image:    imaging.Encode(mime, img.ImageBytes),
		MimeType: mime,
	}, nil
}

func (s *Service) generateGemini(ctx context.Context, req *Request) (*Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
	}
	parts = append(parts, referenceParts(req.References)...)

	log.Printf("🎨 [Gateway] Generating image (Gemini) - ratio: %s, refs: %d, prompt: %s",
		req.AspectRatio, len(parts)-1, truncateString(req.Prompt, 50))

	return s.callGemini(ctx, s.modelID(req.Model), parts, req.AspectRatio)
}

func (s *Service) callGemini(ctx context.Context, model string, parts []*genai.Part, ratio catalog.AspectRatio) (*Result, error) {
	content := &genai.Content{
		Parts: parts,
	}

	result, err := s.genaiClient.Models.GenerateContent(
		ctx,
		model,
		[]*genai.Content{content},
		generationConfig(ratio),
	)
	if err != nil {
		log.Printf("❌ [Gateway] Gemini API error: %v", err)
		return nil, fmt.Errorf("gemini api: %w", err)
	}

	blob, err := extractInline(result)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [Gateway] Image generated: %d bytes", len(blob.Data))
	return &Result{
		Image:    imaging.Encode(blob.MimeType, blob.Data),
		MimeType: blob.MimeType,
	}, nil
}

// generationConfig - request config for a multimodal call. An empty ratio
// means the caller wants the model's defaults (the upscale path), so no
// config is sent at all.
func generationConfig(ratio catalog.AspectRatio) *genai.GenerateContentConfig {
	if ratio == "" {
		return nil
	}
	return &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: string(ratio),
		},
		Temperature: floatPtr(0.7),
	}
}

// referenceParts - decode reference images into parts, capped at
// MaxReferenceImages. Malformed references are skipped, not fatal.
func referenceParts(refs []string) []*genai.Part {
	parts := make([]*genai.Part, 0, MaxReferenceImages)
	for i, ref := range refs {
		if len(parts) >= MaxReferenceImages {
			log.Printf("⚠️ [Gateway] Dropping reference image %d: cap is %d", i+1, MaxReferenceImages)
			break
		}

		blob, err := imaging.Decode(ref)
		if err != nil {
			log.Printf("⚠️ [Gateway] Skipping reference image %d: %v", i+1, err)
			continue
		}
		parts = append(parts, genai.NewPartFromBytes(blob.Data, blob.MimeType))
	}
	return parts
}

// extractInline - first inline image part of the first candidate that has one
func extractInline(result *genai.GenerateContentResponse) (*imaging.Blob, error) {
	if result == nil {
		return nil, ErrNoImage
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &imaging.Blob{
					MimeType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}

	return nil, ErrNoImage
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}
