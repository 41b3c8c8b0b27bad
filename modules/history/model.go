package history

import (
	"time"

	"photo-studio-server/modules/catalog"
)

// Item - one completed generation or edit, with enough captured state to
// restore the session that produced it. FolderID nil means unsorted.
type Item struct {
	ID           string                  `json:"id"`
	Timestamp    time.Time               `json:"timestamp"`
	Mode         catalog.Mode            `json:"mode"`
	Instruction  string                  `json:"instruction"`
	PhotoType    string                  `json:"photoType"`
	VisualEffect string                  `json:"visualEffect,omitempty"`
	Quality      catalog.ImageQuality    `json:"quality"`
	Model        catalog.ImageModel      `json:"model"`
	AspectRatio  catalog.AspectRatio     `json:"aspectRatio"`
	Settings     catalog.SubjectSettings `json:"settings"`
	References   []string                `json:"references,omitempty"`
	SourceImage  string                  `json:"sourceImage,omitempty"`
	ResultImage  string                  `json:"resultImage"`
	FolderID     *string                 `json:"folderId,omitempty"`
}

// Folder - a named grouping of history items
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
