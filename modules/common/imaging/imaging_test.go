package imaging

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecode(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))

	tests := []struct {
		name     string
		encoded  string
		wantMime string
		wantErr  bool
	}{
		{
			name:     "valid png",
			encoded:  "data:image/png;base64," + payload,
			wantMime: "image/png",
		},
		{
			name:     "valid jpeg",
			encoded:  "data:image/jpeg;base64," + payload,
			wantMime: "image/jpeg",
		},
		{
			name:    "missing prefix",
			encoded: payload,
			wantErr: true,
		},
		{
			name:    "missing payload",
			encoded: "data:image/png;base64,",
			wantErr: true,
		},
		{
			name:    "not base64 marker",
			encoded: "data:image/png;hex," + payload,
			wantErr: true,
		},
		{
			name:    "invalid base64 payload",
			encoded: "data:image/png;base64,@@not-base64@@",
			wantErr: true,
		},
		{
			name:    "empty string",
			encoded: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Decode(tt.encoded)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if blob.MimeType != tt.wantMime {
				t.Errorf("Decode() mime = %q, want %q", blob.MimeType, tt.wantMime)
			}
			if !bytes.Equal(blob.Data, []byte("fake-image-bytes")) {
				t.Errorf("Decode() data = %q, want %q", blob.Data, "fake-image-bytes")
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}
	encoded := Encode("image/png", data)

	if !IsEncoded(encoded) {
		t.Fatalf("IsEncoded(%q) = false, want true", encoded)
	}

	blob, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if blob.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", blob.MimeType)
	}
	if !bytes.Equal(blob.Data, data) {
		t.Errorf("data = %v, want %v", blob.Data, data)
	}
}

func TestIsEncoded(t *testing.T) {
	if IsEncoded("http://example.com/image.png") {
		t.Error("IsEncoded() accepted a URL")
	}
	if IsEncoded("data:;base64,abcd") {
		t.Error("IsEncoded() accepted an empty mime type")
	}
}
