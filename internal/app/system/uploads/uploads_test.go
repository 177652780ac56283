package uploads

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	name := ObjectName(".png", now)

	if !strings.HasPrefix(name, "1700000000000-") {
		t.Errorf("ObjectName() = %q, want prefix 1700000000000-", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("ObjectName() = %q, want suffix .png", name)
	}
	// timestamp + dash + 8 random chars + extension
	if len(name) != len("1700000000000-")+8+len(".png") {
		t.Errorf("ObjectName() len = %d, unexpected shape %q", len(name), name)
	}

	other := ObjectName(".png", now)
	if other == name {
		t.Error("ObjectName() should differ between calls at the same instant")
	}
}

func TestSaveImage_Validation(t *testing.T) {
	// Rejections happen before storage is touched, so no backend is needed.
	s := New(nil)

	header := func(filename, contentType string, size int64) *multipart.FileHeader {
		h := &multipart.FileHeader{Filename: filename, Size: size, Header: textproto.MIMEHeader{}}
		if contentType != "" {
			h.Header.Set("Content-Type", contentType)
		}
		return h
	}

	tests := []struct {
		name   string
		header *multipart.FileHeader
		want   error
	}{
		{"oversize", header("photo.png", "image/png", MaxUploadSize+1), ErrTooLarge},
		{"bad extension", header("notes.txt", "text/plain", 64), ErrUnsupportedType},
		{"mismatched part type", header("photo.png", "text/html", 64), ErrUnsupportedType},
		{"malformed part type", header("photo.png", "not a media type;;", 64), ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SaveImage(context.Background(), tt.header)
			if !errors.Is(err, tt.want) {
				t.Errorf("SaveImage() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPartTypeAccepted(t *testing.T) {
	tests := []struct {
		declared string
		want     bool
	}{
		{"", true},
		{"image/png", true},
		{"image/jpeg", true},
		{"application/octet-stream", true},
		{"image/png; name=photo.png", true},
		{"text/html", false},
		{"image/svg+xml", false},
	}
	for _, tt := range tests {
		if got := partTypeAccepted(tt.declared); got != tt.want {
			t.Errorf("partTypeAccepted(%q) = %v, want %v", tt.declared, got, tt.want)
		}
	}
}

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".jpg", true},
		{".jpeg", true},
		{".png", true},
		{".webp", true},
		{".gif", true},
		{".PNG", true},
		{".svg", false},
		{".pdf", false},
		{".exe", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}
