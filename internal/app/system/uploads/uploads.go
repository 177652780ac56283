// internal/app/system/uploads/uploads.go
package uploads

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// FieldName is the multipart form field carrying an image upload.
const FieldName = "imageFile"

// MaxUploadSize is the largest accepted image upload.
const MaxUploadSize = 10 << 20 // 10 MB

var (
	// ErrTooLarge is returned when an upload exceeds MaxUploadSize.
	ErrTooLarge = errors.New("file too large")
	// ErrUnsupportedType is returned when an upload is not an accepted
	// image format.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// contentTypes maps accepted image extensions to the content type stored
// alongside the object.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// Saver writes uploaded images through the configured storage backend and
// hands back their public URLs.
type Saver struct {
	store storage.Store
}

// New creates a Saver on top of a storage backend.
func New(store storage.Store) *Saver {
	return &Saver{store: store}
}

// SaveImage validates and stores one uploaded image, returning the public
// URL to put into page content. The stored name is derived from the upload
// time plus a random suffix; the visitor's filename never reaches disk.
// Both the filename extension and the part's declared content type must
// match an accepted image format.
func (s *Saver) SaveImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !AllowedExt(ext) {
		return "", ErrUnsupportedType
	}
	contentType := contentTypes[ext]
	if !partTypeAccepted(header.Header.Get("Content-Type")) {
		return "", ErrUnsupportedType
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	name := ObjectName(ext, time.Now())
	opts := &storage.PutOptions{ContentType: contentType}
	if err := s.store.Put(ctx, name, f, opts); err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	return s.store.URL(name), nil
}

// FormImage stores the image submitted in the request's FieldName part, if
// any, and returns its public URL. A request without that part returns ""
// with no error so callers can treat the image as unchanged.
func (s *Saver) FormImage(ctx context.Context, r *http.Request) (string, error) {
	_, header, err := r.FormFile(FieldName)
	if err != nil {
		// Text-only submissions arrive without a file part, or without a
		// multipart body at all. Both mean "image unchanged".
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if header == nil || header.Size == 0 {
		return "", nil
	}
	return s.SaveImage(ctx, header)
}

// WriteError answers a failed upload. Policy violations get a 400 with the
// reason; anything else is a 500. The accompanying field changes of the
// request are abandoned by the caller, never partially applied.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTooLarge):
		http.Error(w, "Image is too large. The limit is 10 MB.", http.StatusBadRequest)
	case errors.Is(err, ErrUnsupportedType):
		http.Error(w, "Unsupported image type. Use JPEG, PNG, WebP, or GIF.", http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ObjectName builds the stored name for an upload: millisecond timestamp,
// a short random suffix, and the original extension.
func ObjectName(ext string, now time.Time) string {
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.New().String()[:8], ext)
}

// AllowedExt reports whether an extension (with leading dot, any case) is
// an accepted image format.
func AllowedExt(ext string) bool {
	_, ok := contentTypes[strings.ToLower(ext)]
	return ok
}

// partTypeAccepted checks the content type a multipart part declared for
// itself. Browsers that cannot sniff a type send application/octet-stream,
// which is tolerated since the extension check still applies.
func partTypeAccepted(declared string) bool {
	if declared == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	if mediaType == "application/octet-stream" {
		return true
	}
	for _, ct := range contentTypes {
		if mediaType == ct {
			return true
		}
	}
	return false
}
