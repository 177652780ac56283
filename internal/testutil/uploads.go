package testutil

import (
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
)

// NewUploadSaver creates an image Saver backed by a throwaway local
// directory. The directory is removed when the test finishes.
func NewUploadSaver(t *testing.T) *uploads.Saver {
	t.Helper()

	store, err := storage.NewLocal(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}
	return uploads.New(store)
}
