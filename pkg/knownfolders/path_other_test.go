//go:build !windows

package knownfolders_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/knownfolders/pkg/knownfolders"
)

func TestPathUnsupportedPlatform(t *testing.T) {
	for _, id := range []knownfolders.FolderID{knownfolders.Profile, knownfolders.LocalAppData} {
		t.Run(id.String(), func(t *testing.T) {
			path, err := knownfolders.Path(id)

			if path != "" {
				t.Errorf("expected empty path, got %q", path)
			}
			if !errors.Is(err, knownfolders.ErrUnsupported) {
				t.Fatalf("expected ErrUnsupported, got %v", err)
			}

			var resolveErr *knownfolders.Error
			if !errors.As(err, &resolveErr) {
				t.Fatalf("expected *knownfolders.Error, got %T", err)
			}
			if resolveErr.Folder != id {
				t.Errorf("expected folder %v, got %v", id, resolveErr.Folder)
			}
			if resolveErr.Code != 0 {
				t.Errorf("expected zero HRESULT, got 0x%08X", resolveErr.Code)
			}
		})
	}
}
