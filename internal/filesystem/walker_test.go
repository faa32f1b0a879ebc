package filesystem

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Humayung/directory-analyser/internal/config"
	"github.com/Humayung/directory-analyser/pkg/models"
	"go.uber.org/zap"
)

func newTestWalker(exclude []string) *Walker {
	return NewWalker(&config.Config{Exclude: exclude}, zap.NewNop())
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func collectWalk(t *testing.T, w *Walker, root string) (files map[string]int64, errs []string) {
	t.Helper()
	files = make(map[string]int64)
	err := w.Walk(context.Background(), root, func(info *models.FileInfo, err error) error {
		if err != nil {
			errs = append(errs, filepath.Base(info.Path))
			return nil
		}
		files[info.Name] = info.Size
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return files, errs
}

func TestWalkCollectsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 3)
	writeFile(t, filepath.Join(root, "sub", "b.jpg"), 5)
	writeFile(t, filepath.Join(root, "sub", "deep", "noext"), 0)

	files, errs := collectWalk(t, newTestWalker(nil), root)

	if len(errs) != 0 {
		t.Fatalf("unexpected walk errors: %v", errs)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	if files["a.txt"] != 3 {
		t.Errorf("a.txt size = %d, want 3", files["a.txt"])
	}
	if files["b.jpg"] != 5 {
		t.Errorf("b.jpg size = %d, want 5", files["b.jpg"])
	}
	if size, ok := files["noext"]; !ok || size != 0 {
		t.Errorf("noext size = %d, present %v, want 0 bytes present", size, ok)
	}
}

func TestWalkExcludesDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep", "a.txt"), 1)
	writeFile(t, filepath.Join(root, "node_modules", "b.js"), 1)
	writeFile(t, filepath.Join(root, "keep", "node_modules", "c.js"), 1)

	files, _ := collectWalk(t, newTestWalker([]string{"node_modules"}), root)

	if len(files) != 1 {
		t.Fatalf("got %d files, want 1: %v", len(files), files)
	}
	if _, ok := files["a.txt"]; !ok {
		t.Errorf("a.txt missing from walk results")
	}
}

func TestWalkSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "target.dat"), 7)
	writeFile(t, filepath.Join(root, "realdir", "inside.txt"), 2)

	if err := os.Symlink(filepath.Join(root, "target.dat"), filepath.Join(root, "link.dat")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "realdir"), filepath.Join(root, "dirlink")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	files, errs := collectWalk(t, newTestWalker(nil), root)

	// link.dat counts with the target's size, dirlink is not a file
	// and is not descended into, broken surfaces as a per-file error.
	if files["link.dat"] != 7 {
		t.Errorf("link.dat size = %d, want 7", files["link.dat"])
	}
	if _, ok := files["dirlink"]; ok {
		t.Errorf("dirlink reported as a file")
	}
	if _, ok := files["inside.txt"]; !ok {
		t.Errorf("inside.txt missing from walk results")
	}
	if len(errs) != 1 || errs[0] != "broken" {
		t.Errorf("walk errors = %v, want [broken]", errs)
	}
}

func TestWalkCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestWalker(nil).Walk(ctx, root, func(info *models.FileInfo, err error) error {
		t.Fatal("callback should not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk() error = %v, want context.Canceled", err)
	}
}

func TestGetExtension(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"photo.jpg", "jpg"},
		{"photo.JPG", "jpg"},
		{"archive.TAR.GZ", "gz"},
		{"README", models.NoExtension},
		{"readme", models.NoExtension},
		{".bashrc", models.NoExtension},
		{"trailing.", models.NoExtension},
		{"a.b.c", "c"},
		{"", models.NoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExtension(tt.name); got != tt.expected {
				t.Errorf("GetExtension(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}
