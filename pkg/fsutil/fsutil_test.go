package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/kdocfmt/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.kt")
		content := []byte("/** doc */\nfun f() = 1\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, info, err := fsutil.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}

		var zero [32]byte
		if info.Hash == zero {
			t.Error("Hash should not be zero")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(filepath.Join(t.TempDir(), "absent"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})
}

func TestModified(t *testing.T) {
	t.Parallel()

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "f.md")
		if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := info.Modified()
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if modified {
			t.Error("unchanged file reported as modified")
		}
	})

	t.Run("rewritten file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "f.md")
		if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("other content"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		modified, err := info.Modified()
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if !modified {
			t.Error("rewritten file not reported as modified")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "f.md")
		if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := fsutil.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := info.Modified()
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if !modified {
			t.Error("deleted file not reported as modified")
		}
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.kt")
		if err := fsutil.WriteAtomic(path, []byte("content"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "content" {
			t.Errorf("content = %q", got)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode(), fsutil.DefaultFileMode)
		}
	})

	t.Run("preserves requested mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.kt")
		if err := fsutil.WriteAtomic(path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode() != 0600 {
			t.Errorf("mode = %o, want 0600", stat.Mode())
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.kt")
		if err := fsutil.WriteAtomic(path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})
}
