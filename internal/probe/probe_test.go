package probe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExecutableInPath(t *testing.T) {
	// go itself must be resolvable in any test environment
	if !ExecutableInPath("go") {
		t.Error("expected go to be found in PATH")
	}

	if ExecutableInPath("definitely-not-a-real-binary-4716") {
		t.Error("expected lookup of a nonexistent binary to fail")
	}
}

func TestDefaultSocketPath(t *testing.T) {
	path, ok := DefaultSocketPath()

	switch runtime.GOOS {
	case "windows":
		if ok {
			t.Errorf("expected no default socket on windows, got %s", path)
		}
	default:
		if !ok {
			t.Fatal("expected a default socket path on a unix platform")
		}
		if path == "" {
			t.Error("default socket path is empty")
		}
	}
}

func TestSocketExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.sock")

	if SocketExists(path) {
		t.Error("expected missing socket to report false")
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create placeholder file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close placeholder file: %v", err)
	}

	if !SocketExists(path) {
		t.Error("expected existing path to report true")
	}
}
