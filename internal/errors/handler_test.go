package errors

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetOSStandardLogDir_EnvOverride(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("HARDHAT_DOCKER_LOG_DIR", custom)

	dir, err := getOSStandardLogDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != custom {
		t.Errorf("expected %s, got %s", custom, dir)
	}
}

func TestCreateLogFile(t *testing.T) {
	t.Setenv("HARDHAT_DOCKER_LOG_DIR", t.TempDir())

	f, err := createLogFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	if !strings.HasSuffix(f.Name(), "hardhat-docker.log") {
		t.Errorf("unexpected log file name: %s", f.Name())
	}
}

func TestCheckLogRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "hardhat-docker.log")

	// Missing file: nothing to rotate.
	if err := checkLogRotation(logPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Small file: stays in place.
	if err := os.WriteFile(logPath, []byte("small"), 0600); err != nil {
		t.Fatalf("failed to seed log file: %v", err)
	}
	if err := checkLogRotation(logPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected small log to remain: %v", err)
	}
}

func TestErrorTypes(t *testing.T) {
	original := errors.New("boom")
	err := NewContainerError("running solc", "daemon rejected the create call", "check the image tag", original)

	if err.Error() != "boom" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, original) {
		t.Error("expected the original error to stay reachable")
	}
	if err.Type != ErrContainerFailed {
		t.Errorf("unexpected type: %v", err.Type)
	}
}

func TestGetErrorTypeName(t *testing.T) {
	tests := []struct {
		errType error
		want    string
	}{
		{ErrSpecParseFailed, "spec_parse_failed"},
		{ErrRuntimeMissing, "runtime_unavailable"},
		{ErrImagePullFailed, "image_pull_failed"},
		{ErrContainerFailed, "container_run_failed"},
		{ErrRegistryFailed, "registry_failed"},
		{errors.New("other"), "unknown"},
	}

	for _, tt := range tests {
		if got := getErrorTypeName(tt.errType); got != tt.want {
			t.Errorf("getErrorTypeName(%v): expected %s, got %s", tt.errType, tt.want, got)
		}
	}
}

func TestHandlerSingleton(t *testing.T) {
	t.Setenv("HARDHAT_DOCKER_LOG_DIR", t.TempDir())
	resetDefaultHandler()

	first, err := GetDefaultHandler()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GetDefaultHandler()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the same handler instance")
	}

	// Handle must not panic on either error shape.
	first.Handle(NewPullError("pulling image", "registry said 404", "verify the tag exists", errors.New("not found")))
	first.Handle(errors.New("plain"))
	first.Handle(nil)
}
