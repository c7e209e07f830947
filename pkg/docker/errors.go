package docker

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/3schwartz/hardhat/pkg/runtime"
)

// Error kinds surfaced by the facade. Callers match with errors.Is; the
// underlying cause stays reachable through the wrap chain.
var (
	// ErrRuntimeNotInstalled means the runtime executable is absent from
	// the host PATH.
	ErrRuntimeNotInstalled = errors.New("docker is not installed")

	// ErrRuntimeNotRunning means the control endpoint is unreachable.
	ErrRuntimeNotRunning = errors.New("docker is not running")

	// ErrUnsupportedPlatform means the platform has no known control
	// socket and none was configured.
	ErrUnsupportedPlatform = errors.New("platform has no default docker socket")

	// ErrBadGateway is a daemon-side HTTP 502.
	ErrBadGateway = errors.New("docker daemon returned bad gateway")

	// ErrServer is a daemon-side HTTP 500.
	ErrServer = errors.New("docker daemon returned an internal error")

	// ErrExecutableNotFound means the requested command does not exist
	// inside the target image.
	ErrExecutableNotFound = errors.New("executable not found inside the image")

	// ErrImageDoesntExist means a pull was attempted on a tag absent from
	// the registry.
	ErrImageDoesntExist = errors.New("image doesn't exist in the registry")

	// ErrBindDoesntExistInHost means a bind-mount source path is missing
	// locally.
	ErrBindDoesntExistInHost = errors.New("bind path doesn't exist in host")

	// ErrRegistryConnection is any failure talking to the registry or its
	// auth service.
	ErrRegistryConnection = errors.New("registry connection failed")
)

// translateDaemonError is the single chokepoint reclassifying structured
// daemon transport failures into the public taxonomy. Connection-level
// failures come before status-based ones; unrecognized errors pass
// through unchanged rather than being misclassified.
func translateDaemonError(err error) error {
	if err == nil {
		return nil
	}

	var derr *runtime.DaemonError
	if !errors.As(err, &derr) {
		return err
	}

	switch derr.Kind {
	case runtime.KindConnectionRefused:
		return fmt.Errorf("%w: %w", ErrRuntimeNotRunning, err)
	case runtime.KindHTTPStatus:
		switch derr.StatusCode {
		case http.StatusBadGateway:
			return fmt.Errorf("%w: %w", ErrBadGateway, err)
		case http.StatusInternalServerError:
			return fmt.Errorf("%w: %w", ErrServer, err)
		case http.StatusBadRequest:
			if strings.Contains(derr.Err.Error(), "executable file not found") {
				return fmt.Errorf("%w: %w", ErrExecutableNotFound, err)
			}
		}
	}

	return err
}
