package runtime

import (
	"net/http"

	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"

	"github.com/3schwartz/hardhat/pkg/runtime"
)

// classify maps a raw Docker SDK error onto the structured transport
// variants downstream code matches on. Connection-level failures are
// checked before status-based ones since a dead connection carries no
// status code. Errors the SDK does not shape stay untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case client.IsErrConnectionFailed(err):
		return &runtime.DaemonError{Kind: runtime.KindConnectionRefused, Err: err}
	case errdefs.IsInvalidParameter(err):
		return &runtime.DaemonError{Kind: runtime.KindHTTPStatus, StatusCode: http.StatusBadRequest, Err: err}
	case errdefs.IsSystem(err):
		return &runtime.DaemonError{Kind: runtime.KindHTTPStatus, StatusCode: http.StatusInternalServerError, Err: err}
	case errdefs.IsUnavailable(err):
		return &runtime.DaemonError{Kind: runtime.KindHTTPStatus, StatusCode: http.StatusBadGateway, Err: err}
	default:
		return err
	}
}
