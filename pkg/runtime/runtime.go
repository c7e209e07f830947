// Package runtime defines the contracts the docker facade consumes: the
// container daemon control plane and the remote image registry. Concrete
// implementations live under internal/, fakes are substituted in tests.
package runtime

import (
	"context"
	"io"
)

// PingOK is the acknowledgement a healthy daemon answers a ping with.
const PingOK = "OK"

// ImageSummary describes one locally present image.
type ImageSummary struct {
	ID       string
	RepoTags []string
}

// RunOptions carries the per-run container settings passed to the daemon.
type RunOptions struct {
	WorkingDirectory string
	// Binds are "hostPath:containerPath" pair strings.
	Binds       []string
	NetworkMode string
}

// Daemon is the narrow slice of the container daemon control API the
// facade needs. Implementations must be safe for concurrent use; each
// call owns its own output sinks and result values.
type Daemon interface {
	// Ping checks daemon liveness and returns its acknowledgement.
	Ping(ctx context.Context) (string, error)

	// ListImages returns all locally present images.
	ListImages(ctx context.Context) ([]ImageSummary, error)

	// Pull downloads an image and waits for the pull to complete,
	// draining the progress stream.
	Pull(ctx context.Context, repoTag string) error

	// Run executes a one-shot container, writing its output streams to
	// stdout and stderr, and returns the container's exit status code.
	Run(ctx context.Context, repoTag string, command []string, opts RunOptions, stdout, stderr io.Writer) (int64, error)
}

// Registry is the remote registry surface used for image existence and
// freshness checks. Both operations are stateless and uncached.
type Registry interface {
	// TagExists reports whether repositoryPath:tag is present in the registry.
	TagExists(ctx context.Context, repositoryPath, tag string) (bool, error)

	// ManifestDigest resolves the config digest of repositoryPath:tag.
	ManifestDigest(ctx context.Context, repositoryPath, tag string) (string, error)
}
