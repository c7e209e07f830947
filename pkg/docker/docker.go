// Package docker is a programmatic control surface for a local container
// runtime: it verifies the runtime is installed and reachable, checks
// image existence and freshness against the registry, pulls images, and
// runs one-shot containers with bind mounts and captured output.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/3schwartz/hardhat/internal/probe"
	intregistry "github.com/3schwartz/hardhat/internal/registry"
	intruntime "github.com/3schwartz/hardhat/internal/runtime"
	"github.com/3schwartz/hardhat/pkg/runtime"
)

// Options configures facade construction.
type Options struct {
	// ExecutableName is the runtime binary probed on PATH. Defaults to
	// "docker".
	ExecutableName string

	// SocketPath is the daemon control socket. Defaults to the platform's
	// well-known path; construction fails with ErrUnsupportedPlatform
	// when the platform has no default and none is given.
	SocketPath string
}

// Docker is the facade over the daemon, the registry, and the local
// filesystem. The handle is long-lived and safe for concurrent use.
type Docker struct {
	daemon   runtime.Daemon
	registry runtime.Registry
}

// New probes the host for an installed, reachable runtime and returns a
// ready facade bound to the control socket.
func New(opts Options) (*Docker, error) {
	executable := opts.ExecutableName
	if executable == "" {
		executable = probe.DefaultExecutable
	}
	if !probe.ExecutableInPath(executable) {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrRuntimeNotInstalled, executable)
	}

	socketPath := opts.SocketPath
	if socketPath == "" {
		var ok bool
		socketPath, ok = probe.DefaultSocketPath()
		if !ok {
			return nil, fmt.Errorf("%w: configure Options.SocketPath explicitly", ErrUnsupportedPlatform)
		}
	}
	if !probe.SocketExists(socketPath) {
		return nil, fmt.Errorf("%w: control socket %s not found", ErrRuntimeNotRunning, socketPath)
	}

	daemon, err := intruntime.NewDockerDaemon("unix://" + socketPath)
	if err != nil {
		return nil, err
	}

	slog.Debug("Docker facade initialized", "socketPath", socketPath)
	return NewWithClients(daemon, intregistry.NewClient()), nil
}

// NewWithClients wires explicit daemon and registry implementations.
// Tests substitute fakes here.
func NewWithClients(daemon runtime.Daemon, registry runtime.Registry) *Docker {
	return &Docker{
		daemon:   daemon,
		registry: registry,
	}
}

// IsRunning reports daemon liveness. Not-running and bad-gateway
// conditions read as false instead of failing, since this is a probe
// rather than an action; any other failure propagates.
func (d *Docker) IsRunning(ctx context.Context) (bool, error) {
	status, err := d.daemon.Ping(ctx)
	if err != nil {
		translated := translateDaemonError(err)
		if errors.Is(translated, ErrRuntimeNotRunning) || errors.Is(translated, ErrBadGateway) {
			return false, nil
		}
		return false, translated
	}
	return status == runtime.PingOK, nil
}

// ImageExists reports whether img's tag is present in the remote registry.
func (d *Docker) ImageExists(ctx context.Context, img Image) (bool, error) {
	exists, err := d.registry.TagExists(ctx, img.RepositoryPath(), img.Tag)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRegistryConnection, err)
	}
	return exists, nil
}

// HasPulledImage reports whether img is present locally. Read-only.
func (d *Docker) HasPulledImage(ctx context.Context, img Image) (bool, error) {
	_, ok, err := d.localImageID(ctx, img)
	return ok, err
}

// IsImageUpToDate reports whether the local copy of img matches the
// registry's current manifest digest. A missing local copy reads as stale
// without touching the registry; registry failures surface as errors
// rather than a silent false positive.
func (d *Docker) IsImageUpToDate(ctx context.Context, img Image) (bool, error) {
	localID, ok, err := d.localImageID(ctx, img)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	digest, err := d.registry.ManifestDigest(ctx, img.RepositoryPath(), img.Tag)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRegistryConnection, err)
	}

	return localID == digest, nil
}

// PullImage downloads img after confirming the tag exists remotely,
// failing fast with ErrImageDoesntExist instead of letting the daemon
// attempt and fail later.
func (d *Docker) PullImage(ctx context.Context, img Image) error {
	exists, err := d.ImageExists(ctx, img)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrImageDoesntExist, img.RepoTag())
	}

	if err := d.daemon.Pull(ctx, img.RepoTag()); err != nil {
		return translateDaemonError(err)
	}
	return nil
}

// RunContainer executes command in a one-shot container of img and
// captures its output. Every bind-mount host path is validated before the
// daemon is contacted.
func (d *Docker) RunContainer(ctx context.Context, img Image, command []string, config ContainerConfig) (*ProcessResult, error) {
	if err := validateBinds(config.Binds); err != nil {
		return nil, err
	}

	opts := runtime.RunOptions{
		WorkingDirectory: config.WorkingDirectory,
		Binds:            serializeBinds(config.Binds),
		NetworkMode:      config.NetworkMode,
	}

	var stdout, stderr bytes.Buffer
	statusCode, err := d.daemon.Run(ctx, img.RepoTag(), command, opts, &stdout, &stderr)
	if err != nil {
		return nil, translateDaemonError(err)
	}

	return &ProcessResult{
		StatusCode: statusCode,
		Stdout:     stdout.Bytes(),
		Stderr:     stderr.Bytes(),
	}, nil
}

// localImageID finds the ID of img in the daemon's local image list. The
// second result is false when no repo-tag entry matches.
func (d *Docker) localImageID(ctx context.Context, img Image) (string, bool, error) {
	images, err := d.daemon.ListImages(ctx)
	if err != nil {
		return "", false, translateDaemonError(err)
	}

	repoTag := img.RepoTag()
	for _, summary := range images {
		for _, tag := range summary.RepoTags {
			if tag == repoTag {
				return summary.ID, true, nil
			}
		}
	}
	return "", false, nil
}
