package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/3schwartz/hardhat/pkg/runtime"
)

// DockerDaemon implements the runtime.Daemon interface using the Docker SDK.
type DockerDaemon struct {
	client *client.Client
}

// NewDockerDaemon creates a daemon client bound to the given host endpoint
// (e.g. "unix:///var/run/docker.sock"). An empty host falls back to the
// SDK's environment-based resolution.
func NewDockerDaemon(host string) (*DockerDaemon, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	dockerClient, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &DockerDaemon{client: dockerClient}, nil
}

// Ping checks that the daemon answers on its control endpoint.
func (d *DockerDaemon) Ping(ctx context.Context) (string, error) {
	if _, err := d.client.Ping(ctx); err != nil {
		return "", classify(err)
	}

	// The daemon's /_ping endpoint acknowledges with a literal OK body;
	// the SDK discards it after a successful round trip.
	return runtime.PingOK, nil
}

// ListImages returns all locally present images.
func (d *DockerDaemon) ListImages(ctx context.Context) ([]runtime.ImageSummary, error) {
	images, err := d.client.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return nil, classify(err)
	}

	summaries := make([]runtime.ImageSummary, 0, len(images))
	for _, img := range images {
		summaries = append(summaries, runtime.ImageSummary{
			ID:       img.ID,
			RepoTags: img.RepoTags,
		})
	}

	return summaries, nil
}

// Pull downloads an image. The progress stream is drained so the transport
// runs the operation to completion, but its contents are not surfaced;
// only the stream's terminal error decides success.
func (d *DockerDaemon) Pull(ctx context.Context, repoTag string) error {
	slog.Info("Pulling image", "image", repoTag)

	reader, err := d.client.ImagePull(ctx, repoTag, image.PullOptions{})
	if err != nil {
		return classify(err)
	}
	defer reader.Close()

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return classify(fmt.Errorf("failed to stream image pull output: %w", err))
	}

	slog.Info("Successfully pulled image", "image", repoTag)
	return nil
}

// Run executes a one-shot container and captures its output. The container
// runs without a TTY so stdout and stderr stay demultiplexed, overrides the
// image entrypoint so command executes directly, and is removed
// automatically after exit.
func (d *DockerDaemon) Run(ctx context.Context, repoTag string, command []string, opts runtime.RunOptions, stdout, stderr io.Writer) (int64, error) {
	slog.Info("Running container", "image", repoTag, "command", command)

	containerConfig := &container.Config{
		Image:      repoTag,
		Cmd:        command,
		Tty:        false,
		WorkingDir: opts.WorkingDirectory,
		// A single empty element resets the image's entrypoint so command
		// is executed directly.
		Entrypoint: []string{""},
	}

	hostConfig := &container.HostConfig{
		AutoRemove:  true,
		Binds:       opts.Binds,
		NetworkMode: container.NetworkMode(opts.NetworkMode),
	}

	resp, err := d.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, "")
	if err != nil {
		return 0, classify(err)
	}

	attach, err := d.client.ContainerAttach(ctx, resp.ID, container.AttachOptions{
		Stream: true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return 0, classify(err)
	}
	defer attach.Close()

	// Register the wait before starting so the exit status cannot be
	// missed once auto-removal kicks in.
	statusCh, errCh := d.client.ContainerWait(ctx, resp.ID, container.WaitConditionNextExit)

	if err := d.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return 0, classify(err)
	}

	if _, err := stdcopy.StdCopy(stdout, stderr, attach.Reader); err != nil {
		return 0, classify(fmt.Errorf("failed to read container output: %w", err))
	}

	select {
	case err := <-errCh:
		return 0, classify(err)
	case status := <-statusCh:
		if status.Error != nil {
			return status.StatusCode, classify(fmt.Errorf("container wait reported: %s", status.Error.Message))
		}
		slog.Info("Container finished", "image", repoTag, "statusCode", status.StatusCode)
		return status.StatusCode, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
