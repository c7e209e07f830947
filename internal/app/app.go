package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	apperrors "github.com/3schwartz/hardhat/internal/errors"
	"github.com/3schwartz/hardhat/internal/parser"
	"github.com/3schwartz/hardhat/internal/ui"
	"github.com/3schwartz/hardhat/pkg/docker"
	"github.com/3schwartz/hardhat/pkg/runspec"
)

// ContainerService is the facade surface the orchestrator drives. It is
// satisfied by *docker.Docker and mocked in tests.
type ContainerService interface {
	HasPulledImage(ctx context.Context, img docker.Image) (bool, error)
	IsImageUpToDate(ctx context.Context, img docker.Image) (bool, error)
	PullImage(ctx context.Context, img docker.Image) error
	RunContainer(ctx context.Context, img docker.Image, command []string, config docker.ContainerConfig) (*docker.ProcessResult, error)
}

// Status reports whether the runtime is installed and its daemon reachable.
func Status(ctx context.Context, opts docker.Options) error {
	console := ui.NewConsole()

	d, err := docker.New(opts)
	if err != nil {
		return initError(err)
	}
	console.PrintSuccess("Docker is installed")

	running, err := d.IsRunning(ctx)
	if err != nil {
		return apperrors.NewRuntimeError(
			"Checking daemon liveness",
			err.Error(),
			"Inspect the daemon logs on the host",
			err)
	}
	if !running {
		console.PrintWarning("Docker daemon is not responding")
		return nil
	}

	console.PrintSuccess("Docker daemon is running")
	return nil
}

// Pull downloads the referenced image, skipping work when the local copy
// is already current.
func Pull(ctx context.Context, ref string, opts docker.Options) error {
	img, err := docker.ParseImage(ref)
	if err != nil {
		return apperrors.NewSpecError(
			"Parsing image reference",
			err.Error(),
			"Use the repository:tag form, e.g. ubuntu:20.04",
			err)
	}

	d, err := docker.New(opts)
	if err != nil {
		return initError(err)
	}

	return ensureImage(ctx, d, img, ui.NewConsole())
}

// Run executes the run spec at specPath in a one-shot container and
// returns the container's exit status code.
func Run(ctx context.Context, specPath string, opts docker.Options) (int, error) {
	spec, err := parser.Parse(specPath)
	if err != nil {
		return 1, apperrors.NewSpecError(
			fmt.Sprintf("Parsing run spec %s", specPath),
			err.Error(),
			"Check the run spec file against the ContainerRun schema",
			err)
	}

	d, err := docker.New(opts)
	if err != nil {
		return 1, initError(err)
	}

	return runSpec(ctx, d, spec)
}

// runSpec drives one sandboxed run end to end: image freshness, container
// execution, and output forwarding.
func runSpec(ctx context.Context, svc ContainerService, spec *runspec.RunSpec) (int, error) {
	console := ui.NewConsole()
	runID := uuid.New().String()
	slog.Info("Starting container run", "runId", runID, "name", spec.Metadata.Name)

	img := docker.Image{
		Repository: spec.Spec.Image.Repository,
		Tag:        spec.Spec.Image.Tag,
	}

	console.PrintStep(fmt.Sprintf("Ensuring image %s is available", img.RepoTag()))
	if err := ensureImage(ctx, svc, img, console); err != nil {
		return 1, err
	}

	console.PrintStep(fmt.Sprintf("Running command in %s", img.RepoTag()))
	result, err := svc.RunContainer(ctx, img, spec.Spec.Command, docker.ContainerConfig{
		WorkingDirectory: spec.Spec.WorkingDirectory,
		Binds:            docker.BindsMap(spec.Spec.Binds),
		NetworkMode:      spec.Spec.NetworkMode,
	})
	if err != nil {
		return 1, apperrors.NewContainerError(
			fmt.Sprintf("Running %v in %s", spec.Spec.Command, img.RepoTag()),
			err.Error(),
			"Check the command, bind mounts, and working directory in the run spec",
			err)
	}

	forwardOutput(result)

	slog.Info("Container run finished", "runId", runID, "statusCode", result.StatusCode)
	if result.StatusCode == 0 {
		console.PrintSuccess(fmt.Sprintf("Run %s completed successfully", spec.Metadata.Name))
	} else {
		console.PrintWarning(fmt.Sprintf("Run %s exited with status %d", spec.Metadata.Name, result.StatusCode))
	}

	return int(result.StatusCode), nil
}

// ensureImage pulls img unless a current local copy already exists. A
// failed freshness check against the registry keeps the local copy usable
// instead of blocking the run.
func ensureImage(ctx context.Context, svc ContainerService, img docker.Image, console *ui.Console) error {
	pulled, err := svc.HasPulledImage(ctx, img)
	if err != nil {
		return apperrors.NewRuntimeError(
			"Listing local images",
			err.Error(),
			"Verify the Docker daemon is running",
			err)
	}

	if pulled {
		upToDate, err := svc.IsImageUpToDate(ctx, img)
		if err != nil {
			slog.Warn("Could not check image freshness, using local copy", "image", img.RepoTag(), "error", err)
			return nil
		}
		if upToDate {
			slog.Info("Image is up to date", "image", img.RepoTag())
			return nil
		}
		console.PrintInfo(fmt.Sprintf("Image %s is stale, pulling the latest version", img.RepoTag()))
	} else {
		console.PrintInfo(fmt.Sprintf("Image %s not present locally, pulling", img.RepoTag()))
	}

	if err := svc.PullImage(ctx, img); err != nil {
		return apperrors.NewPullError(
			fmt.Sprintf("Pulling image %s", img.RepoTag()),
			err.Error(),
			"Verify the image tag exists and the registry is reachable",
			err)
	}

	console.PrintSuccess(fmt.Sprintf("Pulled %s", img.RepoTag()))
	return nil
}

func forwardOutput(result *docker.ProcessResult) {
	if _, err := os.Stdout.Write(result.Stdout); err != nil {
		slog.Warn("Failed to forward container stdout", "error", err)
	}
	if _, err := os.Stderr.Write(result.Stderr); err != nil {
		slog.Warn("Failed to forward container stderr", "error", err)
	}
}

// initError maps facade construction failures onto CLI error reports.
func initError(err error) error {
	switch {
	case errors.Is(err, docker.ErrRuntimeNotInstalled):
		return apperrors.NewRuntimeError(
			"Locating the Docker executable",
			err.Error(),
			"Install Docker and make sure it is on PATH",
			err)
	case errors.Is(err, docker.ErrRuntimeNotRunning):
		return apperrors.NewRuntimeError(
			"Connecting to the Docker daemon",
			err.Error(),
			"Start the Docker daemon and retry",
			err)
	case errors.Is(err, docker.ErrUnsupportedPlatform):
		return apperrors.NewRuntimeError(
			"Resolving the Docker control socket",
			err.Error(),
			"Pass --socket with the daemon's control socket path",
			err)
	default:
		return apperrors.NewRuntimeError(
			"Initializing the Docker client",
			err.Error(),
			"Check the Docker installation on this host",
			err)
	}
}
