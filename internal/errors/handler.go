package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/3schwartz/hardhat/internal/ui"
)

type ErrorHandler struct {
	logger  *slog.Logger
	console *ui.Console
}

func NewErrorHandler() (*ErrorHandler, error) {
	logFile, err := createLogFile()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	console := ui.NewConsole()

	return &ErrorHandler{
		logger:  logger,
		console: console,
	}, nil
}

// getOSStandardLogDir returns the OS-standard log directory path
func getOSStandardLogDir() (string, error) {
	// Check for environment variable override first
	if customLogDir := os.Getenv("HARDHAT_DOCKER_LOG_DIR"); customLogDir != "" {
		return customLogDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "hardhat-docker"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		// XDG Base Directory layout
		return filepath.Join(homeDir, ".local", "share", "hardhat-docker", "logs"), nil
	default:
		return filepath.Join(homeDir, ".hardhat-docker", "logs"), nil
	}
}

// createLogDirectory creates the log directory, falling back to the
// current directory when the standard location is unusable.
func createLogDirectory() (string, error) {
	logDir, err := getOSStandardLogDir()
	if err == nil {
		if mkErr := os.MkdirAll(logDir, 0750); mkErr == nil {
			return logDir, nil
		}
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine current directory for fallback logging: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Warning: cannot access standard log directory, falling back to %s\n", currentDir)
	return currentDir, nil
}

func createLogFile() (*os.File, error) {
	logDir, err := createLogDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "hardhat-docker.log")

	// Check if log rotation is needed before opening the file
	if err := checkLogRotation(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to rotate log file: %v\n", err)
	}

	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// checkLogRotation rotates the log aside once it exceeds the size limit.
func checkLogRotation(logPath string) error {
	const maxSizeBytes = 10 * 1024 * 1024 // 10MB

	info, err := os.Stat(logPath)
	if err != nil {
		// File doesn't exist or other error, no rotation needed
		return nil
	}

	if info.Size() >= maxSizeBytes {
		return os.Rename(logPath, logPath+".1")
	}

	return nil
}

func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var hardhatErr *HardhatError
	if errors.As(err, &hardhatErr) {
		h.handleHardhatError(hardhatErr)
	} else {
		h.handleGenericError(err)
	}
}

func (h *ErrorHandler) handleHardhatError(err *HardhatError) {
	h.logStructuredError(err)

	message := h.console.FormatErrorMessage(err.Context, err.Cause, err.Suggestion)
	h.console.PrintError(message)
}

func (h *ErrorHandler) handleGenericError(err error) {
	h.logger.Error("Unhandled error occurred",
		"error", err.Error(),
		"type", "generic",
	)

	h.console.PrintError(err.Error())
}

func (h *ErrorHandler) logStructuredError(err *HardhatError) {
	logAttrs := []slog.Attr{
		slog.String("error", err.OriginalErr.Error()),
		slog.String("type", getErrorTypeName(err.Type)),
		slog.String("context", err.Context),
	}

	if err.Cause != "" {
		logAttrs = append(logAttrs, slog.String("cause", err.Cause))
	}

	if err.Suggestion != "" {
		logAttrs = append(logAttrs, slog.String("suggestion", err.Suggestion))
	}

	h.logger.LogAttrs(context.TODO(), slog.LevelError, "hardhat-docker error occurred", logAttrs...)
}

func getErrorTypeName(errType error) string {
	switch errType {
	case ErrSpecNotFound:
		return "spec_not_found"
	case ErrSpecParseFailed:
		return "spec_parse_failed"
	case ErrRuntimeMissing:
		return "runtime_unavailable"
	case ErrImagePullFailed:
		return "image_pull_failed"
	case ErrContainerFailed:
		return "container_run_failed"
	case ErrRegistryFailed:
		return "registry_failed"
	case ErrFileSystemFailed:
		return "filesystem_failed"
	default:
		return "unknown"
	}
}
