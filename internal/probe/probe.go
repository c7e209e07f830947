// Package probe answers host capability questions: whether the container
// runtime binary is installed and where its control socket lives.
package probe

import (
	"os"
	"os/exec"
	"runtime"
)

// DefaultExecutable is the runtime binary probed on PATH.
const DefaultExecutable = "docker"

// unixSocketPath is the well-known daemon control socket on unix hosts.
const unixSocketPath = "/var/run/docker.sock"

// ExecutableInPath reports whether name resolves on the host PATH.
func ExecutableInPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// DefaultSocketPath returns the platform's well-known daemon control
// socket. The second result is false on platforms without a unix-socket
// convention (notably Windows), where callers must configure one
// explicitly.
func DefaultSocketPath() (string, bool) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return unixSocketPath, true
	default:
		return "", false
	}
}

// SocketExists reports whether the control socket is present on disk.
func SocketExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
