package docker

// BindsMap maps host paths to container paths for bind mounts. Host paths
// must exist before a run is attempted.
type BindsMap map[string]string

// ContainerConfig carries the optional per-run settings a caller may
// supply. It has no identity and is not retained across calls.
type ContainerConfig struct {
	WorkingDirectory string
	Binds            BindsMap
	NetworkMode      string
}

// ProcessResult is the captured outcome of a one-shot container run. The
// caller owns it after return.
type ProcessResult struct {
	StatusCode int64
	Stdout     []byte
	Stderr     []byte
}
