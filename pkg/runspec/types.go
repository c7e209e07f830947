package runspec

// RunSpec is the root object describing a single sandboxed container run.
// It's populated by parsing the user's run-spec YAML file.
type RunSpec struct {
	APIVersion string   `yaml:"apiVersion" validate:"required"`
	Kind       string   `yaml:"kind" validate:"required,eq=ContainerRun"`
	Metadata   Metadata `yaml:"metadata" validate:"required"`
	Spec       Spec     `yaml:"spec" validate:"required"`
}

// Metadata contains run-level metadata.
type Metadata struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

// Spec details the image, command, and container settings for the run.
type Spec struct {
	Image            ImageRef          `yaml:"image" validate:"required"`
	Command          []string          `yaml:"command" validate:"required,min=1"`
	WorkingDirectory string            `yaml:"workingDirectory"`
	Binds            map[string]string `yaml:"binds,omitempty"`
	NetworkMode      string            `yaml:"networkMode"`
}

// ImageRef names a tagged image in the registry.
type ImageRef struct {
	Repository string `yaml:"repository" validate:"required"`
	Tag        string `yaml:"tag" validate:"required"`
}
