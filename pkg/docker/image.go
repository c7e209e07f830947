package docker

import (
	"fmt"
	"strings"
)

// Image identifies a tagged container image. Values are immutable once
// constructed.
type Image struct {
	Repository string
	Tag        string
}

// ParseImage builds an Image from a repository:tag reference. A missing
// tag defaults to latest.
func ParseImage(ref string) (Image, error) {
	if ref == "" {
		return Image{}, fmt.Errorf("image reference is empty")
	}

	repository, tag := ref, "latest"
	if idx := strings.LastIndex(ref, ":"); idx > 0 {
		repository, tag = ref[:idx], ref[idx+1:]
	}
	if repository == "" || tag == "" {
		return Image{}, fmt.Errorf("invalid image reference: %s", ref)
	}

	return Image{Repository: repository, Tag: tag}, nil
}

// RepoTag returns the canonical repository:tag form. Every component that
// needs to agree with the daemon or registry on image identity uses this
// exact format.
func (i Image) RepoTag() string {
	return i.Repository + ":" + i.Tag
}

// RepositoryPath returns the repository path substituted into registry
// URLs. Bare names are Docker Hub official-image shorthand and resolve
// under the library/ namespace.
func (i Image) RepositoryPath() string {
	if !strings.Contains(i.Repository, "/") {
		return "library/" + i.Repository
	}
	return i.Repository
}
