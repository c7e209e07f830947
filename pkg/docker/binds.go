package docker

import (
	"fmt"
	"os"
	"sort"
)

// sortedHostPaths returns the bind host paths in sorted order. Map
// iteration is randomized, so validation and serialization share this
// ordering to keep "first offending path" reporting deterministic.
func sortedHostPaths(binds BindsMap) []string {
	paths := make([]string, 0, len(binds))
	for hostPath := range binds {
		paths = append(paths, hostPath)
	}
	sort.Strings(paths)
	return paths
}

// validateBinds confirms every bind-mount host path exists, checking
// paths one at a time. A nil or empty map is a no-op.
func validateBinds(binds BindsMap) error {
	for _, hostPath := range sortedHostPaths(binds) {
		if _, err := os.Stat(hostPath); os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrBindDoesntExistInHost, hostPath)
		}
	}
	return nil
}

// serializeBinds formats binds as host:container pair strings in the same
// order validation uses.
func serializeBinds(binds BindsMap) []string {
	if len(binds) == 0 {
		return nil
	}

	pairs := make([]string, 0, len(binds))
	for _, hostPath := range sortedHostPaths(binds) {
		pairs = append(pairs, hostPath+":"+binds[hostPath])
	}
	return pairs
}
