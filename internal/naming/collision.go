package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks output paths claimed by input files within a
// single run and disambiguates duplicates with " - dupN" suffixes. Two
// different source files that parse to the same display name must not
// overwrite each other. Methods are goroutine-safe so the interactive
// front-end can run the pipeline in the background.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // output path -> input path that owns it
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{owners: make(map[string]string)}
}

// Resolve returns the final output path for input. If requested is
// unclaimed, or already owned by the same input, it is returned as-is;
// otherwise the first free " - dupN" variant is claimed and returned.
func (cr *CollisionResolver) Resolve(input, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if owner, taken := cr.owners[requested]; !taken || owner == input {
		cr.owners[requested] = input
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, n, ext))
		if owner, taken := cr.owners[candidate]; !taken || owner == input {
			cr.owners[candidate] = input
			return candidate
		}
	}
}
