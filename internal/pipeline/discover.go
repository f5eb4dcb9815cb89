package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sabaoth87/MakeMP4s/internal/config"
)

// Discover walks scanDir and collects conversion candidates: files whose
// extension is a known video format but not in the natively-playable
// set. Directories named "extras" (case-insensitive) are pruned. Paths
// are returned sorted lexicographically for deterministic processing
// order.
func Discover(scanDir string, cfg *config.Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(scanDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.EqualFold(d.Name(), "extras") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if cfg.IsVideo(ext) && !cfg.IsPlayable(ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
