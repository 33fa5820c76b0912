package tabio

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
)

// Discover walks dir recursively and returns the supported tabular
// files inside it, sorted by path for deterministic runs. Files with
// unsupported extensions are skipped, never errored on.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewNotADirectoryError(dir)
	}

	files := []string{}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := FormatForPath(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", dir, err)
	}

	sort.Strings(files)

	logging.Debug().
		Str("dir", dir).
		Int("files", len(files)).
		Msg("Discovered tabular files")

	return files, nil
}
