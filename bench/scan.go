package bench

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
)

// DefaultMaxImages caps the images of a benchmark run.
const DefaultMaxImages = 10

// ScanDir lists the regular *.bmp files in dir (any case), sorted by
// name, at most max of them. max <= 0 lists all.
func ScanDir(dir string, max int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Kind(consts.ErrIO, `scan `+dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), `.bmp`) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
		if max > 0 && len(paths) >= max {
			break
		}
	}
	return paths, nil
}
