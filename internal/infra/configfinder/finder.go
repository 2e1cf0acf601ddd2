package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/pesel/internal/domain"
)

// DefaultConfigFile is the file name searched for by NewFinder.
const DefaultConfigFile = "pesel.yaml"

// Finder locates a pesel.yaml by searching upward from a directory.
type Finder struct {
	ConfigFile string // defaults to "pesel.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultConfigFile}
}

// FindConfig returns the path of the nearest config file at or above startDir.
func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findconfig",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findconfig",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = DefaultConfigFile
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, name)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfinder.findconfig",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
