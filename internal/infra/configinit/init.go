package configinit

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/infra/configfinder"
)

//go:embed templates/pesel.yaml
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init writes a commented pesel.yaml into dir. An existing file is kept unless
// force is set; created reports whether anything was written.
func (i *Initializer) Init(dir string, force bool) (path string, created bool, err error) {
	root := filepath.Clean(dir)
	path = filepath.Join(root, configfinder.DefaultConfigFile)

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return path, false, nil
		}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return path, false, &domain.OpError{
			Op:   "configinit.mkdir",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}

	b, err := templatesFS.ReadFile("templates/pesel.yaml")
	if err != nil {
		return path, false, &domain.OpError{
			Op:   "configinit.template",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return path, false, &domain.OpError{
			Op:   "configinit.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return path, true, nil
}
