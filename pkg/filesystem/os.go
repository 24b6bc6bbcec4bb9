package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the real OS filesystem
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}
