package codec

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// NewFs returns the OS filesystem, or one rooted at dir when dir is set so
// that every image name is resolved inside it.
func NewFs(dir string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if dir == "" {
		return fs, nil
	}

	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, fmt.Errorf("check dir failed: %w", err)
	} else if !exists {
		return nil, errors.Errorf("dir %s not exists", dir)
	}

	return afero.NewBasePathFs(fs, dir), nil
}

// tmpName picks a hidden sibling of name to encode into before the final
// rename.
func tmpName(name string) string {
	dir, file := filepath.Split(name)
	return filepath.Join(dir, "."+xid.New().String()+"-"+file)
}
