package catalog

import (
	"context"
	"fmt"
	"io/fs"
)

// FSSource reads catalog files from a filesystem. Files with unsupported
// extensions are ignored.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source rooted at fsys, e.g. os.DirFS("locales") or
// an embed.FS narrowed with fs.Sub.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Load(ctx context.Context) (Messages, error) {
	set := make(Messages)

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(p) {
			return nil
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %q: %w", p, err)
		}
		return addFile(set, p, data)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}
