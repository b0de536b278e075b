package archive

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/coachdesk/internal/filex"
)

// DirSink writes documents as files under Dir, creating it when missing.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (s *DirSink) Put(_ context.Context, name string, data []byte) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return path, nil
}
