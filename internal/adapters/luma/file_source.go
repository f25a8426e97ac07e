package luma

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"businessghat/internal/domain"
)

// ExportFileName is the Luma export inside the public asset directory.
const ExportFileName = "luma_events.json"

type fileSource struct {
	fsys fs.FS
	name string
}

// NewFileSource returns a FeedSource reading ExportFileName from fsys
// (typically os.DirFS of the public directory).
func NewFileSource(fsys fs.FS) domain.FeedSource {
	return &fileSource{fsys: fsys, name: ExportFileName}
}

// Load reads the whole export. The file is closed on every path.
func (s *fileSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	return data, nil
}
