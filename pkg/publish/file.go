package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/welgo/internal/errors"
)

// FileSink writes pages into a directory on the local filesystem.
type FileSink struct {
	dir string
}

// NewFileSink creates a FileSink rooted at dir. The directory is created
// when missing.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E060").
			WithDetail(fmt.Sprintf("Could not create %s.", dir)).
			Wrap(err)
	}
	return &FileSink{dir: dir}, nil
}

// Put writes content to dir/key through a temporary file so readers never
// observe a partial page.
func (s *FileSink) Put(ctx context.Context, key string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.New("E060").Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".welgo-*")
	if err != nil {
		return errors.New("E060").Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.New("E060").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New("E060").Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.New("E060").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.New("E060").Wrap(err)
	}
	return nil
}

// Location returns the file path for key.
func (s *FileSink) Location(key string) string {
	p, err := s.path(key)
	if err != nil {
		return filepath.Join(s.dir, key)
	}
	return p
}

// path resolves key inside the sink directory, rejecting keys that escape
// it.
func (s *FileSink) path(key string) (string, error) {
	p := filepath.Join(s.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.dir, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.New("E060").
			WithDetail(fmt.Sprintf("Key %q resolves outside %s.", key, s.dir))
	}
	return p, nil
}
