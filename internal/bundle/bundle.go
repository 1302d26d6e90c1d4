// Package bundle gives read-only access to the assets shipped with the
// gallery: the landmark dataset and one JPEG per landmark.
package bundle

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	apperrors "landmark-gallery/internal/pkg/errors"
)

//go:embed resources
var embedded embed.FS

type Bundle struct {
	fsys fs.FS
}

// New wraps any file system. Resource names are resolved relative to its
// root.
func New(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// Embedded returns the resources compiled into the binary.
func Embedded() *Bundle {
	sub, err := fs.Sub(embedded, "resources")
	if err != nil {
		// fs.Sub only fails on an invalid literal path.
		panic(err)
	}
	return New(sub)
}

// Dir returns a bundle backed by a local directory.
func Dir(dir string) *Bundle {
	return New(os.DirFS(dir))
}

func (b *Bundle) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "resource name "+name)
	}
	f, err := b.fsys.Open(name)
	if err != nil {
		return nil, wrapOpenErr(name, err)
	}
	return f, nil
}

func (b *Bundle) ReadFile(name string) ([]byte, error) {
	f, err := b.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.Wrap(err, "read "+name)
	}
	return data, nil
}

// Names lists the resources with the given extension (".jpg"), without the
// extension, in lexical order.
func (b *Bundle) Names(ext string) ([]string, error) {
	matches, err := fs.Glob(b.fsys, "*"+ext)
	if err != nil {
		return nil, apperrors.Wrap(err, "list "+ext)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ext))
	}
	return names, nil
}

func wrapOpenErr(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.Wrap(apperrors.ErrNotFound, "couldn't find "+name+" in bundle")
	}
	return apperrors.Wrap(err, "couldn't open "+name)
}
