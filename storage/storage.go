package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// CVFileName is the fixed name of the single CV slot. Every upload replaces
// the previous occupant; downloads always serve this exact name.
const CVFileName = "cv.pdf"

// PublicPrefix is the URL prefix under which the upload root is served.
const PublicPrefix = "/public/uploads"

const (
	imagesSubdir = "images"
	pdfSubdir    = "pdf"
)

// AssetStore places uploaded files on the local filesystem. It is a dumb
// placer: it never checks generated names for collisions and never deletes
// historical image files.
type AssetStore struct {
	root string
}

func New(root string) *AssetStore {
	return &AssetStore{root: root}
}

// Root returns the on-disk upload root directory.
func (s *AssetStore) Root() string {
	return s.root
}

// EnsureDirectories creates the image and pdf directories. Safe to call on
// every startup.
func (s *AssetStore) EnsureDirectories() error {
	for _, dir := range []string{s.imageDir(), s.pdfDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating upload directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *AssetStore) imageDir() string {
	return filepath.Join(s.root, imagesSubdir)
}

func (s *AssetStore) pdfDir() string {
	return filepath.Join(s.root, pdfSubdir)
}

func (s *AssetStore) cvPath() string {
	return filepath.Join(s.pdfDir(), CVFileName)
}

// SaveImage stores src under a freshly generated name that keeps the original
// file's extension, and returns the stored filename.
func (s *AssetStore) SaveImage(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.imageDir(), name))
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}
	return name, nil
}

// PublicImagePath returns the URL path a stored image is served under.
func (s *AssetStore) PublicImagePath(name string) string {
	return path.Join(PublicPrefix, imagesSubdir, name)
}

// SaveCV replaces the CV slot with the contents of src. The previous file is
// deleted before the new one is written; a concurrent download may observe the
// gap between the two.
func (s *AssetStore) SaveCV(src io.Reader) error {
	if err := os.Remove(s.cvPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing previous cv: %w", err)
	}

	dst, err := os.Create(s.cvPath())
	if err != nil {
		return fmt.Errorf("creating cv file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("writing cv file: %w", err)
	}
	return nil
}

// OpenCV opens the CV slot for reading and returns its size, read fresh from
// the filesystem. Returns an error wrapping os.ErrNotExist when the slot is
// empty.
func (s *AssetStore) OpenCV() (io.ReadCloser, int64, error) {
	info, err := os.Stat(s.cvPath())
	if err != nil {
		return nil, 0, fmt.Errorf("stat cv file: %w", err)
	}

	f, err := os.Open(s.cvPath())
	if err != nil {
		return nil, 0, fmt.Errorf("opening cv file: %w", err)
	}
	return f, info.Size(), nil
}
