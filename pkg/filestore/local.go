package filestore

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// DefaultMaxSize is the default upload size limit.
const DefaultMaxSize = 5 * 1024 * 1024 // 5 MiB

// DefaultAllowedTypes are the MIME types accepted by default. Entries may
// contain "*" wildcards.
var DefaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
	"image/heic",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// Local is a FileStore writing uploads to a directory on disk.
type Local struct {
	dir          string
	urlPrefix    string
	maxSize      int64
	allowedTypes []string
}

// LocalOption configures a Local file store.
type LocalOption func(*Local)

// WithMaxSize overrides the upload size limit.
func WithMaxSize(maxSize int64) LocalOption {
	return func(l *Local) {
		l.maxSize = maxSize
	}
}

// WithAllowedTypes overrides the accepted MIME types. Entries are glob
// patterns, so "image/*" accepts every image format.
func WithAllowedTypes(patterns []string) LocalOption {
	return func(l *Local) {
		l.allowedTypes = patterns
	}
}

// NewLocal returns a file store for the given directory. Stored files are
// referenced as urlPrefix + "/" + filename.
func NewLocal(dir, urlPrefix string, options ...LocalOption) (*Local, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	l := &Local{
		dir:          dir,
		urlPrefix:    strings.TrimSuffix(urlPrefix, "/"),
		maxSize:      DefaultMaxSize,
		allowedTypes: DefaultAllowedTypes,
	}

	for _, option := range options {
		option(l)
	}

	return l, nil
}

// Upload validates and stores the file, returning the URL to reference it
// by. The content type is sniffed from the contents, not taken from the
// filename.
func (l *Local) Upload(filename string, contents []byte) (string, error) {
	if len(contents) == 0 {
		return "", ErrEmptyFile
	}

	if int64(len(contents)) > l.maxSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(contents))
	}

	detected := mimetype.Detect(contents)
	if !l.typeAllowed(detected.String()) {
		return "", fmt.Errorf("%w: %s", ErrFileTypeInvalid, detected.String())
	}

	// Unique prefix plus a sanitized version of the original name.
	safeName := strings.ToLower(unsafeFilenameChars.ReplaceAllString(path.Base(filename), "_"))
	name := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), safeName)

	if err := os.WriteFile(filepath.Join(l.dir, name), contents, 0o644); err != nil {
		return "", err
	}

	log.Debug().Str("file", name).Str("type", detected.String()).Msg("stored upload")
	return l.urlPrefix + "/" + name, nil
}

// Delete removes the file a URL references. A file that no longer exists
// is not an error.
func (l *Local) Delete(url string) error {
	// Query parameters are not part of the stored name.
	cleanURL, _, _ := strings.Cut(url, "?")

	name := path.Base(cleanURL)
	if name == "" || name == "." || name == ".." || name == "/" {
		return fmt.Errorf("%w: %q", ErrURLInvalid, url)
	}

	// Resolve and make sure the path cannot escape the upload directory.
	target, err := filepath.Abs(filepath.Join(l.dir, name))
	if err != nil {
		return err
	}
	dir, err := filepath.Abs(l.dir)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(target, dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrURLInvalid, url)
	}

	err = os.Remove(target)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func (l *Local) typeAllowed(contentType string) bool {
	for _, pattern := range l.allowedTypes {
		if glob.Glob(pattern, contentType) {
			return true
		}
	}

	return false
}
