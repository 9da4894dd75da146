package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/linyuyun1234-arch/opcode/internal/registry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Directory and file name constants for the install layout.
const (
	ClaudeDir = ".claude"
	SkillsDir = "skills"
	SkillFile = "SKILL.md"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// entryIDPattern allows the characters used by registry directory names.
// Path separators, "..", whitespace and URL metacharacters are rejected.
var entryIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateEntryID rejects ids that could escape the install directory or
// alter the download URL.
func ValidateEntryID(id string) error {
	if !entryIDPattern.MatchString(id) || id == "." || id == ".." {
		return &apperr.Error{
			Kind: apperr.InvalidEntryID,
			Op:   "validating entry id",
			Err:  fmt.Errorf("%q must match %s", id, entryIDPattern.String()),
		}
	}
	return nil
}

// Destination returns the path SKILL.md is written to for entryID.
func Destination(rootDir, entryID string) string {
	return filepath.Join(rootDir, ClaudeDir, SkillsDir, entryID, SkillFile)
}

// Installer fetches and persists skill content.
type Installer struct {
	fs      afero.Fs
	fetcher fetch.Fetcher
	rawBase string
	source  registry.Registry
}

// Option configures an Installer.
type Option func(*Installer)

// WithFs sets the filesystem (useful for testing).
func WithFs(fs afero.Fs) Option {
	return func(i *Installer) {
		i.fs = fs
	}
}

// WithRegistry changes the registry content is downloaded from.
func WithRegistry(r registry.Registry) Option {
	return func(i *Installer) {
		i.source = r
	}
}

// New creates an Installer downloading from rawBase (normally
// https://raw.githubusercontent.com).
func New(f fetch.Fetcher, rawBase string, opts ...Option) *Installer {
	i := &Installer{
		fs:      afero.NewOsFs(),
		fetcher: f,
		rawBase: rawBase,
		source:  registry.Skills,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install downloads entryID's SKILL.md and writes it beneath rootDir,
// replacing any existing file. It returns the written path.
func (i *Installer) Install(ctx context.Context, rootDir, entryID string) (string, error) {
	if err := ValidateEntryID(entryID); err != nil {
		return "", err
	}

	op := "installing " + entryID
	url := i.source.RawURL(i.rawBase, entryID, SkillFile)

	resp, err := i.fetcher.Fetch(ctx, url, registry.RawHeaders())
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", apperr.New(apperr.TransportFailure, "GET "+url, errors.New("no response"))
	}
	if !resp.IsSuccess() {
		return "", apperr.Download(op, resp.StatusCode)
	}

	dest := Destination(rootDir, entryID)
	if err := i.fs.MkdirAll(filepath.Dir(dest), DirPerm); err != nil {
		return "", apperr.New(apperr.Filesystem, op, fmt.Errorf("creating %s: %w", filepath.Dir(dest), err))
	}
	if err := writeFileAtomic(i.fs, dest, resp.Body); err != nil {
		return "", apperr.New(apperr.Filesystem, op, err)
	}

	log.Debug().Str("entry", entryID).Str("path", dest).Int("bytes", len(resp.Body)).Msg("installed skill")
	return dest, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial SKILL.md.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := fs.Chmod(tmpName, FilePerm); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	return nil
}
