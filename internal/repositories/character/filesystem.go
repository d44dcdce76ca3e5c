package character

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

const (
	// Extension marks the files the file store treats as characters
	Extension = ".json"

	filePerm = 0o644
)

type filesystemRepository struct {
	dir string
}

// FilesystemConfig contains configuration for the file-backed character repository.
type FilesystemConfig struct {
	// Dir holds one JSON file per character. Subdirectories are not scanned.
	Dir string
}

// Validate validates the FilesystemConfig.
func (cfg *FilesystemConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return errors.InvalidArgument("dir cannot be empty")
	}
	return nil
}

// NewFilesystem creates a new file-backed character repository
func NewFilesystem(cfg *FilesystemConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &filesystemRepository{
		dir: cfg.Dir,
	}, nil
}

// List returns the names of the .json files in the directory, in the order
// the directory is read (sorted by name). Other files and directories are
// ignored.
func (r *filesystemRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, r.fileError(err, r.dir, "failed to read directory")
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		keys = append(keys, entry.Name())
	}

	slog.DebugContext(ctx, "scanned character directory",
		"dir", r.dir,
		"entries", len(entries),
		"count", len(keys))

	return &ListOutput{Keys: keys}, nil
}

func (r *filesystemRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	path := r.path(input.Key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, r.fileError(err, path, "failed to read character")
	}

	char, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path).WithMeta("path", path)
	}

	slog.DebugContext(ctx, "loaded character",
		"path", path,
		"character_name", char.CharacterName)

	return &GetOutput{Character: char}, nil
}

func (r *filesystemRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := Marshal(input.Character)
	if err != nil {
		return nil, err
	}

	path := r.path(input.Key)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !input.Overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, filePerm)
	if err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return nil, errors.AlreadyExistsf("character file %s already exists", path).
				WithMeta("path", path)
		}
		return nil, r.fileError(err, path, "failed to create character file")
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close() // nolint:errcheck // the write error is the one worth reporting
		return nil, r.fileError(err, path, "failed to write character file")
	}
	if err := f.Close(); err != nil {
		return nil, r.fileError(err, path, "failed to close character file")
	}

	slog.DebugContext(ctx, "saved character",
		"path", path,
		"bytes", len(data))

	return &SaveOutput{Key: input.Key}, nil
}

func (r *filesystemRepository) path(key string) string {
	return filepath.Join(r.dir, key)
}

// fileError maps an os error onto NotFound or IO
func (r *filesystemRepository) fileError(err error, path, message string) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.WrapWithCode(err, errors.CodeNotFound, message).WithMeta("path", path)
	}
	return errors.WrapWithCode(err, errors.CodeIO, message).WithMeta("path", path)
}
