package inventory

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/logging"
)

// Default permissions for snapshot files and their parent directories.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// LoadStatus describes how a store produced the snapshot it returned.
type LoadStatus int

// Load outcomes.
const (
	// LoadedExisting means the snapshot was read from the backing resource.
	LoadedExisting LoadStatus = iota
	// Bootstrapped means the resource was absent; an empty snapshot was
	// created and persisted (first run).
	Bootstrapped
	// RecoveredFromCorruption means the resource existed but could not be
	// parsed; an empty snapshot was persisted in its place. This is a
	// deliberate data-loss recovery path and is always logged.
	RecoveredFromCorruption
)

// String returns a human-readable load status.
func (s LoadStatus) String() string {
	switch s {
	case Bootstrapped:
		return "bootstrapped"
	case RecoveredFromCorruption:
		return "recovered"
	default:
		return "loaded"
	}
}

// Store persists the full inventory snapshot. Save must be all-or-nothing
// from the caller's perspective: a partial write is a failure, surfaced
// as an error and never retried automatically.
type Store interface {
	Load() (Snapshot, LoadStatus, error)
	Save(Snapshot) error
}

// FileStore persists the snapshot as a single UTF-8 YAML file, overwritten
// whole on every save. A second process pointed at the same file is out of
// scope; writes are last-writer-wins.
type FileStore struct {
	path   string
	logger *zerolog.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   path,
		logger: logging.Default(),
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot from disk. An absent file bootstraps an empty
// snapshot and persists it immediately; an unparsable file is logged,
// replaced by an empty snapshot, and that fallback is persisted.
func (s *FileStore) Load() (Snapshot, LoadStatus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Snapshot{}, LoadedExisting, errors.WrapIO("read", s.path, err)
		}

		snapshot := EmptySnapshot()
		if err := s.Save(snapshot); err != nil {
			return Snapshot{}, Bootstrapped, err
		}
		s.logger.Info().Str("path", s.path).Msg("Created new snapshot file")
		return snapshot, Bootstrapped, nil
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		// Accepted data-loss recovery: keep running on an empty snapshot
		// rather than refusing to start, but never silently.
		s.logger.Warn().
			Str("path", s.path).
			Err(err).
			Msg("Snapshot unreadable, falling back to empty state")

		snapshot = EmptySnapshot()
		if saveErr := s.Save(snapshot); saveErr != nil {
			return Snapshot{}, RecoveredFromCorruption, saveErr
		}
		return snapshot, RecoveredFromCorruption, nil
	}

	snapshot.Normalize()
	s.logger.Debug().
		Str("path", s.path).
		Int("products", len(snapshot.Products)).
		Int("sales", len(snapshot.Sales)).
		Msg("Snapshot loaded")
	return snapshot, LoadedExisting, nil
}

// Save serializes the snapshot and overwrites the backing file.
func (s *FileStore) Save(snapshot Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	// Write to a temp file in the same directory and rename over the
	// target so a failed write never leaves a truncated snapshot behind.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", s.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.WrapIO("write", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("close", s.path, err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("write", s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.WrapIO("write", s.path, err)
	}

	return nil
}
