package store

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"sigreg/internal/domain"
)

// Names signal-cli creates under its data directory once an account exists.
const (
	accountsFile = "accounts.json"
	identityDir  = "identity"
	profilesDir  = "profiles"
)

// DefaultMarkers lists the marker names in the order they are checked.
var DefaultMarkers = []string{accountsFile, identityDir, profilesDir}

// DefaultDataDirs returns the candidate signal-cli data directories for home,
// followed by the fixed locations used when running as root in a container.
func DefaultDataDirs(home string) []string {
	var dirs []string
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "signal-cli", "data"),
			filepath.Join(home, ".config", "signal-cli", "data"),
		)
	}
	return append(dirs,
		"/root/.local/share/signal-cli/data",
		"/root/.config/signal-cli/data",
	)
}

// AccountDataStore inspects signal-cli data directories for account markers.
// It never writes.
type AccountDataStore struct {
	dirs    []string
	markers []string
	log     *zap.Logger
}

// NewAccountDataStore returns a store over dirs, checked in order. Blank and
// duplicate entries are dropped.
func NewAccountDataStore(dirs, markers []string, log *zap.Logger) *AccountDataStore {
	if log == nil {
		log = zap.NewNop()
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	clean := lo.FilterMap(dirs, func(d string, _ int) (string, bool) {
		d = strings.TrimSpace(d)
		if d == "" {
			return "", false
		}
		return filepath.Clean(d), true
	})
	return &AccountDataStore{
		dirs:    lo.Uniq(clean),
		markers: markers,
		log:     log,
	}
}

// Dirs returns the candidate directories in check order.
func (s *AccountDataStore) Dirs() []string { return append([]string(nil), s.dirs...) }

// Find returns the first marker that exists. Unreadable directories are
// logged and skipped.
func (s *AccountDataStore) Find(ctx context.Context) (domain.Probe, bool) {
	for _, dir := range s.dirs {
		if ctx.Err() != nil {
			break
		}
		s.logListing(dir)
		for _, marker := range s.markers {
			p := s.probe(dir, marker)
			if p.Found {
				s.log.Info("account data found", zap.String("marker", marker), zap.String("path", p.Path))
				return p, true
			}
		}
	}
	return domain.Probe{}, false
}

// Inspect checks every marker in every directory.
func (s *AccountDataStore) Inspect(ctx context.Context) []domain.Probe {
	out := make([]domain.Probe, 0, len(s.dirs)*len(s.markers))
	for _, dir := range s.dirs {
		if ctx.Err() != nil {
			break
		}
		s.logListing(dir)
		for _, marker := range s.markers {
			out = append(out, s.probe(dir, marker))
		}
	}
	return out
}

func (s *AccountDataStore) logListing(dir string) {
	names, err := listDir(dir)
	if err != nil {
		s.log.Debug("cannot list directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	if names == nil {
		s.log.Info("directory does not exist", zap.String("dir", dir))
		return
	}
	s.log.Info("listing directory", zap.String("dir", dir), zap.Strings("entries", names))
}

func (s *AccountDataStore) probe(dir, marker string) domain.Probe {
	path := filepath.Join(dir, marker)
	s.log.Info("checking for marker", zap.String("path", path))
	found, err := exists(path)
	return domain.Probe{Dir: dir, Marker: marker, Path: path, Found: found, Err: err}
}

// Compile-time assertion that AccountDataStore implements domain.AccountProber.
var _ domain.AccountProber = (*AccountDataStore)(nil)
