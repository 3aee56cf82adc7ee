package services

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/repository"
)

type SyncState int32

const (
	SyncIdle SyncState = iota
	SyncFetching
	SyncReady
	SyncError
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncFetching:
		return "fetching"
	case SyncReady:
		return "ready"
	case SyncError:
		return "error"
	}
	return "unknown"
}

// Snapshot is one consistent view of catalog + resolved config. It is
// built whole by a single fetch cycle and swapped atomically; holders of
// an old snapshot keep seeing consistent old data.
type Snapshot struct {
	Version   int64                    `json:"version"`
	Catalog   *Catalog                 `json:"catalog"`
	Config    *entity.RestaurantConfig `json:"config"` // nil = both sources absent
	FetchedAt time.Time                `json:"fetchedAt"`
}

type SnapshotProvider interface {
	Snapshot() *Snapshot
}

type CatalogFetcher interface {
	ListCategories() ([]entity.Category, error)
	ListAvailableProducts() ([]entity.Product, error)
}

type SettingsFetcher interface {
	ListSettings() ([]entity.Setting, error)
	GetLegacyConfig() (*entity.MenuConfig, error)
}

// SyncService re-fetches catalog and configuration whenever the change
// feed fires. Overlapping fetches are allowed; each one carries a
// monotonically increasing sequence and a finished fetch is only applied
// while it is still the newest, so a slow stale fetch can never overwrite
// a fresher snapshot. Fetch failures keep the last good snapshot.
type SyncService struct {
	catalog  CatalogFetcher
	settings SettingsFetcher
	feed     *repository.ChangeFeed
	now      func() time.Time

	seq   atomic.Int64
	state atomic.Int32

	mu      sync.RWMutex
	applied int64
	snap    *Snapshot
	lastErr error

	onApply func(*Snapshot)
}

func NewSyncService(catalog CatalogFetcher, settings SettingsFetcher, feed *repository.ChangeFeed) *SyncService {
	return &SyncService{
		catalog:  catalog,
		settings: settings,
		feed:     feed,
		now:      time.Now,
		snap:     &Snapshot{Catalog: &Catalog{}},
	}
}

// OnApply registers the hook fired after every applied snapshot (used to
// push "menu.updated" over the websocket hub). Set before Run.
func (s *SyncService) OnApply(fn func(*Snapshot)) {
	s.onApply = fn
}

// Run performs the initial fetch and then services change notifications
// until the context ends. Each notification spawns its own fetch; no
// debouncing.
func (s *SyncService) Run(ctx context.Context) {
	ch := s.feed.Subscribe()
	defer s.feed.Unsubscribe(ch)

	s.Refresh()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			go s.Refresh()
		}
	}
}

// Refresh runs one full fetch cycle: categories, products, settings,
// legacy row, then config resolution.
func (s *SyncService) Refresh() {
	seq := s.seq.Add(1)
	s.state.Store(int32(SyncFetching))

	cats, err := s.catalog.ListCategories()
	if err != nil {
		s.fail(err)
		return
	}
	products, err := s.catalog.ListAvailableProducts()
	if err != nil {
		s.fail(err)
		return
	}
	settings, err := s.settings.ListSettings()
	if err != nil {
		s.fail(err)
		return
	}
	legacy, err := s.settings.GetLegacyConfig()
	if err != nil {
		s.fail(err)
		return
	}

	snap := &Snapshot{
		Version:   seq,
		Catalog:   BuildCatalog(cats, products),
		Config:    ResolveConfig(PickSource(settings, legacy), s.now()),
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	if seq <= s.applied {
		// a newer fetch already landed; discard this one
		s.mu.Unlock()
		return
	}
	s.applied = seq
	s.snap = snap
	s.lastErr = nil
	s.state.Store(int32(SyncReady))
	fn := s.onApply
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

func (s *SyncService) fail(err error) {
	log.Println("menu sync fetch failed:", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.state.Store(int32(SyncError))
}

// Snapshot never returns nil; before the first successful fetch it is an
// empty catalog with absent config.
func (s *SyncService) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *SyncService) State() SyncState {
	return SyncState(s.state.Load())
}

func (s *SyncService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
