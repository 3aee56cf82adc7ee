package repository

import (
	"sync"
)

// Table names used on the change feed.
const (
	TableCategories = "categories"
	TableProducts   = "products"
	TableSettings   = "settings"
	TableMenuConfig = "menu_config"
)

// TableChange is a change notification. It carries no row payload on
// purpose: subscribers must re-fetch rather than trust the event.
type TableChange struct {
	Table string
}

// ChangeFeed fans out write notifications from the repositories to
// subscribers. Sends never block; a subscriber that falls behind loses
// intermediate events, which is fine because every event means the same
// thing ("re-fetch").
type ChangeFeed struct {
	mu   sync.Mutex
	subs map[chan TableChange]struct{}
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[chan TableChange]struct{})}
}

func (f *ChangeFeed) Subscribe() chan TableChange {
	ch := make(chan TableChange, 16)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

func (f *ChangeFeed) Unsubscribe(ch chan TableChange) {
	f.mu.Lock()
	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
	f.mu.Unlock()
}

func (f *ChangeFeed) Publish(table string) {
	f.mu.Lock()
	for ch := range f.subs {
		select {
		case ch <- TableChange{Table: table}:
		default:
		}
	}
	f.mu.Unlock()
}
