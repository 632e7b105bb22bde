// Package medialist is the model object behind the catalog: it fetches a
// manifest, decodes it into a tree and tells a listener how that went.
package medialist

import (
	"sync"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/castlist-cli/castlist/fetch"
	"github.com/castlist-cli/castlist/log"
	"github.com/castlist-cli/castlist/media"
)

// Listener is notified once per load that is not cancelled.
// Calls arrive on the fetch goroutine.
type Listener interface {
	MediaListLoaded(list *List)
	MediaListFailed(list *List, err error)
}

// ListenerFuncs adapts a pair of funcs to Listener. Nil funcs are skipped.
type ListenerFuncs struct {
	OnLoaded func(list *List)
	OnFailed func(list *List, err error)
}

func (l ListenerFuncs) MediaListLoaded(list *List) {
	if l.OnLoaded != nil {
		l.OnLoaded(list)
	}
}

func (l ListenerFuncs) MediaListFailed(list *List, err error) {
	if l.OnFailed != nil {
		l.OnFailed(list, err)
	}
}

// List owns one fetcher and the most recently decoded tree.
type List struct {
	fetcher *fetch.Fetcher
	decoder *catalog.Decoder

	mu       sync.Mutex
	listener Listener
	token    uint64
	catalog  *catalog.Catalog
	loaded   bool
}

// New returns an empty list loading through f. A nil f gets a fetcher on
// http.DefaultClient. Options are passed to the catalog decoder.
func New(f *fetch.Fetcher, opts ...catalog.Option) *List {
	if f == nil {
		f = fetch.New(nil)
	}
	return &List{
		fetcher: f,
		decoder: catalog.NewDecoder(opts...),
	}
}

// SetListener replaces the listener. Nil silences notifications.
func (l *List) SetListener(listener Listener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listener = listener
}

// Load drops the current tree and starts loading url. It returns at once.
func (l *List) Load(url string) {
	l.mu.Lock()
	l.token++
	token := l.token
	l.catalog = nil
	l.loaded = false
	l.mu.Unlock()

	l.fetcher.Load(url, fetch.HandlerFuncs{
		OnLoaded: func(body []byte) { l.onLoaded(token, body) },
		OnFailed: func(err error) { l.onFailed(token, err) },
	})
}

// CancelLoad abandons the in-flight load. The listener is not called for it.
func (l *List) CancelLoad() {
	l.mu.Lock()
	l.token++
	l.mu.Unlock()

	l.fetcher.Cancel()
}

// Root returns the tree of the last successful load, or nil.
func (l *List) Root() *media.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.catalog == nil {
		return nil
	}
	return l.catalog.Root
}

// Title is the name of the category the tree was built from.
func (l *List) Title() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.catalog == nil {
		return ""
	}
	return l.catalog.Title
}

func (l *List) IsLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Skipped lists the items the last decode left out.
func (l *List) Skipped() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.catalog == nil {
		return nil
	}
	return l.catalog.Skipped
}

// Catalog returns the full result of the last successful load, or nil.
func (l *List) Catalog() *catalog.Catalog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.catalog
}

func (l *List) onLoaded(token uint64, body []byte) {
	cat, err := l.decoder.Decode(body)
	if err != nil {
		log.Errorf("media list decoding failed: %v", err)
		l.onFailed(token, err)
		return
	}

	l.mu.Lock()
	if token != l.token {
		l.mu.Unlock()
		log.Debug("dropping decoded media list of a superseded load")
		return
	}
	l.catalog = cat
	l.loaded = true
	listener := l.listener
	l.mu.Unlock()

	log.Infof("media list loaded with %d items", len(cat.Root.Items))
	if listener != nil {
		listener.MediaListLoaded(l)
	}
}

func (l *List) onFailed(token uint64, err error) {
	l.mu.Lock()
	if token != l.token {
		l.mu.Unlock()
		return
	}
	listener := l.listener
	l.mu.Unlock()

	if listener != nil {
		listener.MediaListFailed(l, err)
	}
}
