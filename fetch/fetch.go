// Package fetch performs the single asynchronous manifest download behind a media list.
package fetch

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/castlist-cli/castlist/log"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is where a Fetcher is in its load cycle.
type State int

const (
	Idle State = iota
	InFlight
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handler receives the outcome of a load. Exactly one method is called per
// load that is neither cancelled nor superseded, on the fetch goroutine.
type Handler interface {
	Loaded(body []byte)
	Failed(err error)
}

// HandlerFuncs adapts a pair of funcs to Handler. Nil funcs are skipped.
type HandlerFuncs struct {
	OnLoaded func(body []byte)
	OnFailed func(err error)
}

func (h HandlerFuncs) Loaded(body []byte) {
	if h.OnLoaded != nil {
		h.OnLoaded(body)
	}
}

func (h HandlerFuncs) Failed(err error) {
	if h.OnFailed != nil {
		h.OnFailed(err)
	}
}

// Fetcher downloads one URL at a time. Starting a load abandons the
// previous one; Cancel abandons the current one. Abandoned loads never
// reach their handler.
type Fetcher struct {
	client *http.Client

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State
}

// New returns a Fetcher using client, or http.DefaultClient when nil.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Load starts a GET for rawURL and returns immediately.
func (f *Fetcher) Load(rawURL string, h Handler) {
	ctx, cancel := context.WithCancel(context.Background())

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	gen := f.gen
	f.cancel = cancel
	f.state = InFlight
	f.mu.Unlock()

	entry := log.WithFields(logrus.Fields{
		"load": uuid.NewString(),
		"url":  rawURL,
	})
	entry.Info("loading media list")
	go f.run(ctx, entry, gen, rawURL, h)
}

// Cancel aborts the in-flight request, if any. Once Cancel returns no
// callback fires for that request.
func (f *Fetcher) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel == nil {
		return
	}
	f.cancel()
	f.cancel = nil
	f.gen++
	f.state = Idle
	log.Debug("media list load cancelled")
}

// State reports the state of the most recent load.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Fetcher) run(ctx context.Context, entry *logrus.Entry, gen uint64, rawURL string, h Handler) {
	body, err := f.get(ctx, entry, rawURL)
	if !f.finish(gen, err) {
		return
	}

	if err != nil {
		h.Failed(err)
		return
	}
	h.Loaded(body)
}

// finish records the outcome of load gen and reports whether it is still
// the current load and should be delivered.
func (f *Fetcher) finish(gen uint64, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		return false
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if err != nil {
		f.state = Failed
	} else {
		f.state = Completed
	}
	return true
}

func (f *Fetcher) get(ctx context.Context, entry *logrus.Entry, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			entry.Errorf("http request failed with %v", err)
		}
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	entry.WithField("status", resp.StatusCode).Infof("http request completed with %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	return body, nil
}
