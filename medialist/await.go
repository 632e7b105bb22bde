package medialist

import (
	"context"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/samber/mo"
)

// Await loads url into list and blocks until the load finishes or ctx is
// done, in which case the load is cancelled and ctx's error returned.
// It replaces the list's listener.
func Await(ctx context.Context, list *List, url string) mo.Result[*catalog.Catalog] {
	done := make(chan mo.Result[*catalog.Catalog], 1)

	list.SetListener(ListenerFuncs{
		OnLoaded: func(l *List) {
			done <- mo.Ok(l.Catalog())
		},
		OnFailed: func(_ *List, err error) {
			done <- mo.Err[*catalog.Catalog](err)
		},
	})
	list.Load(url)

	select {
	case result := <-done:
		return result
	case <-ctx.Done():
		list.CancelLoad()
		return mo.Err[*catalog.Catalog](ctx.Err())
	}
}
