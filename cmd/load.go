package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/castlist-cli/castlist/fetch"
	"github.com/castlist-cli/castlist/history"
	"github.com/castlist-cli/castlist/icon"
	"github.com/castlist-cli/castlist/key"
	"github.com/castlist-cli/castlist/log"
	"github.com/castlist-cli/castlist/medialist"
	"github.com/castlist-cli/castlist/network"
	"github.com/castlist-cli/castlist/util"
	"github.com/spf13/viper"
)

// manifestURL picks the url argument, falling back to manifest.url.
func manifestURL(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return viper.GetString(key.ManifestURL)
}

// loadCatalog fetches and decodes url, blocking until done or interrupted.
func loadCatalog(url string) (*catalog.Catalog, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	list := medialist.New(
		fetch.New(network.FromConfig()),
		catalog.WithFormat(viper.GetString(key.ManifestFormat)),
		catalog.WithStrict(viper.GetBool(key.CatalogStrict)),
	)

	erase := util.PrintErasable(fmt.Sprintf("%s Loading %s", icon.Get(icon.Progress), url))
	cat, err := medialist.Await(ctx, list, url).Get()
	erase()

	if err != nil {
		return nil, err
	}

	if err := history.Remember(url, cat.Title); err != nil {
		log.Warnf("remembering %s: %v", url, err)
	}
	return cat, nil
}
