package history

import (
	"testing"
	"time"

	"github.com/castlist-cli/castlist/filesystem"
	"github.com/castlist-cli/castlist/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func urls(records []*Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.URL
	}
	return out
}

func TestHistory(t *testing.T) {
	Convey("Given remembering is enabled", t, func() {
		viper.Set(key.HistoryRemember, true)
		defer viper.Set(key.HistoryRemember, false)

		const (
			samples  = "https://example.com/samples/f.json"
			trailers = "https://example.com/trailers/list.json"
		)

		Convey("When loading manifests with different frequency", func() {
			So(Remember(samples, "Movies"), ShouldBeNil)
			So(Remember(trailers, "Trailers"), ShouldBeNil)
			So(Remember("  "+trailers+"  ", ""), ShouldBeNil)

			Convey("Then the most used comes first", func() {
				recent := Recent()
				So(len(recent), ShouldBeGreaterThanOrEqualTo, 2)
				So(recent[0].URL, ShouldEqual, trailers)
				So(recent[0].Title, ShouldEqual, "Trailers")
				So(recent[0].Rank, ShouldBeGreaterThan, recent[1].Rank)
			})

			Convey("Then suggestions match the url or the title", func() {
				So(Suggest("trailers").MustGet(), ShouldEqual, trailers)
				So(SuggestMany("movies"), ShouldContain, samples)
				So(Suggest("nothing like it").IsAbsent(), ShouldBeTrue)
			})

			Convey("Then a forgotten manifest is gone", func() {
				So(Forget(samples), ShouldBeNil)
				So(urls(Recent()), ShouldNotContain, samples)
				So(Remember(samples, "Movies"), ShouldBeNil)
			})
		})

		Convey("Blank urls are ignored", func() {
			before := len(Recent())
			So(Remember("   ", "Nothing"), ShouldBeNil)
			So(len(Recent()), ShouldEqual, before)
		})
	})

	Convey("Given remembering is disabled", t, func() {
		viper.Set(key.HistoryRemember, false)

		const url = "https://example.com/private/f.json"
		So(Remember(url, "Private"), ShouldBeNil)
		So(urls(Recent()), ShouldNotContain, url)
	})
}

func TestSortByRank(t *testing.T) {
	Convey("Ties in rank are broken by the latest load", t, func() {
		now := time.Now()
		records := []*Record{
			{URL: "a", Rank: 1, LastLoaded: now.Add(-time.Hour)},
			{URL: "b", Rank: 3, LastLoaded: now.Add(-2 * time.Hour)},
			{URL: "c", Rank: 1, LastLoaded: now},
		}
		sortByRank(records)
		So(urls(records), ShouldResemble, []string{"b", "c", "a"})
	})
}
