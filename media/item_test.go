package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleTree() *Item {
	root := NewGroup("", "", nil)
	movies := NewGroup("Movies", "", nil)
	root.Append(movies)

	for _, title := range []string{"Big Buck Bunny", "Elephants Dream", "Sintel"} {
		movies.Append(NewLeaf(&Info{
			ContentID:  "https://example.com/" + title + ".mp4",
			StreamType: StreamTypeBuffered,
			Metadata: Metadata{
				Type:   MetadataTypeMovie,
				Title:  title,
				Images: []Image{{URL: "https://example.com/" + title + ".jpg", Width: 480, Height: 720}},
			},
		}, nil))
	}
	return root
}

func TestItem(t *testing.T) {
	Convey("Given a two-level tree", t, func() {
		root := sampleTree()
		movies := root.Items[0]

		Convey("Append links children back to their parent", func() {
			So(movies.Parent, ShouldEqual, root)
			for _, child := range movies.Items {
				So(child.Parent, ShouldEqual, movies)
			}
		})

		Convey("Leaves take title and image from their metadata", func() {
			leaf := movies.Items[0]
			So(leaf.Title, ShouldEqual, "Big Buck Bunny")
			So(leaf.ImageURL, ShouldEqual, "https://example.com/Big Buck Bunny.jpg")
			So(leaf.IsPlayable(), ShouldBeTrue)
			So(movies.IsPlayable(), ShouldBeFalse)
		})

		Convey("Len counts playable items only", func() {
			So(root.Len(), ShouldEqual, 3)
			So(movies.Items[1].Len(), ShouldEqual, 1)
		})

		Convey("Walk visits depth-first in order", func() {
			var seen []string
			var depths []int
			root.Walk(func(item *Item, depth int) bool {
				seen = append(seen, item.Title)
				depths = append(depths, depth)
				return true
			})
			So(seen, ShouldResemble, []string{"", "Movies", "Big Buck Bunny", "Elephants Dream", "Sintel"})
			So(depths, ShouldResemble, []int{0, 1, 2, 2, 2})
		})

		Convey("Walk can prune a subtree", func() {
			var visited int
			root.Walk(func(item *Item, _ int) bool {
				visited++
				return item.IsRoot()
			})
			So(visited, ShouldEqual, 2)
		})

		Convey("Path skips the untitled root", func() {
			So(movies.Items[2].Path(), ShouldResemble, []string{"Movies", "Sintel"})
			So(root.IsRoot(), ShouldBeTrue)
		})

		Convey("String falls back to the content URL", func() {
			leaf := NewLeaf(&Info{ContentID: "https://example.com/a.mp4"}, nil)
			So(leaf.String(), ShouldEqual, "https://example.com/a.mp4")
			So(movies.String(), ShouldEqual, "Movies")
		})
	})
}

func TestInfo(t *testing.T) {
	Convey("Given media information", t, func() {
		info := &Info{
			Duration: 596,
			Tracks: []Track{
				{ID: 1, Type: TrackTypeText, Subtype: TextTrackSubtypeCaptions},
				{ID: 2, Type: TrackTypeAudio},
			},
			Metadata: Metadata{Images: []Image{
				{URL: "thumb", Width: 480, Height: 720},
				{URL: "poster", Width: 780, Height: 1200},
			}},
		}

		Convey("Length converts seconds", func() {
			So(info.Length().Seconds(), ShouldEqual, 596.0)
		})

		Convey("TrackByID finds tracks", func() {
			track, ok := info.TrackByID(2)
			So(ok, ShouldBeTrue)
			So(track.Type, ShouldEqual, TrackTypeAudio)

			_, ok = info.TrackByID(3)
			So(ok, ShouldBeFalse)
		})

		Convey("Poster picks the largest image", func() {
			poster, ok := info.Metadata.Poster()
			So(ok, ShouldBeTrue)
			So(poster.URL, ShouldEqual, "poster")

			_, ok = (&Metadata{}).Poster()
			So(ok, ShouldBeFalse)
		})
	})

	Convey("FormatDuration", t, func() {
		So(FormatDuration(596), ShouldEqual, "9:56")
		So(FormatDuration(3725), ShouldEqual, "1:02:05")
		So(FormatDuration(0), ShouldEqual, "0:00")
	})
}
