package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/castlist-cli/castlist/media"
	. "github.com/smartystreets/goconvey/convey"
)

const description = "The first Blender Open Movie from 2006 about two strange characters exploring a capricious and seemingly infinite machine"

func sampleCatalog() *catalog.Catalog {
	root := media.NewGroup("", "", nil)
	root.Append(media.NewLeaf(&media.Info{
		ContentID:   "https://example.com/mp4/ElephantsDream.mp4",
		ContentType: "video/mp4",
		StreamType:  media.StreamTypeBuffered,
		Duration:    653,
		Tracks: []media.Track{{
			ID:          1,
			Name:        "English",
			Type:        media.TrackTypeText,
			Subtype:     media.TextTrackSubtypeSubtitles,
			ContentID:   "https://example.com/tracks/ElephantsDream-en.vtt",
			ContentType: "text/vtt",
			Language:    "en-US",
		}},
		Metadata: media.Metadata{
			Type:        media.MetadataTypeMovie,
			Title:       "Elephants Dream",
			Studio:      "Blender Foundation",
			Description: description,
			Images:      []media.Image{{URL: "https://example.com/images/ElephantsDream.jpg", Width: 480, Height: 720}},
		},
	}, nil))

	return &catalog.Catalog{Title: "Movies", Root: root}
}

func TestTree(t *testing.T) {
	Convey("Given a decoded catalog", t, func() {
		cat := sampleCatalog()
		var out bytes.Buffer

		Convey("The tree lists the title, items and tracks", func() {
			So(Tree(&out, cat, Options{}), ShouldBeNil)
			text := out.String()

			So(text, ShouldContainSubstring, "Movies")
			So(text, ShouldContainSubstring, "1 item")
			So(text, ShouldContainSubstring, "Elephants Dream")
			So(text, ShouldContainSubstring, "10:53")
			So(text, ShouldContainSubstring, "Blender Foundation")
			So(text, ShouldContainSubstring, "English (en-US)")
			So(text, ShouldContainSubstring, "text/subtitles")
			So(text, ShouldNotContainSubstring, "https://")
		})

		Convey("URLs are printed on request", func() {
			So(Tree(&out, cat, Options{ShowURLs: true}), ShouldBeNil)
			text := out.String()

			So(text, ShouldContainSubstring, "https://example.com/mp4/ElephantsDream.mp4")
			So(text, ShouldContainSubstring, "https://example.com/tracks/ElephantsDream-en.vtt")
			So(text, ShouldContainSubstring, "https://example.com/images/ElephantsDream.jpg (480x720)")
		})

		Convey("Descriptions are wrapped to the width", func() {
			So(Tree(&out, cat, Options{Width: 30}), ShouldBeNil)

			var wrapped []string
			for _, line := range strings.Split(out.String(), "\n") {
				if strings.HasPrefix(line, "  ") && !strings.Contains(line, "English") {
					wrapped = append(wrapped, line)
				}
			}
			So(len(wrapped), ShouldBeGreaterThan, 1)
			for _, line := range wrapped {
				So(len(line), ShouldBeLessThanOrEqualTo, 30)
			}
		})

		Convey("A zero width leaves descriptions on one line", func() {
			So(Tree(&out, cat, Options{}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, description)
		})
	})
}

func TestSkipped(t *testing.T) {
	Convey("Skipped items are summarized", t, func() {
		var out bytes.Buffer
		skipped := []error{
			&catalog.ItemError{Index: 3, Title: "For Bigger Blazes", Err: &catalog.SourceNotFoundError{Format: "mp4"}},
			errors.New("item 5: broken"),
		}

		So(Skipped(&out, skipped), ShouldBeNil)
		text := out.String()
		So(text, ShouldContainSubstring, "2 items skipped")
		So(text, ShouldContainSubstring, `item 3 (For Bigger Blazes): no "mp4" source`)
		So(text, ShouldContainSubstring, "item 5: broken")
	})

	Convey("Nothing is printed when nothing was skipped", t, func() {
		var out bytes.Buffer
		So(Skipped(&out, nil), ShouldBeNil)
		So(out.Len(), ShouldEqual, 0)
	})
}

func TestMatches(t *testing.T) {
	Convey("Matches print title and duration", t, func() {
		cat := sampleCatalog()
		var out bytes.Buffer

		So(Matches(&out, cat.Root.Find("dream")), ShouldBeNil)
		So(out.String(), ShouldContainSubstring, "Elephants Dream")
		So(out.String(), ShouldContainSubstring, "10:53")
	})
}

func TestJSON(t *testing.T) {
	Convey("JSON output omits parents", t, func() {
		var out bytes.Buffer
		So(JSON(&out, sampleCatalog()), ShouldBeNil)

		text := out.String()
		So(text, ShouldContainSubstring, `"title": "Movies"`)
		So(text, ShouldContainSubstring, `"contentId": "https://example.com/mp4/ElephantsDream.mp4"`)
		So(text, ShouldNotContainSubstring, "Parent")
	})
}
