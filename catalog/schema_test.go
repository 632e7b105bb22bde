package catalog

import (
	"encoding/json"
	"testing"

	"github.com/castlist-cli/castlist/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSchema(t *testing.T) {
	Convey("Given the catalog schema", t, func() {
		schema := Schema()

		Convey("It defines every type of the tree", func() {
			for _, name := range []string{"Catalog", "Item", "Info", "Track", "Metadata", "Image"} {
				So(schema.Definitions, ShouldContainKey, name)
			}
		})

		Convey("Enumerations are closed", func() {
			track := schema.Definitions["Track"]
			kind, ok := track.Properties.Get("type")
			So(ok, ShouldBeTrue)
			So(kind.Enum, ShouldContain, media.TrackTypeText)
			So(kind.Enum, ShouldHaveLength, 4)
		})

		Convey("Parents are not part of the output", func() {
			item := schema.Definitions["Item"]
			_, ok := item.Properties.Get("Parent")
			So(ok, ShouldBeFalse)
			_, ok = item.Properties.Get("items")
			So(ok, ShouldBeTrue)
		})

		Convey("It serializes", func() {
			_, err := json.Marshal(schema)
			So(err, ShouldBeNil)
		})
	})
}
