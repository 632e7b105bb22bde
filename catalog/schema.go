package catalog

import (
	"reflect"

	"github.com/castlist-cli/castlist/media"
	"github.com/invopop/jsonschema"
)

// enums lists the closed string types of the media model.
var enums = map[reflect.Type][]any{
	reflect.TypeOf(media.StreamType("")): {
		media.StreamTypeNone, media.StreamTypeBuffered, media.StreamTypeLive,
	},
	reflect.TypeOf(media.MetadataType("")): {
		media.MetadataTypeGeneric, media.MetadataTypeMovie,
	},
	reflect.TypeOf(media.TrackType("")): {
		media.TrackTypeUnknown, media.TrackTypeAudio, media.TrackTypeText, media.TrackTypeVideo,
	},
	reflect.TypeOf(media.TextTrackSubtype("")): {
		media.TextTrackSubtypeUnknown,
		media.TextTrackSubtypeCaptions,
		media.TextTrackSubtypeChapters,
		media.TextTrackSubtypeDescriptions,
		media.TextTrackSubtypeMetadata,
		media.TextTrackSubtypeSubtitles,
	},
}

// Schema describes the JSON form of a Catalog.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			values, ok := enums[t]
			if !ok {
				return nil
			}
			return &jsonschema.Schema{Type: "string", Enum: values}
		},
	}
	return r.Reflect(&Catalog{})
}
