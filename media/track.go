package media

// TrackType is the kind of a supplementary stream.
type TrackType string

const (
	TrackTypeUnknown TrackType = "UNKNOWN"
	TrackTypeAudio   TrackType = "AUDIO"
	TrackTypeText    TrackType = "TEXT"
	TrackTypeVideo   TrackType = "VIDEO"
)

// ParseTrackType maps a manifest "type" value. Matching is exact and
// case-sensitive; anything else is TrackTypeUnknown.
func ParseTrackType(s string) TrackType {
	switch s {
	case "audio":
		return TrackTypeAudio
	case "text":
		return TrackTypeText
	case "video":
		return TrackTypeVideo
	default:
		return TrackTypeUnknown
	}
}

// TextTrackSubtype refines a text track. It is only meaningful for TrackTypeText.
type TextTrackSubtype string

const (
	TextTrackSubtypeUnknown      TextTrackSubtype = "UNKNOWN"
	TextTrackSubtypeCaptions     TextTrackSubtype = "CAPTIONS"
	TextTrackSubtypeChapters     TextTrackSubtype = "CHAPTERS"
	TextTrackSubtypeDescriptions TextTrackSubtype = "DESCRIPTIONS"
	TextTrackSubtypeMetadata     TextTrackSubtype = "METADATA"
	TextTrackSubtypeSubtitles    TextTrackSubtype = "SUBTITLES"
)

// ParseTextTrackSubtype maps a manifest "subtype" value, defaulting to TextTrackSubtypeUnknown.
func ParseTextTrackSubtype(s string) TextTrackSubtype {
	switch s {
	case "captions":
		return TextTrackSubtypeCaptions
	case "chapters":
		return TextTrackSubtypeChapters
	case "descriptions":
		return TextTrackSubtypeDescriptions
	case "metadata":
		return TextTrackSubtypeMetadata
	case "subtitles":
		return TextTrackSubtypeSubtitles
	default:
		return TextTrackSubtypeUnknown
	}
}

// Track is a caption, audio or video stream attached to a playable item.
type Track struct {
	ID          int              `json:"trackId"`
	Name        string           `json:"name,omitempty"`
	Type        TrackType        `json:"type"`
	Subtype     TextTrackSubtype `json:"subtype,omitempty"`
	ContentID   string           `json:"trackContentId,omitempty"`
	ContentType string           `json:"trackContentType"`
	Language    string           `json:"language,omitempty"`
}

func (t Track) String() string {
	switch {
	case t.Name != "" && t.Language != "":
		return t.Name + " (" + t.Language + ")"
	case t.Name != "":
		return t.Name
	case t.Language != "":
		return t.Language
	default:
		return string(t.Type)
	}
}
