package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/media"
)

// decodeTracks converts the "tracks" list of an item. Non-object entries are
// skipped. An empty result is nil so that "no tracks" is never an empty slice.
func decodeTracks(raws []json.RawMessage, base *url.URL) ([]media.Track, error) {
	var tracks []media.Track
	for i, raw := range raws {
		if !isObject(raw) {
			continue
		}

		var t track
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}

		contentID, err := resolveOptional(t.ContentID, base)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}

		var subtype media.TextTrackSubtype
		if t.Subtype != nil {
			subtype = media.ParseTextTrackSubtype(*t.Subtype)
		}

		tracks = append(tracks, media.Track{
			ID:          int(t.ID),
			Name:        deref(t.Name),
			Type:        media.ParseTrackType(deref(t.Type)),
			Subtype:     subtype,
			ContentID:   contentID,
			ContentType: constant.DefaultTrackMimeType,
			Language:    deref(t.Language),
		})
	}

	if len(tracks) == 0 {
		return nil, nil
	}
	return tracks, nil
}
