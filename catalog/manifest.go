// Package catalog decodes a cast sample manifest into a media tree.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Manifest keys.
const (
	keyCategories = "categories"
	keyVideos     = "videos"
	keyName       = "name"
	keyMP4Base    = "mp4"
	keyImagesBase = "images"
	keyTracksBase = "tracks"
)

type manifest struct {
	Categories json.RawMessage `json:"categories"`
}

// categoryProbe only looks at "videos", so that categories which are never
// used cannot fail the decode with unrelated type mismatches.
type categoryProbe struct {
	Videos json.RawMessage `json:"videos"`
}

type category struct {
	Name       *string           `json:"name"`
	MP4Base    *string           `json:"mp4"`
	ImagesBase *string           `json:"images"`
	TracksBase *string           `json:"tracks"`
	Videos     []json.RawMessage `json:"videos"`
}

type video struct {
	Title     *string           `json:"title"`
	Studio    *string           `json:"studio"`
	Subtitle  *string           `json:"subtitle"`
	Thumbnail *string           `json:"image-480x270"`
	Poster    *string           `json:"image-780x1200"`
	Duration  *float64          `json:"duration"`
	Sources   []json.RawMessage `json:"sources"`
	Tracks    []json.RawMessage `json:"tracks"`
}

type source struct {
	Type *string `json:"type"`
	Mime *string `json:"mime"`
	URL  *string `json:"url"`
}

type track struct {
	ID        trackID `json:"id"`
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Subtype   *string `json:"subtype"`
	ContentID *string `json:"contentId"`
	Language  *string `json:"language"`
}

func isObject(raw json.RawMessage) bool {
	return firstByte(raw) == '{'
}

func isArray(raw json.RawMessage) bool {
	return firstByte(raw) == '['
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// trackID accepts both 7 and "7"; published manifests use either.
type trackID int

func (id *trackID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid track id %s", b)
	}
	*id = trackID(n)
	return nil
}
