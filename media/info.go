package media

import (
	"fmt"
	"time"
)

// StreamType tells the receiver how the content is delivered.
type StreamType string

const (
	StreamTypeNone     StreamType = "NONE"
	StreamTypeBuffered StreamType = "BUFFERED"
	StreamTypeLive     StreamType = "LIVE"
)

// MetadataType names the shape of the metadata bag.
type MetadataType string

const (
	MetadataTypeGeneric MetadataType = "GENERIC"
	MetadataTypeMovie   MetadataType = "MOVIE"
)

// Info is the payload of a playable item.
type Info struct {
	// ContentID is the absolute URL of the stream.
	ContentID   string     `json:"contentId"`
	ContentType string     `json:"contentType"`
	StreamType  StreamType `json:"streamType"`
	// Duration in seconds.
	Duration float64  `json:"duration"`
	Tracks   []Track  `json:"tracks,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Length returns the duration as a time.Duration.
func (m *Info) Length() time.Duration {
	return time.Duration(m.Duration * float64(time.Second))
}

// TrackByID returns the track with the given identifier.
func (m *Info) TrackByID(id int) (Track, bool) {
	for _, t := range m.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// Metadata describes a movie for display.
type Metadata struct {
	Type   MetadataType `json:"metadataType"`
	Title  string       `json:"title,omitempty"`
	Studio string       `json:"studio,omitempty"`
	// Description holds the manifest "subtitle", which the catalog uses as a long description.
	Description string  `json:"description,omitempty"`
	PosterURL   string  `json:"posterUrl,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

// Image is a piece of artwork together with the size it is displayed at.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (img Image) String() string {
	return fmt.Sprintf("%s (%dx%d)", img.URL, img.Width, img.Height)
}

// Poster returns the largest image, if any.
func (md *Metadata) Poster() (Image, bool) {
	if len(md.Images) == 0 {
		return Image{}, false
	}
	best := md.Images[0]
	for _, img := range md.Images[1:] {
		if img.Width*img.Height > best.Width*best.Height {
			best = img
		}
	}
	return best, true
}

// FormatDuration renders seconds as h:mm:ss, or m:ss below an hour.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h, m, s := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
