package constant

// DefaultManifestURL points at the public cast sample catalog.
const DefaultManifestURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/CastVideos/f.json"

// Content types assumed by the catalog decoder.
const (
	DefaultVideoMimeType = "video/mp4"
	DefaultTrackMimeType = "text/vtt"
)

// DefaultVideoFormat is the source "type" tag picked out of every item's sources.
const DefaultVideoFormat = "mp4"

// Display sizes attached to decoded artwork.
const (
	ThumbnailWidth  = 480
	ThumbnailHeight = 720
	PosterWidth     = 780
	PosterHeight    = 1200
)
