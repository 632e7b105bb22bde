package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/castlist-cli/castlist/constant"
	"github.com/castlist-cli/castlist/log"
	"github.com/castlist-cli/castlist/media"
	"github.com/sirupsen/logrus"
)

// Catalog is the result of a successful decode.
type Catalog struct {
	// Title is the name of the category the items were taken from.
	Title string      `json:"title"`
	Root  *media.Item `json:"root"`
	// Skipped holds an *ItemError for every item left out of the tree.
	Skipped []error `json:"-"`
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithFormat selects the source "type" tag to play. Defaults to "mp4".
func WithFormat(format string) Option {
	return func(d *Decoder) {
		if format != "" {
			d.format = format
		}
	}
}

// WithStrict makes the first item-level problem fail the whole decode
// instead of skipping the item.
func WithStrict(strict bool) Option {
	return func(d *Decoder) {
		d.strict = strict
	}
}

// Decoder turns manifest bytes into a Catalog. It holds no state between
// calls and never touches the network.
type Decoder struct {
	format string
	strict bool
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{format: constant.DefaultVideoFormat}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode is shorthand for NewDecoder(opts...).Decode(data).
func Decode(data []byte, opts ...Option) (*Catalog, error) {
	return NewDecoder(opts...).Decode(data)
}

// bases are the per-category URLs relative locators are resolved against.
type bases struct {
	videos, images, tracks *url.URL
}

// Decode builds the tree from the first category carrying a "videos" list.
// Manifest-level problems are returned as errors matching ErrMalformed.
func (d *Decoder) Decode(data []byte) (*Catalog, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &MalformedError{Err: err}
	}

	if m.Categories == nil || string(m.Categories) == "null" {
		return nil, &MissingFieldError{Field: keyCategories}
	}
	if !isArray(m.Categories) {
		return nil, &MalformedError{Field: keyCategories, Reason: "not an array"}
	}

	var categories []json.RawMessage
	if err := json.Unmarshal(m.Categories, &categories); err != nil {
		return nil, &MalformedError{Field: keyCategories, Err: err}
	}

	for _, raw := range categories {
		if !isObject(raw) {
			continue
		}

		var probe categoryProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if !isArray(probe.Videos) {
			continue
		}

		return d.decodeCategory(raw)
	}

	return nil, ErrNoVideos
}

func (d *Decoder) decodeCategory(raw json.RawMessage) (*Catalog, error) {
	var c category
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &MalformedError{Reason: "category", Err: err}
	}

	var (
		b   bases
		err error
	)
	if b.videos, err = parseBase(keyMP4Base, c.MP4Base); err != nil {
		return nil, err
	}
	if b.images, err = parseBase(keyImagesBase, c.ImagesBase); err != nil {
		return nil, err
	}
	if b.tracks, err = parseBase(keyTracksBase, c.TracksBase); err != nil {
		return nil, err
	}

	cat := &Catalog{
		Title: deref(c.Name),
		Root:  media.NewGroup("", "", nil),
	}

	if err := d.decodeItems(c.Videos, cat, b); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"category": cat.Title,
		"items":    len(cat.Root.Items),
		"skipped":  len(cat.Skipped),
	}).Debug("decoded media list")

	return cat, nil
}

func (d *Decoder) decodeItems(videos []json.RawMessage, cat *Catalog, b bases) error {
	for i, raw := range videos {
		if !isObject(raw) {
			continue
		}

		var v video
		if err := json.Unmarshal(raw, &v); err != nil {
			if skipErr := d.skip(cat, &ItemError{Index: i, Err: err}); skipErr != nil {
				return skipErr
			}
			continue
		}

		info, err := d.decodeInfo(&v, b)
		if err != nil {
			if skipErr := d.skip(cat, &ItemError{Index: i, Title: deref(v.Title), Err: err}); skipErr != nil {
				return skipErr
			}
			continue
		}

		cat.Root.Append(media.NewLeaf(info, cat.Root))
	}
	return nil
}

// skip records an item anomaly, or returns it when decoding strictly.
func (d *Decoder) skip(cat *Catalog, err *ItemError) error {
	if d.strict {
		return &MalformedError{Reason: "strict decoding", Err: err}
	}

	log.WithField("item", err.Index).Warnf("skipping item: %v", err.Err)
	cat.Skipped = append(cat.Skipped, err)
	return nil
}

func (d *Decoder) decodeInfo(v *video, b bases) (*media.Info, error) {
	metadata, err := decodeMetadata(v, b.images)
	if err != nil {
		return nil, err
	}

	src, err := d.pickSource(v.Sources)
	if err != nil {
		return nil, err
	}

	if src.URL == nil {
		return nil, fmt.Errorf("%q source without url", d.format)
	}
	contentID, err := ResolveURL(*src.URL, b.videos)
	if err != nil {
		return nil, err
	}

	contentType := constant.DefaultVideoMimeType
	if src.Mime != nil {
		contentType = *src.Mime
	}

	if v.Duration == nil {
		return nil, errors.New(`missing required field "duration"`)
	}
	if *v.Duration < 0 {
		return nil, fmt.Errorf("negative duration %v", *v.Duration)
	}

	tracks, err := decodeTracks(v.Tracks, b.tracks)
	if err != nil {
		return nil, err
	}

	return &media.Info{
		ContentID:   contentID,
		ContentType: contentType,
		StreamType:  media.StreamTypeBuffered,
		Duration:    *v.Duration,
		Tracks:      tracks,
		Metadata:    metadata,
	}, nil
}

// pickSource returns the first source whose type equals the decoder's format.
func (d *Decoder) pickSource(sources []json.RawMessage) (*source, error) {
	for _, raw := range sources {
		if !isObject(raw) {
			continue
		}

		var s source
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s.Type != nil && *s.Type == d.format {
			return &s, nil
		}
	}
	return nil, &SourceNotFoundError{Format: d.format}
}

func decodeMetadata(v *video, imagesBase *url.URL) (media.Metadata, error) {
	md := media.Metadata{
		Type:        media.MetadataTypeMovie,
		Title:       deref(v.Title),
		Studio:      deref(v.Studio),
		Description: deref(v.Subtitle),
	}

	thumbnail, err := resolveOptional(v.Thumbnail, imagesBase)
	if err != nil {
		return md, err
	}
	if thumbnail != "" {
		md.Images = append(md.Images, media.Image{
			URL:    thumbnail,
			Width:  constant.ThumbnailWidth,
			Height: constant.ThumbnailHeight,
		})
	}

	poster, err := resolveOptional(v.Poster, imagesBase)
	if err != nil {
		return md, err
	}
	if poster != "" {
		md.PosterURL = poster
		md.Images = append(md.Images, media.Image{
			URL:    poster,
			Width:  constant.PosterWidth,
			Height: constant.PosterHeight,
		})
	}

	return md, nil
}
