// Package render prints decoded catalogs for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/castlist-cli/castlist/catalog"
	"github.com/castlist-cli/castlist/color"
	"github.com/castlist-cli/castlist/icon"
	"github.com/castlist-cli/castlist/media"
	"github.com/castlist-cli/castlist/style"
	"github.com/castlist-cli/castlist/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Options tune the tree output.
type Options struct {
	// ShowURLs prints content and artwork URLs under every item.
	ShowURLs bool
	// Width wraps descriptions. Zero disables wrapping.
	Width int
}

const step = 2

// Tree prints the catalog title followed by every item below the root.
func Tree(w io.Writer, cat *catalog.Catalog, opts Options) error {
	var b strings.Builder

	count := len(cat.Root.Items)
	b.WriteString(style.Title(cat.Title))
	b.WriteString(" ")
	b.WriteString(style.Faint(util.Quantify(count, "item", "items")))
	b.WriteString("\n")

	cat.Root.Walk(func(item *media.Item, depth int) bool {
		if item.IsRoot() {
			return true
		}
		writeItem(&b, item, depth, opts)
		return true
	})

	_, err := io.WriteString(w, b.String())
	return err
}

func writeItem(b *strings.Builder, item *media.Item, depth int, opts Options) {
	pad := uint((depth - 1) * step)

	if !item.IsPlayable() {
		line := fmt.Sprintf("%s %s", icon.Get(icon.Group), style.Bold(item.Title))
		b.WriteString(indent.String(line, pad))
		b.WriteString("\n")
		return
	}

	info := item.Info
	parts := []string{icon.Get(icon.Movie), style.Bold(item.String())}
	parts = append(parts, style.Fg(color.Gray)(media.FormatDuration(info.Duration)))
	if info.Metadata.Studio != "" {
		parts = append(parts, style.Italic(info.Metadata.Studio))
	}
	b.WriteString(indent.String(strings.Join(parts, " "), pad))
	b.WriteString("\n")

	body := pad + step
	if desc := info.Metadata.Description; desc != "" {
		b.WriteString(block(desc, body, opts.Width))
	}

	for _, track := range info.Tracks {
		line := fmt.Sprintf("%s %s %s", icon.Get(icon.Track), track, style.Faint(trackKind(track)))
		b.WriteString(indent.String(line, body))
		b.WriteString("\n")
		if opts.ShowURLs && track.ContentID != "" {
			b.WriteString(indent.String(style.Fg(color.Gray)(track.ContentID), body+step))
			b.WriteString("\n")
		}
	}

	if opts.ShowURLs {
		lines := []string{info.ContentID + " " + style.Faint(info.ContentType)}
		for _, img := range info.Metadata.Images {
			lines = append(lines, img.String())
		}
		for _, line := range lines {
			b.WriteString(indent.String(style.Fg(color.Gray)(line), body))
			b.WriteString("\n")
		}
	}
}

func trackKind(t media.Track) string {
	if t.Subtype == "" {
		return strings.ToLower(string(t.Type))
	}
	return strings.ToLower(string(t.Type) + "/" + string(t.Subtype))
}

// block wraps text to width minus the indentation, then indents it.
func block(text string, pad uint, width int) string {
	if avail := width - int(pad); width > 0 && avail > 0 {
		text = wordwrap.String(text, avail)
	}
	return indent.String(text, pad) + "\n"
}

// Skipped prints a summary of the items a decode left out.
func Skipped(w io.Writer, skipped []error) error {
	if len(skipped) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(style.Fg(color.Yellow)(util.Quantify(len(skipped), "item", "items") + " skipped"))
	b.WriteString("\n")
	for _, err := range skipped {
		b.WriteString(indent.String(style.Faint(err.Error()), step))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Matches prints search hits in the given order, each with the group it belongs to.
func Matches(w io.Writer, matches []media.Match) error {
	var b strings.Builder
	for _, m := range matches {
		line := icon.Get(icon.Movie) + " " + style.Bold(m.Item.String())
		if m.Item.Parent != nil {
			if path := m.Item.Parent.Path(); len(path) > 0 {
				line += " " + style.Faint(strings.Join(path, " / "))
			}
		}
		if m.Item.Info != nil {
			line += " " + style.Fg(color.Gray)(media.FormatDuration(m.Item.Info.Duration))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
