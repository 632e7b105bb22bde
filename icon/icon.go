// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/castlist-cli/castlist/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies one symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Group
	Movie
	Track
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", squares: "🟥"},
	Progress: {emoji: "👻", nerd: "", plain: "…", squares: "🟦"},
	Group:    {emoji: "📂", nerd: "", plain: "+", squares: "🟨"},
	Movie:    {emoji: "🎬", nerd: "", plain: "▶", squares: "🟪"},
	Track:    {emoji: "💬", nerd: "", plain: "~", squares: "⬜"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i, or "" for an unknown icon or variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
