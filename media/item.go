// Package media defines the catalog tree: groups of items whose leaves carry playable media information.
package media

import (
	"strings"
)

// Item is a node in the catalog tree. A group has Items, a playable leaf has Info.
// The root is always a group without Info.
type Item struct {
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	// Parent is a back-reference; the parent owns its children, never the reverse.
	Parent *Item `json:"-"`

	Items []*Item `json:"items,omitempty"`
	Info  *Info   `json:"media,omitempty"`
}

// NewGroup creates an empty group attached to parent. A nil parent makes a root.
func NewGroup(title, imageURL string, parent *Item) *Item {
	return &Item{Title: title, ImageURL: imageURL, Parent: parent}
}

// NewLeaf creates a playable item. Title and image are taken from the metadata.
func NewLeaf(info *Info, parent *Item) *Item {
	item := &Item{Info: info, Parent: parent}
	if info != nil {
		item.Title = info.Metadata.Title
		if len(info.Metadata.Images) > 0 {
			item.ImageURL = info.Metadata.Images[0].URL
		}
	}
	return item
}

// Append adds child to the end of i's children and points child back at i.
func (i *Item) Append(child *Item) {
	child.Parent = i
	i.Items = append(i.Items, child)
}

// IsPlayable reports whether the item carries media information.
func (i *Item) IsPlayable() bool {
	return i.Info != nil
}

// IsRoot reports whether the item has no parent.
func (i *Item) IsRoot() bool {
	return i.Parent == nil
}

// Len counts the playable items in the subtree rooted at i.
func (i *Item) Len() int {
	var n int
	i.Walk(func(item *Item, _ int) bool {
		if item.IsPlayable() {
			n++
		}
		return true
	})
	return n
}

// Walk visits i and its descendants depth-first, in order. depth is 0 for i.
// Returning false from fn skips that node's children.
func (i *Item) Walk(fn func(item *Item, depth int) bool) {
	i.walk(fn, 0)
}

func (i *Item) walk(fn func(*Item, int) bool, depth int) {
	if !fn(i, depth) {
		return
	}
	for _, child := range i.Items {
		child.walk(fn, depth+1)
	}
}

// Path returns the titles from the root down to i, skipping untitled nodes.
func (i *Item) Path() []string {
	var path []string
	for node := i; node != nil; node = node.Parent {
		if node.Title != "" {
			path = append(path, node.Title)
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func (i *Item) String() string {
	if i.Title != "" {
		return i.Title
	}
	if i.Info != nil {
		return i.Info.ContentID
	}
	return strings.Join(i.Path(), " / ")
}
