package lazylist

import (
	"log"
	"strings"

	"github.com/idursun/lazyview/internal/lazy"
)

// Loader produces an item's real content. It is the expensive part: it runs
// as a command only after the item is revealed.
type Loader func() string

// Item is one lazily rendered entry of the list. Until its element is
// revealed it occupies placeholder lines; after reveal its loader runs and
// the produced content takes over.
type Item struct {
	id          int
	title       string
	loader      Loader
	placeholder int
	opts        []lazy.ElementOption

	el      *lazy.Element
	content []string
	loaded  bool
	loading bool
}

// NewItem creates an item whose placeholder occupies placeholderLines lines.
func NewItem(title string, placeholderLines int, loader Loader, opts ...lazy.ElementOption) *Item {
	if placeholderLines < 1 {
		placeholderLines = 1
	}
	return &Item{
		title:       title,
		loader:      loader,
		placeholder: placeholderLines,
		opts:        opts,
	}
}

// NewMultiItem tolerates callers wiring several content views to one item:
// that is a misconfiguration, reported and survived by using the first view.
func NewMultiItem(title string, placeholderLines int, loaders []Loader, opts ...lazy.ElementOption) *Item {
	var loader Loader
	if len(loaders) > 0 {
		loader = loaders[0]
	}
	if len(loaders) > 1 {
		log.Printf("lazylist: item %q has %d content views, using the first", title, len(loaders))
	}
	return NewItem(title, placeholderLines, loader, opts...)
}

// Revealed reports whether the element has crossed hidden→visible at least
// once or is currently visible.
func (i *Item) Revealed() bool {
	return i.loaded || i.loading || (i.el != nil && i.el.Visible())
}

// lines is the item's current rendered height: title plus content once
// loaded, the placeholder block otherwise.
func (i *Item) lines() int {
	if i.loaded {
		return 1 + len(i.content)
	}
	return i.placeholder
}

func (i *Item) setContent(content string) {
	i.content = strings.Split(content, "\n")
	i.loaded = true
	i.loading = false
}
