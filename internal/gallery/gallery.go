// Package gallery drives the image carousel shown on the product detail
// view: one active image over a fixed, deduplicated source list, with
// wraparound navigation and thumbnail sync.
package gallery

import (
	"fmt"

	"github.com/Anjelho/lindilove/internal/catalog"
)

// PlaceholderImage stands in for products published without a primary image.
const PlaceholderImage = "images/gallery-1.svg"

// placeholderGallery backs products that declare no gallery of their own.
var placeholderGallery = []string{
	"images/gallery-1.svg",
	"images/gallery-2.svg",
	"images/gallery-3.svg",
}

// scrollSlack absorbs sub-pixel rounding when comparing strip widths.
const scrollSlack = 4

// PrimaryImage returns the product image, or the placeholder when the
// product has none.
func PrimaryImage(p catalog.Product) string {
	if p.Image != "" {
		return p.Image
	}
	return PlaceholderImage
}

// Sources builds the carousel's ordered image list: the primary image first,
// then the product gallery or the placeholder set when the gallery is empty.
// Duplicates collapse, keeping the first occurrence.
func Sources(p catalog.Product) []string {
	raw := []string{PrimaryImage(p)}
	if len(p.Gallery) > 0 {
		raw = append(raw, p.Gallery...)
	} else {
		raw = append(raw, placeholderGallery...)
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, src := range raw {
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true
		out = append(out, src)
	}
	return out
}

// View is the rendering collaborator notified on every transition. The
// navigator owns only the state; markup stays outside.
type View interface {
	ShowImage(src string)
	MarkThumb(index int)
	ScrollThumbIntoView(index int)
	SetNavHidden(hidden bool)
}

// Navigator tracks the active carousel image for one product detail view.
// It is constructed when the view is shown and discarded with it.
type Navigator struct {
	sources []string
	active  int
	view    View

	stripWidth    int
	viewportWidth int
}

// NewNavigator seeds the navigator with the product's sources and applies
// the initial selection immediately.
func NewNavigator(p catalog.Product, view View) *Navigator {
	n := &Navigator{sources: Sources(p), view: view}
	_ = n.Select(0)
	return n
}

// Sources returns the precomputed image list.
func (n *Navigator) Sources() []string { return n.sources }

// Active returns the current index.
func (n *Navigator) Active() int { return n.active }

// Select makes the i-th source active and syncs the view. An index outside
// the strip is a caller bug: it is reported, never applied.
func (n *Navigator) Select(i int) error {
	if i < 0 || i >= len(n.sources) {
		return fmt.Errorf("gallery: index %d out of range [0,%d)", i, len(n.sources))
	}

	n.active = i
	if n.view != nil {
		n.view.ShowImage(n.sources[i])
		n.view.MarkThumb(i)
		n.view.ScrollThumbIntoView(i)
	}
	n.syncNav()
	return nil
}

// Next advances with wraparound.
func (n *Navigator) Next() {
	_ = n.Select((n.active + 1) % len(n.sources))
}

// Prev retreats with wraparound.
func (n *Navigator) Prev() {
	_ = n.Select((n.active - 1 + len(n.sources)) % len(n.sources))
}

// Resize records the thumbnail strip geometry and recomputes whether the
// prev/next controls are needed.
func (n *Navigator) Resize(stripWidth, viewportWidth int) {
	n.stripWidth = stripWidth
	n.viewportWidth = viewportWidth
	n.syncNav()
}

// syncNav hides the navigation controls while the strip fits its viewport.
func (n *Navigator) syncNav() {
	if n.view == nil {
		return
	}
	canScroll := n.stripWidth > n.viewportWidth+scrollSlack
	n.view.SetNavHidden(!canScroll)
}
