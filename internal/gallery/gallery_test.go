package gallery

import (
	"reflect"
	"testing"

	"github.com/Anjelho/lindilove/internal/catalog"
)

type recordingView struct {
	shown     []string
	marked    []int
	scrolled  []int
	navHidden bool
}

func (v *recordingView) ShowImage(src string) { v.shown = append(v.shown, src) }
func (v *recordingView) MarkThumb(i int) { v.marked = append(v.marked, i) }
func (v *recordingView) ScrollThumbIntoView(i int) { v.scrolled = append(v.scrolled, i) }
func (v *recordingView) SetNavHidden(hidden bool) { v.navHidden = hidden }

func TestSourcesDeduplicates(t *testing.T) {
	p := catalog.Product{
		Image:   "a.svg",
		Gallery: []string{"b.svg", "a.svg", "b.svg", "c.svg"},
	}

	got := Sources(p)

	if !reflect.DeepEqual(got, []string{"a.svg", "b.svg", "c.svg"}) {
		t.Fatalf("sources = %v", got)
	}
}

func TestSourcesPlaceholderSet(t *testing.T) {
	got := Sources(catalog.Product{})

	want := []string{"images/gallery-1.svg", "images/gallery-2.svg", "images/gallery-3.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sources = %v, want placeholder set", got)
	}
}

func TestSourcesPrimaryFirst(t *testing.T) {
	p := catalog.Product{Image: "hero.svg", Gallery: []string{"g1.svg"}}

	got := Sources(p)

	if !reflect.DeepEqual(got, []string{"hero.svg", "g1.svg"}) {
		t.Fatalf("sources = %v", got)
	}
}

func TestNavigatorInitialSelection(t *testing.T) {
	view := &recordingView{}
	n := NewNavigator(catalog.Product{Image: "a.svg", Gallery: []string{"b.svg"}}, view)

	if n.Active() != 0 {
		t.Fatalf("active = %d, want 0", n.Active())
	}
	if !reflect.DeepEqual(view.shown, []string{"a.svg"}) {
		t.Fatalf("shown = %v", view.shown)
	}
	if !reflect.DeepEqual(view.marked, []int{0}) {
		t.Fatalf("marked = %v", view.marked)
	}
}

func TestNavigatorWraparound(t *testing.T) {
	p := catalog.Product{Image: "a.svg", Gallery: []string{"b.svg", "c.svg"}}
	n := NewNavigator(p, nil)

	if len(n.Sources()) != 3 {
		t.Fatalf("sources = %v, want 3", n.Sources())
	}

	if err := n.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	n.Next()
	if n.Active() != 0 {
		t.Fatalf("next at end: active = %d, want 0", n.Active())
	}

	n.Prev()
	if n.Active() != 2 {
		t.Fatalf("prev at start: active = %d, want 2", n.Active())
	}
}

func TestNavigatorInvalidSelect(t *testing.T) {
	n := NewNavigator(catalog.Product{Image: "a.svg", Gallery: []string{"b.svg"}}, nil)
	_ = n.Select(1)

	if err := n.Select(5); err == nil {
		t.Fatal("out-of-range select should report an error")
	}
	if err := n.Select(-1); err == nil {
		t.Fatal("negative select should report an error")
	}
	if n.Active() != 1 {
		t.Fatalf("invalid select changed state: active = %d", n.Active())
	}
}

func TestNavigatorNavVisibility(t *testing.T) {
	view := &recordingView{}
	n := NewNavigator(catalog.Product{Image: "a.svg"}, view)

	// Strip fits its viewport (within slack): controls hidden.
	n.Resize(100, 100)
	if !view.navHidden {
		t.Fatal("nav should hide when the strip fits")
	}
	n.Resize(104, 100)
	if !view.navHidden {
		t.Fatal("nav should stay hidden within the slack")
	}

	n.Resize(200, 100)
	if view.navHidden {
		t.Fatal("nav should show when the strip overflows")
	}

	// Selection re-syncs visibility with the last geometry.
	view.navHidden = true
	_ = n.Select(1)
	if view.navHidden {
		t.Fatal("select should recompute nav visibility")
	}
}
