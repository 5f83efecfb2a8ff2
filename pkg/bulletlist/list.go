package bulletlist

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/layout"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// Surface displays render trees. Each call replaces whatever was shown before;
// an empty tree means show nothing.
type Surface interface {
	Display(tree layout.Tree)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(tree layout.Tree)

func (f SurfaceFunc) Display(tree layout.Tree) { f(tree) }

// List binds a ListModel to a Surface. Mutating the model rebuilds the tree
// synchronously, before the setter returns.
type List struct {
	model       *model.ListModel
	surface     Surface
	unsubscribe func()
	builds      atomic.Uint64
}

// New creates a List with a default model and renders it once (empty).
func New(surface Surface) *List {
	return NewWithModel(surface, model.New())
}

// NewWithItems creates a List showing items with default styling.
func NewWithItems(surface Surface, items []string) *List {
	m := model.New()
	if items != nil {
		m.SetItems(items)
	}
	return NewWithModel(surface, m)
}

// NewWithModel creates a List over an existing model and renders it once.
func NewWithModel(surface Surface, m *model.ListModel) *List {
	l := &List{
		model:   m,
		surface: surface,
	}
	l.unsubscribe = m.Subscribe(l.rebuild)
	l.Render()
	return l
}

// Model returns the bound model. Its setters trigger rebuilds.
func (l *List) Model() *model.ListModel {
	return l.model
}

// Render rebuilds from the model's current state. Hosts that change state
// outside the model's setters call this to refresh.
func (l *List) Render() {
	l.rebuild(l.model.Snapshot())
}

// Builds returns the number of completed builds. Safe to call from any goroutine.
func (l *List) Builds() uint64 {
	return l.builds.Load()
}

// Close detaches the list from its model. Later model changes are ignored.
func (l *List) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

func (l *List) rebuild(snap model.Snapshot) {
	tree := layout.Build(snap)
	n := l.builds.Inc()

	logger := internal.GetInternalLogger()
	logger.Debug("Rebuilt bullet list",
		"build", n,
		"rows", len(tree.Rows),
		"strategy", tree.Strategy.String(),
		"bullet_mode", bulletMode(tree),
	)

	if l.surface != nil {
		l.surface.Display(tree)
	}
}

func bulletMode(tree layout.Tree) string {
	if tree.Empty() {
		return "none"
	}
	return tree.Rows[0].Bullet.Mode.String()
}
