package lvgl

// Widget is the dispatch contract between a widget and its host.
// Hosts hold widgets polymorphically in their registry and call these
// methods instead of routing through shared callback chains.
type Widget interface {
	// OnStyleChanged is called when any style attribute feeding the widget
	// has changed. Implementations typically invalidate themselves.
	OnStyleChanged()

	// OnCleanup is called once when the host removes the widget.
	OnCleanup()

	// TypeID returns a stable identifier for the widget kind.
	TypeID() string
}

// Base provides the default widget behavior. Widgets embed or hold a Base
// and delegate to it, composing specialized handling around the defaults
// rather than chaining through an ancestor callback.
//
// Base raises (but never performs) redraws: Invalidate calls the host's
// hook, and the host owns batching and executing the actual redraw.
type Base struct {
	invalidate func()
}

// NewBase creates a Base with the given invalidate hook.
// A nil hook is allowed; Invalidate is then a no-op.
func NewBase(invalidate func()) *Base {
	return &Base{invalidate: invalidate}
}

// Invalidate signals the host that the widget needs to be redrawn.
func (b *Base) Invalidate() {
	if b.invalidate != nil {
		b.invalidate()
	}
}

// OnStyleChanged invalidates the widget; the default reaction to any
// style mutation.
func (b *Base) OnStyleChanged() {
	b.Invalidate()
}

// OnCleanup is a no-op; Base holds no resources.
func (b *Base) OnCleanup() {}
