package slider

// PointerKind discriminates pointer events on the input surface.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerRelease
)

// PointerEvent is a pointer sample delivered to drag subscribers. X is
// the horizontal offset in cells relative to the track origin; it may
// fall outside the track while a drag is in progress.
type PointerEvent struct {
	Kind PointerKind
	X    float64
}

// Disposer removes a subscription. Calling it more than once is a
// no-op.
type Disposer func()

// Surface fans pointer events out to subscribers. It models the
// document-level listener registry a dragging slider attaches to so it
// keeps receiving moves after the pointer leaves the track. Not safe
// for concurrent use; all access happens on the host's event loop.
type Surface struct {
	nextID      int
	subscribers map[int]func(PointerEvent)
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{subscribers: map[int]func(PointerEvent){}}
}

// Subscribe registers fn for every subsequent pointer event and returns
// the disposer that detaches it.
func (s *Surface) Subscribe(fn func(PointerEvent)) Disposer {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	disposed := false
	return func() {
		if disposed {
			return
		}
		disposed = true
		delete(s.subscribers, id)
	}
}

// Publish delivers ev to every live subscriber.
func (s *Surface) Publish(ev PointerEvent) {
	for _, fn := range s.subscribers {
		fn(ev)
	}
}

// Len reports the number of live subscriptions.
func (s *Surface) Len() int { return len(s.subscribers) }

// Controller binds a Machine to a Surface: it subscribes to
// surface-wide pointer events for the duration of a drag and detaches
// on release, cancel, or Close, whichever comes first.
type Controller struct {
	machine Machine
	surface *Surface
	dispose Disposer

	// OnEffect, when set, receives every effect produced by a
	// transition, in order.
	OnEffect func(Effect)
}

// NewController wires a machine to the surface it drags against.
func NewController(machine Machine, surface *Surface) *Controller {
	return &Controller{machine: machine, surface: surface}
}

// Machine returns the current machine snapshot.
func (c *Controller) Machine() Machine { return c.machine }

// State returns the current observable state.
func (c *Controller) State() State { return c.machine.State() }

// Press forwards a press at the given track offset and, if a drag
// started, attaches the surface subscription.
func (c *Controller) Press(offset float64) {
	c.apply(c.machine.Press(offset))
}

// Frame forwards an animation frame.
func (c *Controller) Frame() {
	c.apply(c.machine.Frame())
}

// Key forwards a keyboard action.
func (c *Controller) Key(action KeyAction) {
	c.apply(c.machine.Key(action))
}

// SetValue forwards an external value update.
func (c *Controller) SetValue(value float64) {
	c.apply(c.machine.SetValue(value))
}

// Focus and Blur forward focus changes.
func (c *Controller) Focus() { c.apply(c.machine.Focus()) }
func (c *Controller) Blur()  { c.apply(c.machine.Blur()) }

// Close detaches the surface subscription and ends any drag in
// progress. Safe to call repeatedly; the slider must call it on
// unmount so a mid-drag teardown cannot leak a subscription.
func (c *Controller) Close() {
	c.detach()
	c.apply(c.machine.Release())
}

func (c *Controller) apply(next Machine, effects []Effect) {
	c.machine = next
	for _, effect := range effects {
		switch effect.(type) {
		case DragStartEffect:
			c.attach()
		case DragStopEffect:
			c.detach()
		}
		if c.OnEffect != nil {
			c.OnEffect(effect)
		}
	}
}

func (c *Controller) attach() {
	if c.dispose != nil || c.surface == nil {
		return
	}
	c.dispose = c.surface.Subscribe(c.handlePointer)
}

func (c *Controller) detach() {
	if c.dispose == nil {
		return
	}
	c.dispose()
	c.dispose = nil
}

func (c *Controller) handlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		c.apply(c.machine.Move(ev.X))
	case PointerRelease:
		c.apply(c.machine.Release())
	}
}
