package playback

import (
	"math"
	"time"
)

const (
	MaxSpeed = 2.0
	MaxDelay = 2.0
)

// State is the drag state of the controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Rect is an axis-aligned region. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Right() float64 { return r.X + r.W }

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Size is the knob footprint. The knob is vertically centered on the track.
type Size struct {
	W, H float64
}

type EventKind int

const (
	Press EventKind = iota
	Release
	Move
)

// Event is a pointer event in the same coordinate space as the track.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Controller owns the speed and delay state. It is not safe for concurrent
// use; the presentation loop is its only caller.
type Controller struct {
	track    Rect
	knob     Size
	knobLeft float64
	speed    float64
	delay    float64
	state    State
}

// New returns a controller with the knob centered, i.e. speed 1 and delay 1.
func New(track Rect, knob Size) *Controller {
	c := &Controller{track: track, knob: knob}
	c.SetSpeed(MaxSpeed / 2)
	return c
}

func (c *Controller) Speed() float64 { return c.speed }

func (c *Controller) Delay() float64 { return c.delay }

func (c *Controller) DelayDuration() time.Duration {
	return time.Duration(c.delay * float64(time.Second))
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Track() Rect { return c.track }

func (c *Controller) KnobLeft() float64 { return c.knobLeft }

// Knob returns the knob's current rectangle.
func (c *Controller) Knob() Rect {
	h := c.knob.H
	if h <= 0 {
		h = c.track.H
	}
	return Rect{X: c.knobLeft, Y: c.track.CenterY() - h/2, W: c.knob.W, H: h}
}

// HandlePointer applies one pointer event and reports whether it changed
// the controller.
func (c *Controller) HandlePointer(ev Event) bool {
	switch ev.Kind {
	case Press:
		if c.state == Idle && (c.Knob().Contains(ev.X, ev.Y) || c.track.Contains(ev.X, ev.Y)) {
			c.state = Dragging
			return true
		}
	case Release:
		if c.state == Dragging {
			c.state = Idle
			return true
		}
	case Move:
		if c.state == Dragging {
			c.moveTo(ev.X)
			return true
		}
	}
	return false
}

// SetSpeed places the knob so that it yields speed, clamped to [0, MaxSpeed].
func (c *Controller) SetSpeed(speed float64) {
	speed = math.Max(0, math.Min(MaxSpeed, speed))
	c.moveTo(c.track.X + speed/MaxSpeed*c.track.W)
}

// Nudge moves the knob by dx as if it had been dragged.
func (c *Controller) Nudge(dx float64) {
	c.moveTo(c.knobLeft + c.knob.W/2 + dx)
}

// SetTrack moves the control to a new region and keeps the current speed.
func (c *Controller) SetTrack(track Rect) {
	if track == c.track {
		return
	}
	speed := c.speed
	c.track = track
	c.SetSpeed(speed)
}

// moveTo centers the knob on px, clamped to the track, and recomputes
// speed and delay from the knob position.
func (c *Controller) moveTo(px float64) {
	half := c.knob.W / 2
	lo, hi := c.track.X, c.track.Right()-c.knob.W
	c.knobLeft = math.Max(lo, math.Min(px-half, hi))
	if c.track.W <= 0 {
		c.speed = 0
	} else {
		c.speed = (c.knobLeft + half - c.track.X) / c.track.W * MaxSpeed
	}
	c.delay = math.Max(0, MaxDelay-c.speed)
}
