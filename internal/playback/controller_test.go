package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
)

const eps = 1e-9

var track = playback.Rect{X: 50, Y: 10, W: 700, H: 20}

func press(x, y float64) playback.Event { return playback.Event{Kind: playback.Press, X: x, Y: y} }
func release(x, y float64) playback.Event {
	return playback.Event{Kind: playback.Release, X: x, Y: y}
}
func move(x, y float64) playback.Event { return playback.Event{Kind: playback.Move, X: x, Y: y} }

var _ = Describe("Controller", func() {
	var c *playback.Controller

	Context("with a point knob", func() {
		BeforeEach(func() {
			c = playback.New(track, playback.Size{})
		})

		It("starts centered at speed 1 and delay 1", func() {
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Speed()).To(BeNumerically("~", 1.0, eps))
			Expect(c.Delay()).To(BeNumerically("~", 1.0, eps))
			Expect(c.DelayDuration()).To(Equal(time.Second))
		})

		It("maps the track origin to the slowest playback", func() {
			c.HandlePointer(press(400, 15))
			c.HandlePointer(move(track.X, 15))
			Expect(c.KnobLeft()).To(Equal(track.X))
			Expect(c.Speed()).To(BeNumerically("~", 0.0, eps))
			Expect(c.Delay()).To(BeNumerically("~", playback.MaxDelay, eps))
		})

		It("maps the right bound to the fastest playback", func() {
			c.HandlePointer(press(400, 15))
			c.HandlePointer(move(track.Right(), 15))
			Expect(c.Speed()).To(BeNumerically("~", playback.MaxSpeed, eps))
			Expect(c.Delay()).To(BeNumerically("~", 0.0, eps))
		})

		It("maps the center back to speed 1", func() {
			c.HandlePointer(press(60, 15))
			c.HandlePointer(move(100, 15))
			c.HandlePointer(move(track.X+track.W/2, 15))
			Expect(c.Speed()).To(BeNumerically("~", 1.0, eps))
			Expect(c.Delay()).To(BeNumerically("~", 1.0, eps))
		})

		It("clamps drags beyond either end", func() {
			c.HandlePointer(press(400, 15))
			c.HandlePointer(move(-500, 15))
			Expect(c.Speed()).To(BeNumerically("~", 0.0, eps))
			c.HandlePointer(move(5000, 15))
			Expect(c.Speed()).To(BeNumerically("~", 2.0, eps))
			Expect(c.Delay()).To(BeNumerically(">=", 0.0))
		})
	})

	Context("state machine", func() {
		BeforeEach(func() {
			c = playback.New(track, playback.Size{W: 10, H: 26})
		})

		It("ignores moves while idle", func() {
			Expect(c.HandlePointer(move(60, 15))).To(BeFalse())
			Expect(c.Speed()).To(BeNumerically("~", 1.0, eps))
		})

		It("ignores presses outside the track and knob", func() {
			Expect(c.HandlePointer(press(10, 15))).To(BeFalse())
			Expect(c.HandlePointer(press(400, 100))).To(BeFalse())
			Expect(c.State()).To(Equal(playback.Idle))
		})

		It("starts dragging on a press over the knob overhang", func() {
			// knob is taller than the track, so y=8 only hits the knob
			Expect(c.HandlePointer(press(400, 8))).To(BeTrue())
			Expect(c.State()).To(Equal(playback.Dragging))
		})

		It("does not move the knob on the press itself", func() {
			c.HandlePointer(press(60, 15))
			Expect(c.State()).To(Equal(playback.Dragging))
			Expect(c.Speed()).To(BeNumerically("~", 1.0, eps))
		})

		It("stops dragging on a release anywhere", func() {
			c.HandlePointer(press(400, 15))
			Expect(c.HandlePointer(release(-20, 900))).To(BeTrue())
			Expect(c.State()).To(Equal(playback.Idle))

			before := c.Speed()
			c.HandlePointer(move(60, 15))
			Expect(c.Speed()).To(Equal(before))
		})

		It("treats a stray release as a no-op", func() {
			Expect(c.HandlePointer(release(400, 15))).To(BeFalse())
		})

		It("offsets the pointer by half the knob width", func() {
			c.HandlePointer(press(400, 15))
			c.HandlePointer(move(0, 15))
			Expect(c.KnobLeft()).To(Equal(track.X))
			Expect(c.Speed()).To(BeNumerically("~", 5.0/700*2, eps))

			c.HandlePointer(move(2000, 15))
			Expect(c.KnobLeft()).To(Equal(track.Right() - 10))
			Expect(c.Speed()).To(BeNumerically("~", 695.0/700*2, eps))
		})

		It("keeps delay and speed inversely related", func() {
			c.HandlePointer(press(400, 15))
			for x := 0.0; x <= 800; x += 37 {
				c.HandlePointer(move(x, 15))
				Expect(c.Speed() + c.Delay()).To(BeNumerically("~", playback.MaxDelay, eps))
			}
		})
	})

	Context("keyboard helpers", func() {
		BeforeEach(func() {
			c = playback.New(track, playback.Size{})
		})

		It("places the knob for a requested speed", func() {
			c.SetSpeed(1.5)
			Expect(c.Speed()).To(BeNumerically("~", 1.5, eps))
			Expect(c.Delay()).To(BeNumerically("~", 0.5, eps))
			c.SetSpeed(9)
			Expect(c.Speed()).To(BeNumerically("~", 2.0, eps))
		})

		It("nudges like a drag", func() {
			c.Nudge(-35)
			Expect(c.Speed()).To(BeNumerically("~", 0.9, eps))
			c.Nudge(-10000)
			Expect(c.Speed()).To(BeNumerically("~", 0.0, eps))
		})

		It("keeps the speed when the track moves", func() {
			c.SetSpeed(0.5)
			c.SetTrack(playback.Rect{X: 0, Y: 0, W: 40, H: 1})
			Expect(c.Speed()).To(BeNumerically("~", 0.5, eps))
			Expect(c.Track().W).To(Equal(40.0))
		})
	})
})
