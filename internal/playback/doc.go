// Package playback maps a horizontal drag control onto playback speed and
// the pause applied between rendered snapshots.
//
// The [Controller] is a two-state machine (idle, dragging) fed by pointer
// events. Dragging the knob right raises the speed towards [MaxSpeed] and
// shrinks the delay towards zero; dragging it left does the opposite.
//
//	c := playback.New(playback.Rect{X: 2, Y: 1, W: 60, H: 1}, playback.Size{})
//	c.HandlePointer(playback.Event{Kind: playback.Press, X: 10, Y: 1})
//	time.Sleep(c.DelayDuration())
package playback
