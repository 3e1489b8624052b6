// Package ebitenscroll feeds Ebitengine pointer input into a
// [scrollkit.Coordinator].
//
// Call [Adapter.Update] once per tick from your game's Update method; it
// polls mouse and touch state, converts it into gesture samples along the
// coordinator's axis, and steps the fling simulation.
package ebitenscroll

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cafox/scrollkit"
)

// Adapter polls Ebitengine mouse and touch state into coordinator gesture
// samples. A touch in progress takes priority over the mouse; only the
// first touch drives the gesture, since the coordinator tracks one
// pointer.
type Adapter struct {
	co *scrollkit.Coordinator

	mouseDown bool

	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	touchDown   bool
}

// New creates an Adapter driving co.
func New(co *scrollkit.Coordinator) *Adapter {
	return &Adapter{co: co}
}

// Update polls input and advances the coordinator by one tick. Call it
// from ebiten.Game.Update.
func (a *Adapter) Update() error {
	dt := float32(1) / float32(ebiten.TPS())

	if err := a.pollTouch(dt); err != nil {
		return err
	}
	if !a.touchDown {
		if err := a.pollMouse(dt); err != nil {
			return err
		}
	}
	return a.co.Step(dt)
}

// axisPos picks the pointer component matching the coordinator's axis.
func (a *Adapter) axisPos(x, y int) float64 {
	if a.co.Axis() == scrollkit.Horizontal {
		return float64(x)
	}
	return float64(y)
}

func (a *Adapter) pollMouse(dt float32) error {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pos := a.axisPos(ebiten.CursorPosition())

	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.co.Press(pos)
	case pressed && a.mouseDown:
		return a.co.Move(pos, dt)
	case !pressed && a.mouseDown:
		a.mouseDown = false
		a.co.Release()
	}
	return nil
}

func (a *Adapter) pollTouch(dt float32) error {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])

	if a.touchDown {
		for _, id := range a.touchIDs {
			if id == a.activeTouch {
				pos := a.axisPos(ebiten.TouchPosition(id))
				return a.co.Move(pos, dt)
			}
		}
		// Active touch lifted.
		a.touchDown = false
		a.co.Release()
		return nil
	}

	if len(a.touchIDs) > 0 {
		a.activeTouch = a.touchIDs[0]
		a.touchDown = true
		pos := a.axisPos(ebiten.TouchPosition(a.activeTouch))
		a.co.Press(pos)
	}
	return nil
}
