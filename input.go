// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

// Action identifies one logical viewer input. The host maps its own key
// bindings onto these.
type Action uint8

const (
	// ActionSelect cycles to the next viewer mode.
	ActionSelect Action = iota

	// ActionCancel closes the viewer.
	ActionCancel

	// ActionToggle is the host binding that opened the viewer; pressing
	// it again closes it.
	ActionToggle

	// ActionPause toggles the host simulation.
	ActionPause

	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd

	ActionZoomOut
	ActionZoomIn

	// ActionPrevGroup and ActionNextGroup move between palettes,
	// graphics sets/devices, or tilemap layers.
	ActionPrevGroup
	ActionNextGroup

	// ActionRotate advances the active view's orientation by 90°.
	ActionRotate

	// ActionSnapshot requests a one-shot batch export of the current
	// mode's resources.
	ActionSnapshot
)

// InputSource polls the host's input state once per frame.
type InputSource interface {
	// Pressed reports a single edge-triggered press of the action.
	Pressed(a Action) bool

	// PressedRepeat reports a press with key-repeat after the initial
	// delay; speed scales the repeat interval the way the host sees fit
	// (larger is slower).
	PressedRepeat(a Action, speed int) bool

	// FineStep and CoarseStep report the pan step modifiers.
	FineStep() bool
	CoarseStep() bool

	// Pointer returns the pointer position in normalized panel
	// coordinates; inside is false when the pointer is not over the
	// panel's render target.
	Pointer() (x, y float32, inside bool)
}

// nopInput is the default input source: nothing is ever pressed.
type nopInput struct{}

func (nopInput) Pressed(Action) bool               { return false }
func (nopInput) PressedRepeat(Action, int) bool    { return false }
func (nopInput) FineStep() bool                    { return false }
func (nopInput) CoarseStep() bool                  { return false }
func (nopInput) Pointer() (float32, float32, bool) { return 0, 0, false }
