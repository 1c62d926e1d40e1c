package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480},
			Event{Type: EventWindowResize, Width: 640, Height: 480}, true},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_H}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_H}, true},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1}, Event{}, false},
		{"motion", &sdl.MouseMotionEvent{X: 10, Y: 20, XRel: -3, YRel: 4},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DX: -3, DY: 4}, true},
		{"button", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 5, Y: 6, Button: sdl.BUTTON_LEFT, Clicks: 1},
			Event{Type: EventMouseDown, MouseX: 5, MouseY: 6, Button: ButtonLeft, Clicks: 1}, true},
		{"wheel flipped", &sdl.MouseWheelEvent{Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			Event{Type: EventMouseWheel, DY: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestButtonsAndWheel(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventMouseDown, Button: ButtonRight})
	in.Push(Event{Type: EventMouseWheel, DY: 1})
	in.Push(Event{Type: EventMouseWheel, DY: 2})

	assert.True(t, in.IsButtonDown(ButtonRight))
	assert.Equal(t, 3, in.Wheel())

	in.Reset()
	in.Push(Event{Type: EventMouseUp, Button: ButtonRight})
	assert.False(t, in.IsButtonDown(ButtonRight))
	assert.Zero(t, in.Wheel())
}
