// Package term hosts a listview.Controller on a terminal screen using
// tcell. It adapts terminal key and mouse events into the engine's
// InputState and draws the controller's visible-row instructions as text
// lines, one terminal cell per height unit.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-listview/listview"
)

// RowText returns the label for row index.
type RowText func(index int) string

// Driver owns the tcell screen and the event loop.
type Driver struct {
	screen  tcell.Screen
	input   *listview.InputState
	ctrl    *listview.Controller
	rowText RowText
	title   string
	quit    bool
}

// NewDriver creates a driver over an initialized terminal screen.
func NewDriver(ctrl *listview.Controller, rowText RowText) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	return &Driver{
		screen:  screen,
		input:   listview.NewInputState(),
		ctrl:    ctrl,
		rowText: rowText,
		title:   "listview",
	}, nil
}

// SetTitle sets the header line text.
func (d *Driver) SetTitle(title string) {
	d.title = title
}

// Run processes terminal events until the user quits (q or Ctrl-C).
// Each event becomes one engine frame: reset input, apply the event,
// dispatch to the controller, redraw.
func (d *Driver) Run() error {
	defer d.screen.Fini()

	d.frame(nil)
	for !d.quit {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		d.frame(ev)
	}
	return nil
}

// Quit stops the event loop after the current event.
func (d *Driver) Quit() {
	d.quit = true
}

// frame runs one input+draw cycle.
func (d *Driver) frame(ev tcell.Event) {
	d.input.Reset()
	pressed := d.applyEvent(ev)

	w, h := d.screen.Size()
	// Header row on top, status row at the bottom, scrollbar column on the
	// right edge.
	listRect := listview.Rect{X: 0, Y: 1, W: float32(w - 1), H: float32(h - 2)}
	d.ctrl.HandleInput(d.input, listRect)

	// Terminal keys have no release events; emit the release right after
	// dispatch so the engine sees clean press edges.
	if pressed != listview.KeyNone {
		d.input.SetKey(pressed, false)
	}

	d.draw(listRect)
}

// applyEvent translates a tcell event into InputState changes and returns
// the engine key pressed, if any.
func (d *Driver) applyEvent(ev tcell.Event) listview.Key {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()

	case *tcell.EventKey:
		d.setModifiers(ev.Modifiers())
		key := mapKey(ev)
		if key == listview.KeyNone {
			switch ev.Rune() {
			case 'q', 'Q':
				d.quit = true
			}
			return listview.KeyNone
		}
		if ev.Key() == tcell.KeyCtrlC {
			d.quit = true
			return listview.KeyNone
		}
		d.input.SetKey(key, true)
		return key

	case *tcell.EventMouse:
		x, y := ev.Position()
		d.input.SetMousePos(float32(x), float32(y))
		d.setModifiers(ev.Modifiers())

		buttons := ev.Buttons()
		d.input.SetMouseButton(listview.MouseButtonLeft, buttons&tcell.Button1 != 0)
		d.input.SetMouseButton(listview.MouseButtonRight, buttons&tcell.Button2 != 0)

		switch {
		case buttons&tcell.WheelUp != 0:
			d.input.SetMouseWheel(1)
		case buttons&tcell.WheelDown != 0:
			d.input.SetMouseWheel(-1)
		}
	}
	return listview.KeyNone
}

func (d *Driver) setModifiers(mods tcell.ModMask) {
	d.input.ModShift = mods&tcell.ModShift != 0
	d.input.ModCtrl = mods&tcell.ModCtrl != 0
	d.input.ModAlt = mods&tcell.ModAlt != 0
}

// mapKey maps tcell keys to engine keys.
func mapKey(ev *tcell.EventKey) listview.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return listview.KeyUp
	case tcell.KeyDown:
		return listview.KeyDown
	case tcell.KeyLeft:
		return listview.KeyLeft
	case tcell.KeyRight:
		return listview.KeyRight
	case tcell.KeyPgUp:
		return listview.KeyPageUp
	case tcell.KeyPgDn:
		return listview.KeyPageDown
	case tcell.KeyHome:
		return listview.KeyHome
	case tcell.KeyEnd:
		return listview.KeyEnd
	case tcell.KeyDelete, tcell.KeyBackspace2:
		return listview.KeyDelete
	case tcell.KeyEnter:
		return listview.KeyEnter
	case tcell.KeyEscape:
		return listview.KeyEscape
	}
	switch ev.Rune() {
	case ' ':
		return listview.KeySpace
	}
	return listview.KeyNone
}
