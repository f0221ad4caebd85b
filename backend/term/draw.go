package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-listview/listview"
)

var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleDragged  = tcell.StyleDefault.Reverse(true).Bold(true)
	styleCursor   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleThumb    = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Dim(true)
)

// draw repaints the whole screen from the controller's row instructions.
func (d *Driver) draw(listRect listview.Rect) {
	d.screen.Clear()
	w, h := d.screen.Size()

	d.drawText(0, 0, w, d.title, styleHeader)
	d.drawStatus(0, h-1, w)

	for _, row := range d.ctrl.VisibleRows() {
		d.drawRow(row, listRect)
	}

	if cursor, ok := d.ctrl.InsertionCursor(); ok {
		y := int(cursor.Y)
		if y >= int(listRect.Y) && y < int(listRect.Y+listRect.H) {
			for x := int(cursor.X); x < int(cursor.X+cursor.W); x++ {
				d.screen.SetContent(x, y, '─', nil, styleCursor)
			}
		}
	}

	d.drawScrollbar(listRect, w)
	d.screen.Show()
}

// drawRow paints one row line. Terminal rows are one cell tall, so the rect
// height collapses to a single line at the rect's top.
func (d *Driver) drawRow(row listview.RowRect, listRect listview.Rect) {
	y := int(row.Rect.Y)
	if y < int(listRect.Y) || y >= int(listRect.Y+listRect.H) {
		return
	}

	style := styleDefault
	switch {
	case row.Dragged:
		style = styleDragged
	case d.ctrl.IsSelected(row.Index):
		style = styleSelected
	}

	prefix := "  "
	if d.ctrl.Expanded(row.Index) {
		prefix = "▾ "
	}

	label := prefix + d.rowText(row.Index)
	d.drawText(int(row.Rect.X), y, int(row.Rect.W), label, style)
}

// drawScrollbar paints the thumb in the rightmost column of the list area.
func (d *Driver) drawScrollbar(listRect listview.Rect, screenW int) {
	trackX := screenW - 1
	thumb, ok := d.ctrl.Viewport().ThumbRect(float32(trackX), listRect.Y, 1)
	if !ok {
		return
	}
	for y := int(listRect.Y); y < int(listRect.Y+listRect.H); y++ {
		style := styleStatus
		ch := '│'
		if y >= int(thumb.Y) && y < int(thumb.Y+thumb.H) {
			style = styleThumb
			ch = ' '
		}
		d.screen.SetContent(trackX, y, ch, nil, style)
	}
}

func (d *Driver) drawStatus(x, y, maxWidth int) {
	status := fmt.Sprintf("%d rows, %d selected | arrows move, left/right fold, del removes, drag with mouse, q quits",
		d.ctrl.Len(), len(d.ctrl.SelectedIndices()))
	d.drawText(x, y, maxWidth, status, styleStatus)
}

// drawText writes a string clipped to maxWidth cells, accounting for
// wide runes.
func (d *Driver) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, maxWidth, "…")
	col := x
	for _, r := range text {
		d.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
