// Package cursor keeps a selected row visible in a scrolling list.
package cursor

// Cursor tracks the selected position and the scroll offset of a list.
// The list length and viewport height are passed to methods rather than
// stored, since they change with the terminal size.
type Cursor struct {
	pos    int // selected position (0-indexed)
	offset int // first visible item index
	margin int // items kept visible above/below the cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Sync moves the cursor to pos and scrolls just enough to keep it visible
// with the margin. A jump from the last row to the first (wrap) resets the
// offset the same way.
func (c *Cursor) Sync(pos, listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	if height <= 0 {
		return
	}

	// Margin can't exceed half the viewport or the cursor would never settle.
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = min(max(c.offset, 0), max(listLen-height, 0))
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(start+height, listLen)
	return start, end
}
