package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Style is the per-cell style of overlay content.
type Style struct {
	FG   string
	Bold bool
}

func (s Style) render(text string) string {
	st := lipgloss.NewStyle()
	if s.FG != "" {
		st = st.Foreground(lipgloss.Color(s.FG))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st.Render(text)
}

type cell struct {
	r    rune
	st   Style
	set  bool
	cont bool // right half of a wide rune

	// Zero-width sequences written before and after the cell.
	pre, post string
}

// Canvas is a transparent cell layer composited over a rendered view.
// Writes outside the canvas are clipped.
type Canvas struct {
	w, h  int
	cells []cell
}

// NewCanvas creates an empty w x h canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{w: w, h: h, cells: make([]cell, w*h)}
}

func (cv *Canvas) Width() int  { return cv.w }
func (cv *Canvas) Height() int { return cv.h }

func (cv *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < cv.w && y < cv.h
}

func (cv *Canvas) at(x, y int) *cell {
	return &cv.cells[y*cv.w+x]
}

// Set writes a single-width rune at (x, y).
func (cv *Canvas) Set(x, y int, r rune, st Style) {
	if !cv.in(x, y) {
		return
	}
	c := cv.at(x, y)
	// Overwriting either half of a wide rune blanks the other half.
	if c.cont && x > 0 {
		prev := cv.at(x-1, y)
		prev.r = ' '
	}
	if x+1 < cv.w && cv.at(x+1, y).cont {
		next := cv.at(x+1, y)
		next.cont = false
		next.r = ' '
	}
	c.r, c.st, c.set, c.cont = r, st, true, false
}

// Text writes s starting at (x, y) and returns its width in cells. Wide
// runes occupy two cells.
func (cv *Canvas) Text(x, y int, s string, st Style) int {
	col := x
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		cv.Set(col, y, r, st)
		if w == 2 {
			cv.Set(col+1, y, ' ', st)
			if cv.in(col+1, y) && cv.in(col, y) {
				cv.at(col+1, y).cont = true
			} else if cv.in(col, y) {
				cv.at(col, y).r = ' '
			}
		}
		col += w
	}
	return col - x
}

// Mark brackets the rectangle (x0, y0)-(x1, y1), clipped to the canvas, with
// zero-width start and end sequences. It reports false when the rectangle is
// entirely outside.
func (cv *Canvas) Mark(x0, y0, x1, y1 int, start, end string) bool {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cv.w-1), min(y1, cv.h-1)
	if x0 > x1 || y0 > y1 {
		return false
	}
	cv.at(x0, y0).pre += start
	cv.at(x1, y1).post += end
	return true
}

// String renders the canvas over a blank background.
func (cv *Canvas) String() string {
	return cv.Over("")
}

// Over composites the canvas on top of bg, a rendered multi-line view that
// may contain ANSI styling. Uncovered cells show bg unchanged.
func (cv *Canvas) Over(bg string) string {
	bgLines := strings.Split(bg, "\n")
	out := make([]string, cv.h)
	for y := 0; y < cv.h; y++ {
		line := ""
		if y < len(bgLines) {
			line = bgLines[y]
		}
		out[y] = cv.row(y, fit(line, cv.w))
	}
	return strings.Join(out, "\n")
}

func (cv *Canvas) row(y int, line string) string {
	row := cv.cells[y*cv.w : (y+1)*cv.w]
	var b strings.Builder
	for x := 0; x < cv.w; {
		c := row[x]
		switch {
		case c.set:
			b.WriteString(c.pre)
			var run strings.Builder
			end := x
			for end < cv.w {
				d := row[end]
				if !d.set || d.st != c.st || (end > x && d.pre != "") {
					break
				}
				if !d.cont {
					run.WriteRune(d.r)
				}
				end++
				if d.post != "" {
					break
				}
			}
			b.WriteString(c.st.render(run.String()))
			b.WriteString(row[end-1].post)
			x = end
		case c.pre != "" || c.post != "":
			b.WriteString(c.pre)
			b.WriteString(ansi.Cut(line, x, x+1))
			b.WriteString(c.post)
			x++
		default:
			end := x + 1
			for end < cv.w && !row[end].set && row[end].pre == "" && row[end].post == "" {
				end++
			}
			b.WriteString(ansi.Cut(line, x, end))
			x = end
		}
	}
	return b.String()
}

// fit pads or truncates line to exactly w cells.
func fit(line string, w int) string {
	lw := ansi.StringWidth(line)
	switch {
	case lw > w:
		return ansi.Truncate(line, w, "")
	case lw < w:
		return line + strings.Repeat(" ", w-lw)
	}
	return line
}

func strWidth(s string) int {
	return ansi.StringWidth(s)
}
