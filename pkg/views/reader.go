package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/library"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

// measure is the widest text column the reader uses.
const measure = 72

// Reader shows the excerpt of the current book in a scrollable column.
type Reader struct {
	vp viewport.Model

	// layout key of the content currently in vp
	book  string
	lang  menu.Language
	width int
}

// NewReader creates the reader page.
func NewReader() *Reader {
	return &Reader{vp: viewport.New(0, 0)}
}

func (r *Reader) ID() string { return menu.Reader }

// Reset scrolls back to the top.
func (r *Reader) Reset() tea.Cmd {
	r.vp.GotoTop()
	return nil
}

// ScrollPercent reports how far the column is scrolled.
func (r *Reader) ScrollPercent() float64 {
	return r.vp.ScrollPercent()
}

func (r *Reader) Update(tea.Msg) tea.Cmd { return nil }

func (r *Reader) HandleKey(_ app.Env, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return cmd
}

func (r *Reader) HandleMouse(_ app.Env, msg tea.MouseMsg) tea.Cmd {
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return cmd
}

func (r *Reader) View(env app.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if !env.HasBook {
		return app.Centered(width, height,
			env.Styles.Dim.Render("❡"),
			"",
			env.Styles.Dim.Render(tr(env.Lang).NoBook),
		)
	}

	col := min(measure, max(width-2*gutter(width), 1))
	r.vp.Width = col
	r.vp.Height = height
	if r.book != env.Book.ID || r.lang != env.Lang || r.width != col {
		r.vp.SetContent(r.content(env, env.Book, col))
		r.book, r.lang, r.width = env.Book.ID, env.Lang, col
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, r.vp.View())
}

func (r *Reader) content(env app.Env, b library.Book, col int) string {
	st := env.Styles
	s := tr(env.Lang)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(st.Accent.Bold(true).Render(strings.ToUpper(s.Chapter)) + "\n")
	out.WriteString(st.Title.Render(wrap(b.Title, col)) + "\n")
	out.WriteString(st.Dim.Italic(true).Render(b.Author) + "\n")
	out.WriteString(rule(st, col) + "\n\n")
	for _, p := range library.Excerpt(b) {
		out.WriteString(st.Base.Render(wrap(p, col)) + "\n\n")
	}
	out.WriteString(lipgloss.PlaceHorizontal(col, lipgloss.Center, st.Dim.Render(s.PageOf)))
	return out.String()
}
