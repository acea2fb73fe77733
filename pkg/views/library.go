package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/app"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/library"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

var listKeys = struct {
	Up, Down, Open, Filter, Done key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Open:   key.NewBinding(key.WithKeys("enter", " ")),
	Filter: key.NewBinding(key.WithKeys("/")),
	Done:   key.NewBinding(key.WithKeys("esc", "enter")),
}

// Library lists the catalog. "/" opens a filter on title and author; enter
// or a click opens the focused book in the reader.
type Library struct {
	books  []library.Book
	shown  []library.Book
	focus  app.Focus
	filter textinput.Model
	bars   map[string]progress.Model
}

// NewLibrary creates the library page over the mock catalog.
func NewLibrary() *Library {
	books := library.Catalog()
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 64

	bars := make(map[string]progress.Model, len(books))
	for _, b := range books {
		bars[b.ID] = progress.New(
			progress.WithSolidFill(b.CoverColor),
			progress.WithoutPercentage(),
			progress.WithWidth(16),
		)
	}
	l := &Library{books: books, filter: ti, bars: bars}
	l.refilter()
	return l
}

func (l *Library) ID() string { return menu.Library }

// Capturing reports whether the filter input has focus.
func (l *Library) Capturing() bool {
	return l.filter.Focused()
}

// Focused returns the ID of the focused book.
func (l *Library) Focused() string {
	return l.focus.Current()
}

// Shown returns the books that pass the filter, in shelf order.
func (l *Library) Shown() []library.Book {
	return l.shown
}

func (l *Library) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	return cmd
}

func (l *Library) HandleKey(_ app.Env, msg tea.KeyMsg) tea.Cmd {
	if l.filter.Focused() {
		switch {
		case key.Matches(msg, listKeys.Done):
			l.filter.Blur()
			return nil
		case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
			l.move(msg.Type == tea.KeyDown)
			return nil
		}
		var cmd tea.Cmd
		l.filter, cmd = l.filter.Update(msg)
		l.refilter()
		return cmd
	}

	switch {
	case key.Matches(msg, listKeys.Filter):
		return l.filter.Focus()
	case key.Matches(msg, listKeys.Up):
		l.move(false)
	case key.Matches(msg, listKeys.Down):
		l.move(true)
	case key.Matches(msg, listKeys.Open):
		if id := l.focus.Current(); id != "" {
			return app.Emit(app.SelectBookEvent{ID: id})
		}
	}
	return nil
}

func (l *Library) HandleMouse(env app.Env, msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		l.move(false)
		return nil
	case tea.MouseButtonWheelDown:
		l.move(true)
		return nil
	}
	for _, b := range l.shown {
		if env.Clicked(zoneID(menu.Library, b.ID), msg) {
			l.focus.Set(b.ID)
			return app.Emit(app.SelectBookEvent{ID: b.ID})
		}
	}
	return nil
}

func (l *Library) move(down bool) {
	if down {
		l.focus.Forward()
	} else {
		l.focus.Backward()
	}
}

func (l *Library) refilter() {
	l.shown = filterBooks(l.books, l.filter.Value())
	ids := make([]string, len(l.shown))
	for i, b := range l.shown {
		ids[i] = b.ID
	}
	l.focus.SetOrder(ids...)
}

func (l *Library) View(env app.Env, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	st := env.Styles
	s := tr(env.Lang)
	pad := gutter(width)
	inner := max(width-2*pad, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(st.Title.Render(s.LibraryTitle) + "\n")
	total, reading := shelfCounts(l.books)
	b.WriteString(st.Dim.Render(fmt.Sprintf(s.BooksFmt, total, reading)) + "\n")
	if l.filter.Focused() || l.filter.Value() != "" {
		b.WriteString(l.filter.View() + "\n")
	}
	b.WriteString(rule(st, inner) + "\n\n")

	if len(l.shown) == 0 {
		b.WriteString(st.Dim.Render(s.NoResults))
	}
	titleW := max(inner/3, 12)
	authorW := max(inner/5, 10)
	for _, bk := range l.shown {
		focused := bk.ID == l.focus.Current()
		title := st.Base
		if focused {
			title = st.ItemActive
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cursor(st, focused),
			lipgloss.NewStyle().Foreground(lipgloss.Color(bk.CoverColor)).Render("██ "),
			title.Width(titleW).Render(ansi.Truncate(bk.Title, titleW-1, "…")),
			st.Dim.Width(authorW).Render(ansi.Truncate(bk.Author, authorW-1, "…")),
			l.bars[bk.ID].ViewAs(float64(bk.Progress)/100),
			st.Dim.Render(fmt.Sprintf(" %3d%%", bk.Progress)),
		)
		b.WriteString(mark(env, menu.Library, bk.ID, row) + "\n")
	}
	return fill(width, height, indent(b.String(), pad))
}

// filterBooks returns the books whose title or author contains query,
// case-insensitively. An empty query returns every book.
func filterBooks(books []library.Book, query string) []library.Book {
	if query == "" {
		return books
	}
	lower := strings.ToLower(query)
	var result []library.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), lower) ||
			strings.Contains(strings.ToLower(b.Author), lower) {
			result = append(result, b)
		}
	}
	return result
}

// shelfCounts returns the number of books and how many are part-read.
func shelfCounts(books []library.Book) (total, reading int) {
	for _, b := range books {
		if b.Progress > 0 && b.Progress < 100 {
			reading++
		}
	}
	return len(books), reading
}
