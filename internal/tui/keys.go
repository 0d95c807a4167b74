package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Down       key.Binding
	Up         key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Top        key.Binding
	Section    key.Binding
	SlidePrev  key.Binding
	SlideNext  key.Binding
	SlideDot   key.Binding
	Filter     key.Binding
	FilterBack key.Binding
	Search     key.Binding
	PhotoNext  key.Binding
	PhotoPrev  key.Binding
	Open       key.Binding
	Close      key.Binding
	Backdrop   key.Binding
	Image      key.Binding
	Booking    key.Binding
	Contact    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Browse     key.Binding
	BrowseBack key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "scroll")),
		Up:         key.NewBinding(key.WithKeys("k", "up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn/pgup", "page")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		Top:        key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "top")),
		Section:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "sections")),
		SlidePrev:  key.NewBinding(key.WithKeys("h", "["), key.WithHelp("h/l", "suites")),
		SlideNext:  key.NewBinding(key.WithKeys("l", "]")),
		SlideDot:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d+n", "suite n")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		FilterBack: key.NewBinding(key.WithKeys("F")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find category")),
		PhotoNext:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n/p", "photo")),
		PhotoPrev:  key.NewBinding(key.WithKeys("p")),
		Open:       key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "view")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Backdrop:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "backdrop")),
		Image:      key.NewBinding(key.WithKeys("i")),
		Booking:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		Contact:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Browse:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "browse")),
		BrowseBack: key.NewBinding(key.WithKeys("left", "h")),
	}
}

// pageHelp is the footer help while browsing the page.
func (k keyMap) pageHelp() []key.Binding {
	return []key.Binding{k.Down, k.Section, k.SlidePrev, k.SlideDot, k.Filter, k.Search, k.PhotoNext, k.Open, k.Booking, k.Contact, k.Quit}
}

func (k keyMap) lightboxHelp() []key.Binding {
	return []key.Binding{k.Browse, k.Close, k.Backdrop}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Close}
}

func (k keyMap) promptHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Close}
}
