package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/viennasuites/internal/reveal"
)

type sectionID string

const (
	sectionHero      sectionID = "hero"
	sectionAbout     sectionID = "about"
	sectionSuites    sectionID = "suites"
	sectionAmenities sectionID = "amenities"
	sectionGallery   sectionID = "gallery"
	sectionBooking   sectionID = "booking"
	sectionContact   sectionID = "contact"
)

// section is one block of the page with its reveal registration.
type section struct {
	id        sectionID
	title     string
	threshold float64
	children  int
	step      time.Duration
	handle    reveal.Handle
}

// block is a run of rendered lines. child is the stagger index the lines
// belong to, or -1 for lines shown as soon as the section triggers.
type block struct {
	child int
	lines []string
}

// pageLayout records where each section starts in the rendered page.
type pageLayout struct {
	offsets map[sectionID]int
	height  int
}

const (
	maxContentWidth = 96
	sectionGap      = 2
	pageMargin      = "  "
)

func (a *App) newSections() []*section {
	cat := a.catalog
	return []*section{
		{id: sectionHero, title: "Home", threshold: 1.0},
		{id: sectionAbout, title: "About", threshold: 0.8, children: len(cat.About.Blocks), step: a.cfg.Reveal.StepAbout},
		{id: sectionSuites, title: "Suites", threshold: 0.7},
		{id: sectionAmenities, title: "Amenities", threshold: 0.7, children: len(cat.Amenities), step: a.cfg.Reveal.StepAmenities},
		{id: sectionGallery, title: "Gallery", threshold: 0.75},
		{id: sectionBooking, title: "Book", threshold: 0.7},
		{id: sectionContact, title: "Contact", threshold: 0.7},
	}
}

func (a *App) registerSections() {
	for _, s := range a.sections {
		id := s.id
		s.handle = a.reveals.Register(reveal.Target{
			ID:        string(id),
			Threshold: s.threshold,
			Children:  s.children,
			Step:      s.step,
			Measure: func() (float64, bool) {
				off, ok := a.page.offsets[id]
				return float64(off), ok
			},
			OnChange: func(ev reveal.Event) {
				if ev.Child < 0 {
					a.deps.Log.Info("revealed %s", ev.ID)
				}
			},
		})
	}
}

func (a *App) sectionByID(id sectionID) *section {
	for _, s := range a.sections {
		if s.id == id {
			return s
		}
	}
	return nil
}

// currentSection is the last section whose top is at or above the viewport
// top.
func (a *App) currentSection() *section {
	cur := a.sections[0]
	for _, s := range a.sections {
		if off, ok := a.page.offsets[s.id]; ok && off <= a.vp.YOffset {
			cur = s
		}
	}
	return cur
}

func (a *App) contentWidth() int {
	return max(20, min(a.width-2*len(pageMargin), maxContentWidth))
}

// render rebuilds the page and hands it to the viewport. Section heights do
// not depend on reveal state: hidden lines are blanked, not dropped.
func (a *App) render() {
	if !a.ready {
		return
	}
	w := a.contentWidth()
	var lines []string
	offsets := make(map[sectionID]int, len(a.sections))
	for _, s := range a.sections {
		offsets[s.id] = len(lines)
		triggered := a.reveals.Triggered(s.handle)
		for _, b := range a.renderSection(s, w) {
			show := triggered && (b.child < 0 || a.reveals.Revealed(s.handle, b.child))
			for _, l := range b.lines {
				if show {
					lines = append(lines, pageMargin+l)
				} else {
					lines = append(lines, "")
				}
			}
		}
		for range sectionGap {
			lines = append(lines, "")
		}
	}
	a.page = pageLayout{offsets: offsets, height: len(lines)}
	a.vp.SetContent(strings.Join(lines, "\n"))
}

func (a *App) renderSection(s *section, w int) []block {
	switch s.id {
	case sectionHero:
		return a.renderHero(w)
	case sectionAbout:
		return a.renderAbout(w)
	case sectionSuites:
		return a.renderSuites(w)
	case sectionAmenities:
		return a.renderAmenities(w)
	case sectionGallery:
		return a.renderGallery(w)
	case sectionBooking:
		return a.renderBooking(w)
	case sectionContact:
		return a.renderContact(w)
	}
	return nil
}

func wrap(style lipgloss.Style, w int, text string) []string {
	return splitLines(style.Width(w).Render(text))
}

func heading(w int, eyebrow, title string) []string {
	out := []string{eyebrowStyle.Render(strings.ToUpper(eyebrow))}
	out = append(out, wrap(headingStyle, w, title)...)
	return append(out, "")
}

func (a *App) renderHero(w int) []block {
	hero := a.catalog.Hero
	lines := []string{"", eyebrowStyle.Render(strings.ToUpper(hero.Eyebrow)), ""}
	lines = append(lines, wrap(headingStyle, w, hero.Title)...)
	lines = append(lines, "")
	lines = append(lines, wrap(bodyStyle, w, hero.Subtitle)...)
	lines = append(lines, "", cursorStyle.Render("[b] Book your stay")+"   "+mutedStyle.Render("[3] Explore suites"))
	// The hero fills the first screen.
	for len(lines) < a.vp.Height-sectionGap {
		lines = append(lines, "")
	}
	return []block{{child: -1, lines: lines}}
}

func (a *App) renderAbout(w int) []block {
	about := a.catalog.About
	blocks := []block{{child: -1, lines: heading(w, about.Eyebrow, about.Heading)}}
	for i, text := range about.Blocks {
		lines := wrap(bodyStyle, w, text)
		blocks = append(blocks, block{child: i, lines: append(lines, "")})
	}
	return blocks
}

func (a *App) renderSuites(w int) []block {
	suites := a.catalog.Suites
	lines := heading(w, "Accommodations", "Our Suites")
	if len(suites) == 0 {
		return []block{{child: -1, lines: append(lines, mutedStyle.Render("No suites listed."))}}
	}
	// Pad every slide to the tallest so switching slides does not move the
	// sections below.
	cards := make([][]string, len(suites))
	tallest := 0
	for i := range suites {
		cards[i] = a.suiteCard(i, w-4)
		tallest = max(tallest, len(cards[i]))
	}
	card := cards[a.suites.Active()]
	for len(card) < tallest {
		card = append(card, "")
	}
	style := slideStyle
	if a.suites.IsLocked() {
		style = slideBusy
	}
	lines = append(lines, splitLines(style.Width(w).Render(strings.Join(card, "\n")))...)

	var dots []string
	for _, on := range a.suites.Indicators() {
		if on {
			dots = append(dots, dotOnStyle.Render("●"))
		} else {
			dots = append(dots, dotOffStyle.Render("○"))
		}
	}
	nav := mutedStyle.Render("‹ h") + "   " + strings.Join(dots, " ") + "   " + mutedStyle.Render("l ›")
	nav += "  " + mutedStyle.Render(fmt.Sprintf("%d / %d", a.suites.Active()+1, a.suites.Len()))
	return []block{{child: -1, lines: append(lines, "", nav)}}
}

func (a *App) suiteCard(i, w int) []string {
	s := a.catalog.Suites[i]
	out := []string{
		headingStyle.Render(s.Name) + "  " + mutedStyle.Render(s.Size) + "  " + priceStyle.Render(s.Price) + mutedStyle.Render(" / night"),
		"",
	}
	out = append(out, wrap(bodyStyle, w, s.Description)...)
	out = append(out, "")
	out = append(out, wrap(mutedStyle, w, strings.Join(s.Features, " · "))...)
	return out
}

func (a *App) renderAmenities(w int) []block {
	blocks := []block{{child: -1, lines: heading(w, "Services", "Hotel Amenities")}}
	for i, am := range a.catalog.Amenities {
		lines := splitLines(cardStyle.Width(w).Render(eyebrowStyle.Render("◆ "+am.Title) + "\n" + bodyStyle.Render(am.Description)))
		blocks = append(blocks, block{child: i, lines: lines})
	}
	return blocks
}

func (a *App) renderGallery(w int) []block {
	lines := heading(w, "Gallery", "Take a Look Inside")

	var chips []string
	for _, cat := range a.gallery.Categories() {
		label := chipLabel(cat)
		if cat == a.gallery.Filter() {
			chips = append(chips, chipOnStyle.Render(label))
		} else {
			chips = append(chips, chipStyle.Render(label))
		}
	}
	lines = append(lines, strings.Join(chips, " "), "")

	visible := a.gallery.VisibleItems()
	list := make([]string, 0, len(a.catalog.Gallery))
	if len(visible) == 0 {
		list = append(list, mutedStyle.Render("No photos in this category."))
	}
	for i, item := range visible {
		marker := "  "
		text := bodyStyle.Render(item.Alt)
		if i == a.photoCursor {
			marker = cursorStyle.Render("▸ ")
			text = cursorStyle.Render(item.Alt)
		}
		list = append(list, marker+text+"  "+mutedStyle.Render(item.Category))
	}
	for len(list) < len(a.catalog.Gallery) {
		list = append(list, "")
	}
	lines = append(lines, list...)
	lines = append(lines, "", mutedStyle.Render("[f] filter  [/] find  [n/p] select  [o] view"))
	return []block{{child: -1, lines: lines}}
}

// chipLabel capitalises the first letter of a category name.
func chipLabel(cat string) string {
	r, size := utf8.DecodeRuneInString(cat)
	if r == utf8.RuneError {
		return cat
	}
	return string(unicode.ToUpper(r)) + cat[size:]
}

func (a *App) renderBooking(w int) []block {
	lines := heading(w, "Reservations", "Book Your Stay")
	lines = append(lines, wrap(mutedStyle, w, "Suites: "+strings.Join(a.catalog.SuiteNames(), ", "))...)
	lines = append(lines, "")
	lines = append(lines, a.booking.lines(a.spinner, "Request booking")...)
	if !a.booking.active {
		lines = append(lines, mutedStyle.Render("[b] fill in the form"))
	} else {
		lines = append(lines, "")
	}
	return []block{{child: -1, lines: lines}}
}

func (a *App) renderContact(w int) []block {
	c := a.catalog.Contact
	lines := heading(w, "Get in Touch", "Contact Us")
	lines = append(lines,
		labelStyle.Render("Address")+" "+bodyStyle.Render(c.Address),
		labelStyle.Render("Phone")+" "+bodyStyle.Render(c.Phone),
		labelStyle.Render("Email")+" "+bodyStyle.Render(c.Email),
		labelStyle.Render("Reception")+" "+bodyStyle.Render(c.Hours),
		"",
	)
	lines = append(lines, a.contact.lines(a.spinner, "Send message")...)
	if !a.contact.active {
		lines = append(lines, mutedStyle.Render("[c] write to us"))
	} else {
		lines = append(lines, "")
	}
	return []block{{child: -1, lines: lines}}
}
