package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/viennasuites/internal/carousel"
	"github.com/jask/viennasuites/internal/config"
	"github.com/jask/viennasuites/internal/content"
	"github.com/jask/viennasuites/internal/database/repository"
	"github.com/jask/viennasuites/internal/lightbox"
	"github.com/jask/viennasuites/internal/logbook"
	"github.com/jask/viennasuites/internal/reveal"
	"github.com/jask/viennasuites/internal/schedule"
	"github.com/jask/viennasuites/internal/scrolllock"
	"github.com/jask/viennasuites/internal/service"
	"github.com/jask/viennasuites/internal/submit"
)

// BookingSubmitter handles the booking form.
type BookingSubmitter interface {
	Submit(ctx context.Context, req service.BookingRequest) (repository.Booking, error)
}

// InquirySubmitter handles the contact form.
type InquirySubmitter interface {
	Submit(ctx context.Context, req service.InquiryRequest) (repository.Inquiry, error)
}

// Deps are the collaborators behind the page.
type Deps struct {
	Bookings  BookingSubmitter
	Inquiries InquirySubmitter
	Log       *logbook.Logbook
}

// Option customises an App.
type Option func(*App)

// WithClock drives every timer from clock instead of the wall clock.
func WithClock(clock schedule.Clock) Option {
	return func(a *App) { a.clock = clock }
}

// WithScrollLock replaces the process-wide scroll lock.
func WithScrollLock(lock *scrolllock.Lock) Option {
	return func(a *App) { a.lock = lock }
}

var errNotConfigured = errors.New("service not configured")

// App is the page: a scrolling viewport over the hotel sections with the
// reveal, carousel and lightbox controllers behind it.
type App struct {
	ctx     context.Context
	cfg     config.Config
	catalog *content.Catalog
	deps    Deps
	keys    keyMap
	help    help.Model

	clock   schedule.Clock
	queue   *schedule.Queue
	lock    *scrolllock.Lock
	reveals *reveal.Engine
	suites  *carousel.Controller
	gallery *lightbox.Controller

	sections  []*section
	page      pageLayout
	vp        viewport.Model
	width     int
	height    int
	ready     bool
	needsEval bool

	focus       focusState
	booking     *form
	contact     *form
	prompt      textinput.Model
	spinner     spinner.Model
	photoCursor int
	dotPending  bool
	status      string

	toast  *toastState
	toasts *schedule.Group
	tick   tickState
	closed bool
}

type focusState string

const (
	focusPage    focusState = ""
	focusBooking focusState = "booking"
	focusContact focusState = "contact"
	focusPrompt  focusState = "prompt"
)

type toastState struct {
	note   submit.Notification
	expiry schedule.TaskID
}

// tickState tracks the single outstanding scheduler wake-up.
type tickState struct {
	gen     uint64
	pending bool
	at      time.Time
}

type tickMsg struct{ gen uint64 }

type bookingDoneMsg struct {
	booking repository.Booking
	err     error
}

type inquiryDoneMsg struct {
	inquiry repository.Inquiry
	err     error
}

// New builds the page for catalog.
func New(ctx context.Context, cfg config.Config, catalog *content.Catalog, deps Deps, opts ...Option) *App {
	if cfg.UI.Frame <= 0 {
		cfg.UI.Frame = 16 * time.Millisecond
	}
	if cfg.UI.ToastDuration <= 0 {
		cfg.UI.ToastDuration = 5 * time.Second
	}
	if cfg.Carousel.Transition <= 0 {
		cfg.Carousel.Transition = carousel.DefaultTransition
	}
	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		catalog: catalog,
		deps:    deps,
		keys:    defaultKeys(),
		help:    help.New(),
		clock:   schedule.SystemClock{},
		lock:    scrolllock.Default,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.queue = schedule.NewQueue(a.clock)
	a.toasts = a.queue.Group("toast")
	a.reveals = reveal.New(a.queue)
	a.suites = carousel.New(a.queue, len(catalog.Suites), cfg.Carousel.Transition)
	wasOpen := false
	a.gallery = lightbox.New(galleryItems(catalog), a.lock, lightbox.WithOnChange(func() {
		item, open := a.gallery.Selected()
		switch {
		case open && !wasOpen:
			a.deps.Log.Info("lightbox open %s", item.ID)
		case !open && wasOpen:
			a.deps.Log.Info("lightbox closed")
		}
		wasOpen = open
	}))

	defaultSuite := ""
	if len(catalog.Suites) > 0 {
		defaultSuite = catalog.Suites[0].Name
	}
	a.booking = newBookingForm(defaultSuite)
	a.contact = newContactForm()

	a.prompt = textinput.New()
	a.prompt.Prompt = "category: "
	a.prompt.Placeholder = strings.Join(a.gallery.Categories(), ", ")
	a.prompt.CharLimit = 40

	a.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	a.spinner.Style = lipgloss.NewStyle().Foreground(colorAccent)

	a.vp = viewport.New(0, 0)
	a.sections = a.newSections()
	a.registerSections()
	return a
}

func galleryItems(c *content.Catalog) []lightbox.Item {
	items := make([]lightbox.Item, 0, len(c.Gallery))
	for _, p := range c.Gallery {
		items = append(items, lightbox.Item{ID: p.ID, Src: p.Src, Alt: p.Alt, Category: p.Category})
	}
	return items
}

// Init mounts the page. Reveal evaluation waits for the first size message.
func (a *App) Init() tea.Cmd {
	a.gallery.Mount()
	a.needsEval = true
	a.deps.Log.Info("page mounted")
	return nil
}

// Close unmounts every controller: pending timers are cancelled and the
// scroll lock is released. It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.reveals.Close()
	a.suites.Close()
	a.gallery.Unmount()
	a.toasts.CancelAll()
	a.deps.Log.Info("page unmounted")
}

func (a *App) quit() tea.Cmd {
	a.Close()
	return tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.closed {
		return a, cmd
	}
	a.settle()
	return a, tea.Batch(cmd, a.pump())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
		return nil
	case tickMsg:
		if m.gen == a.tick.gen {
			a.tick.pending = false
		}
		return nil
	case spinner.TickMsg:
		if !a.booking.gate.Busy() && !a.contact.gate.Busy() {
			return nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return cmd
	case bookingDoneMsg:
		note := a.booking.gate.Finish(m.err)
		if m.err != nil {
			a.deps.Log.Warn("booking request rejected: %v", m.err)
		} else {
			a.deps.Log.Info("booking %s stored for %s", m.booking.ID, m.booking.Suite)
			a.booking.reset()
		}
		a.showToast(note)
		return nil
	case inquiryDoneMsg:
		note := a.contact.gate.Finish(m.err)
		if m.err != nil {
			a.deps.Log.Warn("inquiry rejected: %v", m.err)
		} else {
			a.deps.Log.Info("inquiry %s stored", m.inquiry.ID)
			a.contact.reset()
		}
		a.showToast(note)
		return nil
	case tea.MouseMsg:
		a.handleMouse(m)
		return nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return nil
}

// settle renders, evaluates reveals when the viewport moved, runs due
// timers and renders again so their effects show in this frame.
func (a *App) settle() {
	a.render()
	if a.needsEval && a.ready {
		a.needsEval = false
		a.reveals.Evaluate(float64(a.vp.YOffset), float64(a.vp.Height))
	}
	a.queue.RunDue()
	a.render()
}

// pump schedules one wake-up for the earliest pending timer.
func (a *App) pump() tea.Cmd {
	due, ok := a.queue.NextDue()
	if !ok {
		return nil
	}
	if a.tick.pending && !due.Before(a.tick.at) {
		return nil
	}
	a.tick.gen++
	a.tick.pending = true
	a.tick.at = due
	gen := a.tick.gen
	wait := max(due.Sub(a.queue.Now()), a.cfg.UI.Frame)
	return tea.Tick(wait, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

const chromeHeight = 3 // header plus two footer lines

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.vp.Width = w
	a.vp.Height = max(1, h-chromeHeight)
	a.help.Width = w
	a.ready = true
	a.needsEval = true
}

func (a *App) scrollBy(n int) bool {
	if a.lock.Locked() {
		return false
	}
	before := a.vp.YOffset
	if n > 0 {
		a.vp.LineDown(n)
	} else {
		a.vp.LineUp(-n)
	}
	return a.scrolled(before)
}

func (a *App) scrollTo(offset int) bool {
	if a.lock.Locked() {
		return false
	}
	before := a.vp.YOffset
	a.vp.SetYOffset(offset)
	return a.scrolled(before)
}

func (a *App) scrolled(before int) bool {
	if a.vp.YOffset == before {
		return false
	}
	a.needsEval = true
	return true
}

func (a *App) jumpTo(id sectionID) {
	if off, ok := a.page.offsets[id]; ok {
		a.scrollTo(off)
	}
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if m.String() == "ctrl+c" {
		return a.quit()
	}
	a.status = ""
	if a.gallery.IsOpen() {
		return a.handleLightboxKey(m)
	}
	switch a.focus {
	case focusPrompt:
		return a.handlePromptKey(m)
	case focusBooking:
		return a.handleFormKey(m, a.booking)
	case focusContact:
		return a.handleFormKey(m, a.contact)
	}
	return a.handlePageKey(m)
}

func (a *App) handlePageKey(m tea.KeyMsg) tea.Cmd {
	if a.dotPending {
		a.dotPending = false
		n := atoiOr(m.String(), 0)
		if err := a.suites.GoTo(n - 1); err != nil {
			a.status = fmt.Sprintf("no suite %q", m.String())
		}
		return nil
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a.quit()
	case key.Matches(m, a.keys.Close):
		a.gallery.HandleKey("esc")
	case key.Matches(m, a.keys.Down):
		a.scrollBy(1)
	case key.Matches(m, a.keys.Up):
		a.scrollBy(-1)
	case key.Matches(m, a.keys.PageDown):
		a.scrollBy(a.vp.Height)
	case key.Matches(m, a.keys.PageUp):
		a.scrollBy(-a.vp.Height)
	case key.Matches(m, a.keys.Top):
		a.scrollTo(0)
	case key.Matches(m, a.keys.Section):
		idx := atoiOr(m.String(), 0) - 1
		if idx >= 0 && idx < len(a.sections) {
			a.jumpTo(a.sections[idx].id)
		}
	case key.Matches(m, a.keys.SlidePrev):
		if !a.suites.Prev() && a.suites.IsLocked() {
			a.status = "slide in transition"
		}
	case key.Matches(m, a.keys.SlideNext):
		if !a.suites.Next() && a.suites.IsLocked() {
			a.status = "slide in transition"
		}
	case key.Matches(m, a.keys.SlideDot):
		a.dotPending = true
		a.status = fmt.Sprintf("suite number (1-%d)?", a.suites.Len())
	case key.Matches(m, a.keys.Filter):
		a.gallery.CycleFilter(1)
		a.photoCursor = 0
	case key.Matches(m, a.keys.FilterBack):
		a.gallery.CycleFilter(-1)
		a.photoCursor = 0
	case key.Matches(m, a.keys.Search):
		a.focus = focusPrompt
		a.prompt.SetValue("")
		return a.prompt.Focus()
	case key.Matches(m, a.keys.PhotoNext):
		a.movePhotoCursor(1)
	case key.Matches(m, a.keys.PhotoPrev):
		a.movePhotoCursor(-1)
	case key.Matches(m, a.keys.Open):
		visible := a.gallery.VisibleItems()
		if a.photoCursor < len(visible) {
			a.gallery.Open(visible[a.photoCursor])
		}
	case key.Matches(m, a.keys.Booking):
		a.jumpTo(sectionBooking)
		a.focus = focusBooking
		return a.booking.activate()
	case key.Matches(m, a.keys.Contact):
		a.jumpTo(sectionContact)
		a.focus = focusContact
		return a.contact.activate()
	}
	return nil
}

func (a *App) movePhotoCursor(delta int) {
	n := len(a.gallery.VisibleItems())
	if n == 0 {
		a.photoCursor = 0
		return
	}
	a.photoCursor = ((a.photoCursor+delta)%n + n) % n
}

func (a *App) handleLightboxKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a.quit()
	case key.Matches(m, a.keys.Close):
		a.gallery.HandleKey("esc")
	case key.Matches(m, a.keys.Backdrop):
		a.gallery.ClickBackdrop()
	case key.Matches(m, a.keys.Image):
		a.gallery.ClickImage()
	case key.Matches(m, a.keys.Browse):
		a.gallery.Step(1)
	case key.Matches(m, a.keys.BrowseBack):
		a.gallery.Step(-1)
	case key.Matches(m, a.keys.Down), key.Matches(m, a.keys.PageDown):
		a.scrollBy(1)
	case key.Matches(m, a.keys.Up), key.Matches(m, a.keys.PageUp):
		a.scrollBy(-1)
	}
	a.syncPhotoCursor()
	return nil
}

// syncPhotoCursor keeps the gallery cursor on the photo last shown in the
// lightbox.
func (a *App) syncPhotoCursor() {
	item, ok := a.gallery.Selected()
	if !ok {
		return
	}
	for i, v := range a.gallery.VisibleItems() {
		if v.ID == item.ID {
			a.photoCursor = i
			return
		}
	}
}

func (a *App) handlePromptKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.focus = focusPage
		a.prompt.Blur()
		return nil
	case tea.KeyEnter:
		input := strings.TrimSpace(a.prompt.Value())
		a.focus = focusPage
		a.prompt.Blur()
		cat, ok := a.gallery.ResolveCategory(input)
		if !ok {
			a.status = fmt.Sprintf("no category matches %q", input)
			return nil
		}
		a.gallery.SetFilter(cat)
		a.photoCursor = 0
		a.jumpTo(sectionGallery)
		return nil
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(m)
	return cmd
}

func (a *App) handleFormKey(m tea.KeyMsg, f *form) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Close):
		f.deactivate()
		a.focus = focusPage
		return nil
	case key.Matches(m, a.keys.Submit):
		if f == a.booking {
			return a.submitBooking()
		}
		return a.submitInquiry()
	case key.Matches(m, a.keys.NextField):
		return f.focusAt(f.focus + 1)
	case key.Matches(m, a.keys.PrevField):
		return f.focusAt(f.focus - 1)
	}
	return f.update(m)
}

func (a *App) submitBooking() tea.Cmd {
	if err := a.booking.gate.Begin(); err != nil {
		a.status = "booking request already sending"
		return nil
	}
	req := a.booking.bookingRequest()
	a.deps.Log.Info("booking request %s to %s, %s", req.CheckIn, req.CheckOut, req.Suite)
	ctx, svc := a.ctx, a.deps.Bookings
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		if svc == nil {
			return bookingDoneMsg{err: errNotConfigured}
		}
		b, err := svc.Submit(ctx, req)
		return bookingDoneMsg{booking: b, err: err}
	})
}

func (a *App) submitInquiry() tea.Cmd {
	if err := a.contact.gate.Begin(); err != nil {
		a.status = "message already sending"
		return nil
	}
	req := a.contact.inquiryRequest()
	a.deps.Log.Info("inquiry from %s", req.Email)
	ctx, svc := a.ctx, a.deps.Inquiries
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		if svc == nil {
			return inquiryDoneMsg{err: errNotConfigured}
		}
		q, err := svc.Submit(ctx, req)
		return inquiryDoneMsg{inquiry: q, err: err}
	})
}

// showToast replaces any visible notification and schedules its expiry.
func (a *App) showToast(note submit.Notification) {
	if a.toast != nil {
		a.toasts.Cancel(a.toast.expiry)
	}
	t := &toastState{note: note}
	t.expiry = a.toasts.After(a.cfg.UI.ToastDuration, func() {
		if a.toast == t {
			a.toast = nil
		}
	})
	a.toast = t
}

func (a *App) handleMouse(m tea.MouseMsg) {
	switch m.Button {
	case tea.MouseButtonWheelDown:
		a.scrollBy(3)
		return
	case tea.MouseButtonWheelUp:
		a.scrollBy(-3)
		return
	}
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft || !a.gallery.IsOpen() {
		return
	}
	if a.lightboxRect().contains(m.X, m.Y) {
		a.gallery.ClickImage()
		return
	}
	a.gallery.ClickBackdrop()
}

func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}
	body := a.vp.View()
	if a.toast != nil {
		box := a.toastView()
		x := max(0, a.width-maxLineWidth(splitLines(box))-1)
		body = overlayAt(body, box, x, 0, a.width, a.vp.Height)
	}
	screen := lipgloss.JoinVertical(lipgloss.Left, a.headerView(), body, a.footerView())
	if a.gallery.IsOpen() {
		screen, _ = centered(dim(screen), a.lightboxView(), a.width, a.height)
	}
	return screen
}

func (a *App) headerView() string {
	style := headerStyle
	if a.vp.YOffset > 0 {
		style = headerScrolledStyle
	}
	cur := a.currentSection()
	nav := make([]string, 0, len(a.sections))
	for i, s := range a.sections {
		label := fmt.Sprintf("%d %s", i+1, s.title)
		if s == cur {
			nav = append(nav, navActiveStyle.Render(label))
		} else {
			nav = append(nav, navStyle.Render(label))
		}
	}
	line := a.catalog.Hotel.Name + "   " + strings.Join(nav, "  ")
	return style.Width(a.width).MaxHeight(1).Render(line)
}

func (a *App) footerView() string {
	var status string
	switch {
	case a.focus == focusPrompt:
		status = a.prompt.View()
	case a.status != "":
		status = statusStyle.Render(a.status)
	case a.vp.YOffset > 2*a.vp.Height:
		status = topHintStyle.Render("[t] back to top")
	}
	bindings := a.keys.pageHelp()
	switch {
	case a.gallery.IsOpen():
		bindings = a.keys.lightboxHelp()
	case a.focus == focusPrompt:
		bindings = a.keys.promptHelp()
	case a.focus == focusBooking || a.focus == focusContact:
		bindings = a.keys.formHelp()
	}
	return footerStyle.Render(status) + "\n" + footerStyle.Render(a.help.ShortHelpView(bindings))
}

func (a *App) toastView() string {
	style := toastSuccessStyle
	title := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	if a.toast.note.Kind == submit.KindFailure {
		style = toastFailureStyle
		title = errorStyle.Bold(true)
	}
	width := min(48, max(20, a.width/2))
	return style.Width(width).Render(title.Render(a.toast.note.Title) + "\n" + bodyStyle.Render(a.toast.note.Description))
}

func (a *App) lightboxView() string {
	item, ok := a.gallery.Selected()
	if !ok {
		return ""
	}
	visible := a.gallery.VisibleItems()
	pos := 0
	for i, v := range visible {
		if v.ID == item.ID {
			pos = i + 1
			break
		}
	}
	width := max(20, min(64, a.width-8))
	lines := []string{
		eyebrowStyle.Render(strings.ToUpper(item.Category)),
		"",
		headingStyle.Width(width).Render(item.Alt),
		"",
		mutedStyle.Width(width).Render(item.Src),
		"",
		mutedStyle.Render(fmt.Sprintf("%d / %d", pos, len(visible))) + "   " + a.help.ShortHelpView(a.keys.lightboxHelp()),
	}
	return lightboxStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) lightboxRect() rect {
	return boxRect(a.lightboxView(), a.width, a.height)
}
