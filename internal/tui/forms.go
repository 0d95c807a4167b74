package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viennasuites/internal/service"
	"github.com/jask/viennasuites/internal/submit"
)

type field struct {
	label string
	input textinput.Model
	// initial is restored after a successful submission.
	initial string
}

// form is a column of text inputs guarded by a submit gate.
type form struct {
	fields []field
	focus  int
	active bool
	gate   *submit.Gate
}

func newField(label, placeholder, initial string, limit int) field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 32
	in.SetValue(initial)
	return field{label: label, input: in, initial: initial}
}

const (
	bookingCheckIn = iota
	bookingCheckOut
	bookingAdults
	bookingChildren
	bookingSuite
)

func newBookingForm(defaultSuite string) *form {
	return &form{
		fields: []field{
			newField("Check-in", "YYYY-MM-DD", "", 10),
			newField("Check-out", "YYYY-MM-DD", "", 10),
			newField("Adults", "1-4", "2", 1),
			newField("Children", "0-3", "0", 1),
			newField("Suite", "suite name", defaultSuite, 40),
		},
		gate: submit.NewGate(submit.Messages{
			SuccessTitle:       "Booking Request Received!",
			SuccessDescription: "We'll confirm your reservation shortly via email.",
			FailureTitle:       "Booking request not sent",
		}),
	}
}

const (
	contactName = iota
	contactEmail
	contactPhone
	contactMessage
)

func newContactForm() *form {
	return &form{
		fields: []field{
			newField("Name", "your name", "", 80),
			newField("Email", "you@example.com", "", 120),
			newField("Phone", "optional", "", 40),
			newField("Message", "how can we help?", "", 500),
		},
		gate: submit.NewGate(submit.Messages{
			SuccessTitle:       "Message Sent",
			SuccessDescription: "Thank you for contacting us. We'll get back to you shortly.",
			FailureTitle:       "Message not sent",
		}),
	}
}

func (f *form) activate() tea.Cmd {
	f.active = true
	return f.focusAt(f.focus)
}

func (f *form) deactivate() {
	f.active = false
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

func (f *form) focusAt(i int) tea.Cmd {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
	return cmd
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) set(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue(f.fields[i].initial)
	}
	f.focusAt(0)
}

func (f *form) bookingRequest() service.BookingRequest {
	return service.BookingRequest{
		CheckIn:  f.value(bookingCheckIn),
		CheckOut: f.value(bookingCheckOut),
		Adults:   atoiOr(f.value(bookingAdults), 0),
		Children: atoiOr(f.value(bookingChildren), -1),
		Suite:    f.value(bookingSuite),
	}
}

func (f *form) inquiryRequest() service.InquiryRequest {
	return service.InquiryRequest{
		Name:    f.value(contactName),
		Email:   f.value(contactEmail),
		Phone:   f.value(contactPhone),
		Message: f.value(contactMessage),
	}
}

// lines renders the form body. The line count does not depend on focus or
// busy state so the page layout stays put while typing.
func (f *form) lines(sp spinner.Model, submitLabel string) []string {
	out := make([]string, 0, len(f.fields)+2)
	for i, fl := range f.fields {
		label := labelStyle.Render(fl.label)
		if f.active && i == f.focus {
			label = focusedLabel.Render(fl.label)
		}
		out = append(out, label+" "+fl.input.View())
	}
	out = append(out, "")
	switch {
	case f.gate.Busy():
		out = append(out, sp.View()+" "+mutedStyle.Render("Sending..."))
	case f.active:
		out = append(out, cursorStyle.Render("[enter] "+submitLabel))
	default:
		out = append(out, mutedStyle.Render(submitLabel))
	}
	return out
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
