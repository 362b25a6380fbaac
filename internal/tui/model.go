package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"voicereport/internal/domain"
	"voicereport/internal/usecase"
)

// Controller is the session surface the TUI drives.
type Controller interface {
	Toggle(ctx context.Context) (domain.Status, error)
	Cancel() error
	Status() domain.Status
	GenerateDocument(ctx context.Context, req domain.DocumentRequest) (domain.DocumentLink, error)
}

// Model is the root bubbletea model for the recorder TUI.
type Model struct {
	ctx        context.Context
	controller Controller
	events     <-chan tea.Msg
	request    domain.DocumentRequest

	status       domain.Status
	generating   bool
	errorMessage string
	notice       string

	width int
}

// New creates a Model. request supplies the names sent with document requests.
func New(ctx context.Context, controller Controller, events <-chan tea.Msg, request domain.DocumentRequest) Model {
	return Model{
		ctx:        ctx,
		controller: controller,
		events:     events,
		request:    request,
		status:     controller.Status(),
	}
}

// Init starts listening for controller events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case StateChangedMsg:
		m.status = m.controller.Status()
		if msg.State == domain.SessionStateRequesting {
			m.errorMessage = ""
			m.notice = ""
		}
		return m, waitForEvent(m.events)

	case ReportReadyMsg, DocumentReadyMsg:
		m.status = m.controller.Status()
		return m, waitForEvent(m.events)

	case SessionErrorMsg:
		m.errorMessage = errorText(msg.Code, msg.Detail)
		m.status = m.controller.Status()
		return m, waitForEvent(m.events)

	case ToggleResultMsg:
		m.status = msg.Status
		if msg.Err != nil && !errors.Is(msg.Err, usecase.ErrBusy) && !errors.Is(msg.Err, usecase.ErrNoActiveSession) {
			m.errorMessage = msg.Err.Error()
		}
		return m, nil

	case CancelResultMsg:
		m.status = m.controller.Status()
		return m, nil

	case DocumentResultMsg:
		m.generating = false
		m.status = m.controller.Status()
		m.notice = ""
		if errors.Is(msg.Err, usecase.ErrNoReport) {
			m.notice = "No report available. Record a session first."
		}
		return m, nil

	case eventsClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeySpace, KeyEnter:
		if !m.status.Control.Enabled {
			return m, nil
		}
		return m, toggleCmd(m.ctx, m.controller)

	case KeyEscape:
		if m.status.State != domain.SessionStateRecording {
			return m, nil
		}
		return m, cancelCmd(m.controller)

	case KeyPDF, KeyPDFUpper:
		if m.generating {
			return m, nil
		}
		if !m.status.DocumentAvailable {
			m.notice = "No report available. Record a session first."
			return m, nil
		}
		m.generating = true
		m.notice = "Generating PDF..."
		return m, documentCmd(m.ctx, m.controller, m.request)
	}
	return m, nil
}

func toggleCmd(ctx context.Context, controller Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := controller.Toggle(ctx)
		return ToggleResultMsg{Status: status, Err: err}
	}
}

func cancelCmd(controller Controller) tea.Cmd {
	return func() tea.Msg {
		return CancelResultMsg{Err: controller.Cancel()}
	}
}

func documentCmd(ctx context.Context, controller Controller, req domain.DocumentRequest) tea.Cmd {
	return func() tea.Msg {
		link, err := controller.GenerateDocument(ctx, req)
		return DocumentResultMsg{Link: link, Err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Voice Report"))
	b.WriteString("\n\n")

	dot := IdleDotStyle.Render("○")
	if m.status.State == domain.SessionStateRecording {
		dot = RecordingDotStyle.Render("●")
	}
	b.WriteString(dot + " " + StatusStyle.Render(m.status.Message))
	b.WriteString("\n")

	button := ButtonDisabledStyle
	if m.status.Control.Enabled {
		button = ButtonStyle
	}
	b.WriteString(button.Render(m.status.Control.Label))
	b.WriteString("\n")

	if m.status.Report != nil {
		report := ReportStyle
		if m.width > 4 {
			report = report.Width(m.width - 2)
		}
		b.WriteString(report.Render(m.status.Report.Text))
		b.WriteString("\n")
	}

	if m.status.Document != nil {
		b.WriteString("📥 " + LinkStyle.Render(m.status.Document.URL))
		b.WriteString("\n")
	} else if m.status.DocumentError != "" {
		b.WriteString(ErrorTextStyle.Render(m.status.DocumentError))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(StatusStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errorMessage != "" {
		b.WriteString(ErrorTextStyle.Render("Error: " + m.errorMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) footer() string {
	keys := [][2]string{{"space", m.actionLabel()}, {"esc", "stop"}}
	if m.status.DocumentAvailable {
		keys = append(keys, [2]string{"p", "pdf"})
	}
	keys = append(keys, [2]string{"q", "quit"})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, FooterKeyStyle.Render(k[0])+" "+FooterDescStyle.Render(k[1]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m Model) actionLabel() string {
	switch m.status.Control.Action {
	case domain.ControlActionStop:
		return "stop"
	case domain.ControlActionStart:
		return "record"
	default:
		return "wait"
	}
}

func errorText(code domain.ErrorCode, detail string) string {
	headline := code.Message()
	switch {
	case headline == "":
		return detail
	case detail == "":
		return headline
	default:
		return fmt.Sprintf("%s: %s", headline, detail)
	}
}
