package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	orchestration "github.com/karvendhanm/FinSpeak/core"
	"github.com/karvendhanm/FinSpeak/core/assistant"
)

// codeLength is the fixed passcode length; a code is only submitted once this
// many digits have been collected.
const codeLength = 6

// conversationController is the slice of the orchestrator the UI drives.
type conversationController interface {
	Submit(ctx context.Context, text string, opts ...assistant.QueryOption)
	SelectOption(ctx context.Context, option assistant.Option)
	ResolveVerification(ctx context.Context, code string) error
	AbandonVerification()
	SetLanguage(language string)
	Reset(ctx context.Context) error
	Conversation() orchestration.Conversation
	StartRecording() error
	StopRecording() error
}

type conversationUpdatedMsg struct{}

type processingChangedMsg bool

type speakingChangedMsg bool

type model struct {
	ctx        context.Context
	controller conversationController
	updates    chan tea.Msg

	viewport viewport.Model
	input    textinput.Model

	conversation orchestration.Conversation

	// code accumulates passcode digits while a challenge is pending.
	code string

	processing bool
	recording  bool
	speaking   bool

	voiceEnabled bool
	language     string

	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(ctx context.Context, controller conversationController, cfg config, updates chan tea.Msg) model {
	input := textinput.New()
	input.Placeholder = "Ask about balances, transfers, cards..."
	input.CharLimit = 500
	input.Focus()

	return model{
		ctx:          ctx,
		controller:   controller,
		updates:      updates,
		input:        input,
		conversation: controller.Conversation(),
		voiceEnabled: cfg.voiceEnabled,
		language:     cfg.language,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForUpdate())
}

func (m model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return <-m.updates
	}
}

func (m model) challengePending() bool {
	return m.conversation.PendingVerificationToken != ""
}

// selectableOptions returns the choices the user can activate right now:
// either the options of the latest assistant entry, or a synthesized Yes/No
// pair when the latest entry asks for transaction confirmation.
func (m model) selectableOptions() []assistant.Option {
	entries := m.conversation.Entries
	if len(entries) == 0 {
		return nil
	}

	last := entries[len(entries)-1]
	if last.Role != orchestration.RoleAssistant {
		return nil
	}
	if len(last.Options) > 0 {
		return last.Options
	}
	if last.Confirmation != nil && last.Confirmation.NeedsConfirmation {
		return []assistant.Option{
			{ID: "confirm_yes", Display: "Yes", Text: "Yes, confirm"},
			{ID: "confirm_no", Display: "No", Text: "No, cancel"},
		}
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4

		viewportHeight := msg.Height - 6
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refreshTranscript()
		return m, nil

	case conversationUpdatedMsg:
		m.conversation = m.controller.Conversation()
		if !m.challengePending() {
			m.code = ""
		}
		m.refreshTranscript()
		return m, m.waitForUpdate()

	case processingChangedMsg:
		m.processing = bool(msg)
		if m.processing {
			m.input.Blur()
			// Capture stays off while the request is outstanding.
			if m.recording {
				m.recording = false
				_ = m.controller.StopRecording()
			}
		} else if !m.challengePending() {
			m.input.Focus()
		}
		return m, m.waitForUpdate()

	case speakingChangedMsg:
		m.speaking = bool(msg)
		return m, m.waitForUpdate()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	if m.challengePending() {
		return m.handleChallengeKey(msg)
	}

	switch msg.Type {
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.processing {
			return m, nil
		}
		m.input.Reset()
		go m.controller.Submit(m.ctx, text)
		return m, nil

	case tea.KeyCtrlR:
		if !m.voiceEnabled || m.processing {
			return m, nil
		}
		if m.recording {
			m.recording = false
			_ = m.controller.StopRecording()
		} else {
			m.recording = true
			_ = m.controller.StartRecording()
		}
		return m, nil

	case tea.KeyCtrlN:
		if m.processing {
			return m, nil
		}
		m.code = ""
		go func() {
			_ = m.controller.Reset(m.ctx)
			select {
			case m.updates <- conversationUpdatedMsg{}:
			default:
			}
		}()
		return m, nil

	case tea.KeyCtrlL:
		if m.language == "hi-IN" {
			m.language = "en-IN"
		} else {
			m.language = "hi-IN"
		}
		m.controller.SetLanguage(m.language)
		return m, nil

	case tea.KeyRunes:
		if len(msg.Runes) == 1 && m.input.Value() == "" && !m.processing {
			if options := m.selectableOptions(); len(options) > 0 {
				if index := int(msg.Runes[0] - '1'); index >= 0 && index < len(options) {
					go m.controller.SelectOption(m.ctx, options[index])
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleChallengeKey collects passcode digits while a verification challenge
// is pending. The code is only submitted once it reaches the required length;
// escape abandons the challenge.
func (m model) handleChallengeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.code = ""
		m.controller.AbandonVerification()
		return m, nil

	case tea.KeyBackspace:
		if len(m.code) > 0 {
			m.code = m.code[:len(m.code)-1]
		}
		return m, nil

	case tea.KeyRunes:
		if m.processing {
			return m, nil
		}
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				continue
			}
			m.code += string(r)
			if len(m.code) == codeLength {
				code := m.code
				m.code = ""
				go func() { _ = m.controller.ResolveVerification(m.ctx, code) }()
				break
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *model) refreshTranscript() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(renderConversation(m.conversation, m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return renderFrame(m)
}
