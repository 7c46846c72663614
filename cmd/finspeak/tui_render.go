package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	orchestration "github.com/karvendhanm/FinSpeak/core"
	"github.com/karvendhanm/FinSpeak/core/assistant"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	timestampStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	celebrationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	optionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	recordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	challengeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderFrame(m model) string {
	var b strings.Builder

	title := "FinSpeak"
	if m.language == "hi-IN" {
		title += " (हिन्दी)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if m.challengePending() {
		b.WriteString(renderCodePrompt(m.code))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(renderStatusBar(m))

	return b.String()
}

// renderCodePrompt shows collected passcode digits masked, with placeholders
// for the digits still missing.
func renderCodePrompt(code string) string {
	slots := make([]string, codeLength)
	for i := range slots {
		if i < len(code) {
			slots[i] = "•"
		} else {
			slots[i] = "_"
		}
	}
	return challengeStyle.Render("OTP: " + strings.Join(slots, " ") + "  (esc to cancel)")
}

func renderStatusBar(m model) string {
	var parts []string
	if m.processing {
		parts = append(parts, "thinking...")
	}
	if m.recording {
		if m.speaking {
			parts = append(parts, "listening (speech detected)")
		} else {
			parts = append(parts, "listening")
		}
	}

	hints := "enter: send | ctrl+n: new | ctrl+l: language | ctrl+c: quit"
	if m.voiceEnabled {
		hints = "enter: send | ctrl+r: talk | ctrl+n: new | ctrl+l: language | ctrl+c: quit"
	}
	parts = append(parts, hints)

	return statusStyle.Render(strings.Join(parts, "  |  "))
}

func renderConversation(conversation orchestration.Conversation, width int) string {
	if len(conversation.Entries) == 0 {
		return recordStyle.Render("Say hello to your banking assistant.")
	}

	blocks := make([]string, 0, len(conversation.Entries))
	for _, entry := range conversation.Entries {
		blocks = append(blocks, renderEntry(entry, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderEntry(entry orchestration.Entry, width int) string {
	var b strings.Builder

	timestamp := timestampStyle.Render(entry.CreatedAt.Format("15:04"))
	switch entry.Role {
	case orchestration.RoleUser:
		b.WriteString(userLabelStyle.Render("You") + " " + timestamp + "\n")
		b.WriteString(wrap(entry.Text, width))
	case orchestration.RoleError:
		b.WriteString(wrap(errorStyle.Render(entry.Text), width))
	default:
		b.WriteString(assistantLabelStyle.Render("Assistant") + " " + timestamp + "\n")
		if entry.VerificationSucceeded {
			b.WriteString(celebrationStyle.Render("✔ ") + wrap(entry.Text, width))
		} else {
			b.WriteString(wrap(entry.Text, width))
		}
	}

	if entry.Confirmation != nil {
		b.WriteString("\n" + renderConfirmation(*entry.Confirmation))
	}
	if !entry.Records.IsZero() {
		b.WriteString("\n" + renderRecords(entry.Records))
	}
	if len(entry.Options) > 0 {
		b.WriteString("\n" + renderOptions(entry.Options))
	}
	if entry.RequiresVerification {
		b.WriteString("\n" + challengeStyle.Render("Enter the 6-digit OTP to continue."))
	}

	return b.String()
}

func renderConfirmation(confirmation assistant.Confirmation) string {
	var lines []string
	if confirmation.Amount != 0 {
		lines = append(lines, fmt.Sprintf("  Amount: ₹%.2f", confirmation.Amount))
	}
	if confirmation.FromAccount != "" {
		lines = append(lines, "  From:   "+confirmation.FromAccount)
	}
	if confirmation.ToBeneficiary != "" {
		lines = append(lines, "  To:     "+confirmation.ToBeneficiary)
	}
	if confirmation.Mode != "" {
		lines = append(lines, "  Mode:   "+confirmation.Mode)
	}
	if confirmation.NeedsConfirmation {
		lines = append(lines, optionStyle.Render("  [1] Yes   [2] No"))
	}
	return recordStyle.Render(strings.Join(lines, "\n"))
}

func renderOptions(options []assistant.Option) string {
	lines := make([]string, 0, len(options))
	for i, option := range options {
		label := option.Text
		if label == "" {
			label = option.Value()
		}
		lines = append(lines, fmt.Sprintf("  [%d] %s", i+1, label))
	}
	return optionStyle.Render(strings.Join(lines, "\n"))
}

func renderRecords(records assistant.Records) string {
	var lines []string

	for _, transaction := range records.Transactions {
		lines = append(lines, fmt.Sprintf("  %-12s %-28s %8s ₹%.2f",
			transaction.Date, truncate(transaction.Description, 28), transaction.Type, transaction.Amount))
	}
	for _, payment := range records.Payments {
		lines = append(lines, fmt.Sprintf("  %-12s %-28s %8s ₹%.2f",
			payment.DueDate, truncate(payment.Payee, 28), payment.Status, payment.Amount))
	}
	for _, loan := range records.Loans {
		lines = append(lines, fmt.Sprintf("  %-20s due %-12s EMI ₹%.2f outstanding ₹%.2f",
			truncate(loan.Type, 20), loan.NextDueDate, loan.EMI, loan.Outstanding))
	}
	for _, card := range records.Cards {
		lines = append(lines, fmt.Sprintf("  %s ****%s due %-12s outstanding ₹%.2f limit ₹%.2f",
			truncate(card.Type, 16), card.LastFour, card.DueDate, card.Outstanding, card.AvailableLimit))
	}

	return recordStyle.Render(strings.Join(lines, "\n"))
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	if limit <= 3 {
		return text[:limit]
	}
	return text[:limit-3] + "..."
}
