package mocktest

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rajannraj/rtomock/internal/countdown"
)

// timerTickMsg is sent every second while a test is running. The token ties
// the tick to the countdown that scheduled it.
type timerTickMsg struct {
	token countdown.Token
}

// exportDoneMsg reports the result of writing a certificate.
type exportDoneMsg struct {
	sessionID string
	path      string
	err       error
}

func tickCmd(tok countdown.Token) tea.Cmd {
	return tea.Tick(countdown.Resolution, func(time.Time) tea.Msg {
		return timerTickMsg{token: tok}
	})
}
