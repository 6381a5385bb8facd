package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var (
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

// terminalDialog hosts one form session. Alerts are printed as they arrive
// and remembered so the session can offer a retry.
type terminalDialog struct {
	out     io.Writer
	closed  bool
	alerted bool
}

var _ ports.Dialog = (*terminalDialog)(nil)

func newTerminalDialog(out io.Writer) *terminalDialog {
	return &terminalDialog{out: out}
}

func (d *terminalDialog) Close() {
	d.closed = true
}

func (d *terminalDialog) Alert(title, message string) {
	d.alerted = true
	_, _ = fmt.Fprintln(d.out, alertStyle.Render(alertTitleStyle.Render(title)+"\n"+message))
}

// reset forgets the previous alert before a retry.
func (d *terminalDialog) reset() {
	d.alerted = false
}
