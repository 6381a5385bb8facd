// Package cli is the interactive terminal surface. Each command drives the
// same form and list workflows as the HTTP API, prompting for the form slots
// with promptui and printing lists as lipgloss tables.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/sellerdesk/internal/app"
)

// App holds the dependencies shared by every command.
type App struct {
	Registry *app.Registry
	Prompter Prompter
}

// NewRootCommand builds the sellerdesk command tree.
func NewRootCommand(a *App) *cobra.Command {
	if a.Prompter == nil {
		a.Prompter = TerminalPrompter{}
	}

	root := &cobra.Command{
		Use:          "sellerdesk",
		Short:        "Manage departments and sellers",
		SilenceUsage: true,
	}
	root.AddCommand(newDepartmentsCommand(a), newSellersCommand(a))
	return root
}

func (a *App) session(out io.Writer, dialog *terminalDialog) *session {
	return &session{
		prompter: a.Prompter,
		out:      out,
		dialog:   dialog,
		choices:  map[string][]choice{},
	}
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
