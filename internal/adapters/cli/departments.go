package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
)

func newDepartmentsCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"dept"},
		Short:   "Department management",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List departments",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				view := a.Registry.Departments()
				if err := view.Refresh(cmd.Context()); err != nil {
					return err
				}
				renderTable(cmd.OutOrStdout(), []string{"Id", "Name"}, departmentRows(view.Items()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Create a department",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.editDepartment(cmd, &department.Department{})
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit a department",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseIDArg(args[0])
				if err != nil {
					return err
				}
				d, err := a.Registry.Department(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.editDepartment(cmd, d)
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a department",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseIDArg(args[0])
				if err != nil {
					return err
				}
				ok, err := a.Prompter.Confirm(fmt.Sprintf("Remove department %d", id))
				if err != nil || !ok {
					return ignoreCanceled(err)
				}
				if err := a.Registry.RemoveDepartment(cmd.Context(), id); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("removed"))
				return nil
			},
		},
	)
	return cmd
}

func (a *App) editDepartment(cmd *cobra.Command, d *department.Department) error {
	out := cmd.OutOrStdout()
	dialog := newTerminalDialog(out)

	f := a.Registry.DepartmentForm(dialog)
	f.SetEntity(d)
	f.PopulateFields()

	return a.session(out, dialog).run(cmd.Context(), f)
}
