package cli

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

var sellerHeaders = []string{"Id", "Name", "Email", "Birth Date", "Base Salary", "Department"}

func newSellersCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sellers",
		Short: "Seller management",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List sellers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				view := a.Registry.Sellers()
				if err := view.Refresh(cmd.Context()); err != nil {
					return err
				}
				renderTable(cmd.OutOrStdout(), sellerHeaders, sellerRows(view.Items()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Create a seller",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.editSeller(cmd, &seller.Seller{})
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit a seller",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseIDArg(args[0])
				if err != nil {
					return err
				}
				s, err := a.Registry.Seller(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.editSeller(cmd, s)
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a seller",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseIDArg(args[0])
				if err != nil {
					return err
				}
				ok, err := a.Prompter.Confirm(fmt.Sprintf("Remove seller %d", id))
				if err != nil || !ok {
					return ignoreCanceled(err)
				}
				if err := a.Registry.RemoveSeller(cmd.Context(), id); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("removed"))
				return nil
			},
		},
	)
	return cmd
}

func (a *App) editSeller(cmd *cobra.Command, s *seller.Seller) error {
	out := cmd.OutOrStdout()
	dialog := newTerminalDialog(out)

	f := a.Registry.SellerForm(dialog)
	if err := f.LoadAssociatedObjects(cmd.Context()); err != nil {
		return fmt.Errorf("loading departments: %w", err)
	}
	f.SetEntity(s)
	f.PopulateFields()

	sess := a.session(out, dialog)
	sess.choices[form.SlotDepartment] = lo.Map(f.DepartmentOptions(), func(d department.Department, _ int) choice {
		return choice{value: formatID(d.ID), label: d.Name}
	})
	return sess.run(cmd.Context(), f)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, ErrCanceled) {
		return nil
	}
	return err
}
