package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(w, t.Render())
}

func departmentRows(list []department.Department) [][]string {
	return lo.Map(list, func(d department.Department, _ int) []string {
		return []string{formatID(d.ID), d.Name}
	})
}

func sellerRows(list []seller.Seller) [][]string {
	return lo.Map(list, func(s seller.Seller, _ int) []string {
		birth, salary := "", ""
		if s.BirthDate != nil {
			birth = s.BirthDate.Format(form.DateLayout)
		}
		if s.BaseSalary != nil {
			salary = s.BaseSalary.StringFixed(2)
		}
		return []string{formatID(s.ID), s.Name, s.Email, birth, salary, s.DepartmentName()}
	})
}
