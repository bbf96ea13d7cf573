package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/suppliers"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers",
}

var (
	supplierPage    int
	supplierSize    int
	supplierStatus  string
	supplierName    string
	supplierContact string
	supplierEmail   string
	supplierPhone   string
	supplierAddress string
	supplierTerms   string
	supplierTaxID   string
	supplierNotes   string
	supplierState   string
)

var suppliersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filters suppliers.Filters
		if supplierStatus != "" {
			s := suppliers.Status(supplierStatus)
			filters.Status = &s
		}

		list := suppliers.NewList(app.suppliers, filters, app.cfg.Pagination, app.logger)
		defer list.Close()

		if err := list.Resize(supplierSize); err != nil {
			fmt.Println(list.Message())
			return err
		}
		if err := list.GoTo(supplierPage); err != nil {
			fmt.Println(list.Message())
			return err
		}

		if list.Empty() {
			fmt.Println("No suppliers found")
			pageFooter(list.Page(), list.Total())
			return nil
		}

		rows := make([][]string, 0, len(list.Items()))
		for _, s := range list.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(s.ID, 10), s.Name, s.ContactPerson, s.Email, s.Phone, string(s.Status),
			})
		}
		table([]string{"ID", "NAME", "CONTACT", "EMAIL", "PHONE", "STATUS"}, rows)
		pageFooter(list.Page(), list.Total())
		return nil
	},
}

var suppliersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier id %q", args[0])
		}

		detail := suppliers.NewDetail(app.suppliers, app.logger)
		defer detail.Close()

		if err := detail.Load(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		return printJSON(detail.Entity())
	},
}

var suppliersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a supplier",
	RunE:  func(cmd *cobra.Command, args []string) error { return saveSupplier(0) },
}

var suppliersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a supplier (full-record replace)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier id %q", args[0])
		}
		return saveSupplier(id)
	},
}

var suppliersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier id %q", args[0])
		}

		detail := suppliers.NewDetail(app.suppliers, app.logger)
		defer detail.Close()

		if err := detail.Delete(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		fmt.Printf("supplier %d deleted\n", id)
		return nil
	},
}

func saveSupplier(id int64) error {
	form := suppliers.NewForm(app.suppliers, app.logger)
	defer form.Close()

	if id != 0 {
		current, err := app.suppliers.Find(context.Background(), id)
		if err != nil {
			fmt.Println(suppliers.MsgFetchFailed)
			return err
		}
		form.Seed(*current)
	}

	form.Edit(func(draft *suppliers.Supplier) {
		if supplierName != "" {
			draft.Name = supplierName
		}
		if supplierContact != "" {
			draft.ContactPerson = supplierContact
		}
		if supplierEmail != "" {
			draft.Email = supplierEmail
		}
		if supplierPhone != "" {
			draft.Phone = supplierPhone
		}
		if supplierAddress != "" {
			draft.Address = supplierAddress
		}
		if supplierTerms != "" {
			draft.PaymentTerms = supplierTerms
		}
		if supplierTaxID != "" {
			draft.TaxID = supplierTaxID
		}
		if supplierNotes != "" {
			draft.Notes = supplierNotes
		}
		if supplierState != "" {
			draft.Status = suppliers.Status(supplierState)
		}
	})

	if err := form.Submit(); err != nil {
		var ve *forms.Error
		if errors.As(err, &ve) {
			printViolations(ve.Violations)
			return err
		}
		fmt.Println(form.Message())
		return err
	}

	saved := form.Saved()
	if id == 0 {
		fmt.Printf("supplier %d created\n", saved.ID)
	} else {
		fmt.Printf("supplier %d updated\n", saved.ID)
	}
	return nil
}

func init() {
	suppliersListCmd.Flags().IntVar(&supplierPage, "page", 0, "zero-based page")
	suppliersListCmd.Flags().IntVar(&supplierSize, "size", 0, "rows per page")
	suppliersListCmd.Flags().StringVar(&supplierStatus, "status", "", "filter by status (active|inactive)")

	for _, cmd := range []*cobra.Command{suppliersCreateCmd, suppliersUpdateCmd} {
		cmd.Flags().StringVar(&supplierName, "name", "", "supplier name")
		cmd.Flags().StringVar(&supplierContact, "contact", "", "contact person")
		cmd.Flags().StringVar(&supplierEmail, "email", "", "email address")
		cmd.Flags().StringVar(&supplierPhone, "phone", "", "phone number")
		cmd.Flags().StringVar(&supplierAddress, "address", "", "postal address")
		cmd.Flags().StringVar(&supplierTerms, "terms", "", "payment terms")
		cmd.Flags().StringVar(&supplierTaxID, "tax-id", "", "tax id")
		cmd.Flags().StringVar(&supplierNotes, "notes", "", "free-form notes")
		cmd.Flags().StringVar(&supplierState, "status", "", "status (active|inactive)")
	}

	suppliersCmd.AddCommand(suppliersListCmd)
	suppliersCmd.AddCommand(suppliersGetCmd)
	suppliersCmd.AddCommand(suppliersCreateCmd)
	suppliersCmd.AddCommand(suppliersUpdateCmd)
	suppliersCmd.AddCommand(suppliersDeleteCmd)
}
