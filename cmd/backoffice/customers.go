package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/customers"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var (
	customerPage        int
	customerSize        int
	customerStatus      string
	customerSearch      string
	customerName        string
	customerContact     string
	customerEmail       string
	customerPhone       string
	customerAddress     string
	customerTerms       string
	customerCreditLimit string
	customerTaxID       string
	customerState       string
)

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filters customers.Filters
		if customerStatus != "" {
			s := customers.Status(customerStatus)
			filters.Status = &s
		}
		if customerSearch != "" {
			filters.Search = &customerSearch
		}

		list := customers.NewList(app.customers, filters, app.cfg.Pagination, app.logger)
		defer list.Close()

		if err := list.Resize(customerSize); err != nil {
			fmt.Println(list.Message())
			return err
		}
		if err := list.GoTo(customerPage); err != nil {
			fmt.Println(list.Message())
			return err
		}

		if list.Empty() {
			fmt.Println("No customers found")
			pageFooter(list.Page(), list.Total())
			return nil
		}

		rows := make([][]string, 0, len(list.Items()))
		for _, c := range list.Items() {
			limit := ""
			if c.CreditLimit != nil {
				limit = c.CreditLimit.String()
			}
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10), c.Name, c.ContactPerson, c.Email, limit, string(c.Status),
			})
		}
		table([]string{"ID", "NAME", "CONTACT", "EMAIL", "CREDIT LIMIT", "STATUS"}, rows)
		pageFooter(list.Page(), list.Total())
		return nil
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid customer id %q", args[0])
		}

		detail := customers.NewDetail(app.customers, app.logger)
		defer detail.Close()

		if err := detail.Load(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		return printJSON(detail.Entity())
	},
}

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE:  func(cmd *cobra.Command, args []string) error { return saveCustomer(0) },
}

var customersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer (full-record replace)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid customer id %q", args[0])
		}
		return saveCustomer(id)
	},
}

var customersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid customer id %q", args[0])
		}

		detail := customers.NewDetail(app.customers, app.logger)
		defer detail.Close()

		if err := detail.Delete(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		fmt.Printf("customer %d deleted\n", id)
		return nil
	},
}

// saveCustomer drives the customer form: edit mode seeds from the fetched
// record, flags overwrite draft fields, and submit sends the full payload.
func saveCustomer(id int64) error {
	form := customers.NewForm(app.customers, app.logger)
	defer form.Close()

	if id != 0 {
		current, err := app.customers.Find(context.Background(), id)
		if err != nil {
			fmt.Println(customers.MsgFetchFailed)
			return err
		}
		customers.SeedEdit(form, *current)
	}

	var creditLimit *decimal.Decimal
	if customerCreditLimit != "" {
		limit, err := decimal.NewFromString(customerCreditLimit)
		if err != nil {
			return fmt.Errorf("invalid credit limit %q", customerCreditLimit)
		}
		creditLimit = &limit
	}

	form.Edit(func(draft *customers.Customer) {
		if customerName != "" {
			draft.Name = customerName
		}
		if customerContact != "" {
			draft.ContactPerson = customerContact
		}
		if customerEmail != "" {
			draft.Email = customerEmail
		}
		if customerPhone != "" {
			draft.Phone = customerPhone
		}
		if customerAddress != "" {
			draft.Address = customerAddress
		}
		if customerTerms != "" {
			draft.PaymentTerms = customerTerms
		}
		if creditLimit != nil {
			draft.CreditLimit = creditLimit
		}
		if customerTaxID != "" {
			draft.TaxID = customerTaxID
		}
		if customerState != "" {
			draft.Status = customers.Status(customerState)
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
		fmt.Printf("customer %d created\n", saved.ID)
	} else {
		fmt.Printf("customer %d updated\n", saved.ID)
	}
	return nil
}

func printViolations(v forms.Violations) {
	for _, field := range v.Fields() {
		fmt.Printf("%s: %s\n", field, v[field])
	}
}

func init() {
	customersListCmd.Flags().IntVar(&customerPage, "page", 0, "zero-based page")
	customersListCmd.Flags().IntVar(&customerSize, "size", 0, "rows per page")
	customersListCmd.Flags().StringVar(&customerStatus, "status", "", "filter by status (active|inactive)")
	customersListCmd.Flags().StringVar(&customerSearch, "search", "", "search term")

	for _, cmd := range []*cobra.Command{customersCreateCmd, customersUpdateCmd} {
		cmd.Flags().StringVar(&customerName, "name", "", "customer name")
		cmd.Flags().StringVar(&customerContact, "contact", "", "contact person")
		cmd.Flags().StringVar(&customerEmail, "email", "", "email address")
		cmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")
		cmd.Flags().StringVar(&customerAddress, "address", "", "postal address")
		cmd.Flags().StringVar(&customerTerms, "terms", "", "payment terms")
		cmd.Flags().StringVar(&customerCreditLimit, "credit-limit", "", "credit limit")
		cmd.Flags().StringVar(&customerTaxID, "tax-id", "", "tax id")
		cmd.Flags().StringVar(&customerState, "status", "", "status (active|inactive)")
	}

	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersGetCmd)
	customersCmd.AddCommand(customersCreateCmd)
	customersCmd.AddCommand(customersUpdateCmd)
	customersCmd.AddCommand(customersDeleteCmd)
}
