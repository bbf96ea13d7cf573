package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/purchases"
	"github.com/tidewater-labs/backoffice/pkg/dates"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

var purchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Manage purchase orders",
}

var (
	purchasePage     int
	purchaseSize     int
	purchaseStatus   string
	purchasePayment  string
	purchaseSupplier int64

	purchaseSupplierID int64
	purchaseNumber     string
	purchaseDate       string
	purchaseDue        string
	purchaseState      string
	purchasePayState   string
	purchaseItems      []string
)

var purchasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List purchase orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filters purchases.Filters
		if purchaseStatus != "" {
			s := purchases.OrderStatus(purchaseStatus)
			filters.Status = &s
		}
		if purchasePayment != "" {
			p := purchases.PaymentStatus(purchasePayment)
			filters.PaymentStatus = &p
		}
		if purchaseSupplier != 0 {
			filters.SupplierID = &purchaseSupplier
		}

		list := purchases.NewList(app.purchases, filters, app.cfg.Pagination, app.logger)
		defer list.Close()

		if err := list.Resize(purchaseSize); err != nil {
			fmt.Println(list.Message())
			return err
		}
		if err := list.GoTo(purchasePage); err != nil {
			fmt.Println(list.Message())
			return err
		}

		if list.Empty() {
			fmt.Println("No purchase orders found")
			pageFooter(list.Page(), list.Total())
			return nil
		}

		rows := make([][]string, 0, len(list.Items()))
		for _, o := range list.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(o.ID, 10),
				o.OrderNumber,
				strconv.FormatInt(o.SupplierID, 10),
				o.OrderDate.String(),
				string(o.Status),
				string(o.PaymentStatus),
				o.TotalAmount.String(),
			})
		}
		table([]string{"ID", "NUMBER", "SUPPLIER", "DATE", "STATUS", "PAYMENT", "TOTAL"}, rows)
		pageFooter(list.Page(), list.Total())
		return nil
	},
}

var purchasesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one purchase order with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid purchase order id %q", args[0])
		}

		detail := purchases.NewDetail(app.purchases, app.logger)
		defer detail.Close()

		if err := detail.Load(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}

		if err := printJSON(detail.Entity()); err != nil {
			return err
		}

		items := detail.Dependents()
		if len(items) == 0 {
			return nil
		}
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{
				item.ItemDescription,
				item.Quantity.String(),
				item.UnitPrice.String(),
				item.TaxRate.String(),
				item.Subtotal.String(),
			})
		}
		fmt.Println()
		table([]string{"DESCRIPTION", "QTY", "UNIT PRICE", "TAX %", "SUBTOTAL"}, rows)
		return nil
	},
}

var purchasesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a purchase order with its line items",
	RunE:  func(cmd *cobra.Command, args []string) error { return savePurchase(0) },
}

var purchasesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a purchase order (full-record replace)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid purchase order id %q", args[0])
		}
		return savePurchase(id)
	},
}

var purchasesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a purchase order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid purchase order id %q", args[0])
		}

		detail := purchases.NewDetail(app.purchases, app.logger)
		defer detail.Close()

		if err := detail.Delete(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		fmt.Printf("purchase order %d deleted\n", id)
		return nil
	},
}

func savePurchase(id int64) error {
	form := purchases.NewForm(app.purchases, app.logger)
	defer form.Close()

	if id != 0 {
		current, err := app.purchases.Find(context.Background(), id)
		if err != nil {
			fmt.Println(purchases.MsgFetchFailed)
			return err
		}
		form.Seed(*current)
	}

	var orderDate, dueDate *dates.Date
	if purchaseDate != "" {
		d, err := dates.Parse(purchaseDate)
		if err != nil {
			return fmt.Errorf("invalid order date %q", purchaseDate)
		}
		orderDate = &d
	}
	if purchaseDue != "" {
		d, err := dates.Parse(purchaseDue)
		if err != nil {
			return fmt.Errorf("invalid due date %q", purchaseDue)
		}
		dueDate = &d
	}

	var items []purchases.Item
	for _, raw := range purchaseItems {
		item, err := parseItem(raw)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	form.Edit(func(draft *purchases.Order) {
		if purchaseSupplierID != 0 {
			draft.SupplierID = purchaseSupplierID
		}
		if purchaseNumber != "" {
			draft.OrderNumber = purchaseNumber
		}
		if orderDate != nil {
			draft.OrderDate = *orderDate
		}
		if dueDate != nil {
			draft.DueDate = dueDate
		}
		if purchaseState != "" {
			draft.Status = purchases.OrderStatus(purchaseState)
		}
		if purchasePayState != "" {
			draft.PaymentStatus = purchases.PaymentStatus(purchasePayState)
		}
		if items != nil {
			draft.Items = items
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
		fmt.Printf("purchase order %d created, total %s\n", saved.ID, saved.TotalAmount.String())
	} else {
		fmt.Printf("purchase order %d updated, total %s\n", saved.ID, saved.TotalAmount.String())
	}
	return nil
}

// parseItem reads one --item flag in description|quantity|unit-price[|tax-rate]
// form. The subtotal is left to ComputeTotals at submit time.
func parseItem(raw string) (purchases.Item, error) {
	parts := strings.Split(raw, "|")
	if len(parts) < 3 || len(parts) > 4 {
		return purchases.Item{}, fmt.Errorf("invalid item %q: want description|quantity|unit-price[|tax-rate]", raw)
	}

	quantity, err := decimal.NewFromString(parts[1])
	if err != nil {
		return purchases.Item{}, fmt.Errorf("invalid quantity in item %q", raw)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil {
		return purchases.Item{}, fmt.Errorf("invalid unit price in item %q", raw)
	}
	tax := decimal.Zero
	if len(parts) == 4 {
		tax, err = decimal.NewFromString(parts[3])
		if err != nil {
			return purchases.Item{}, fmt.Errorf("invalid tax rate in item %q", raw)
		}
	}

	return purchases.Item{
		ItemDescription: parts[0],
		Quantity:        quantity,
		UnitPrice:       price,
		TaxRate:         tax,
	}, nil
}

func init() {
	purchasesListCmd.Flags().IntVar(&purchasePage, "page", 0, "zero-based page")
	purchasesListCmd.Flags().IntVar(&purchaseSize, "size", 0, "rows per page")
	purchasesListCmd.Flags().StringVar(&purchaseStatus, "status", "", "filter by status (draft|approved|received|cancelled)")
	purchasesListCmd.Flags().StringVar(&purchasePayment, "payment", "", "filter by payment status (unpaid|partial|paid)")
	purchasesListCmd.Flags().Int64Var(&purchaseSupplier, "supplier", 0, "filter by supplier id")

	for _, cmd := range []*cobra.Command{purchasesCreateCmd, purchasesUpdateCmd} {
		cmd.Flags().Int64Var(&purchaseSupplierID, "supplier", 0, "supplier id")
		cmd.Flags().StringVar(&purchaseNumber, "number", "", "order number")
		cmd.Flags().StringVar(&purchaseDate, "date", "", "order date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&purchaseDue, "due", "", "due date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&purchaseState, "status", "", "status (draft|approved|received|cancelled)")
		cmd.Flags().StringVar(&purchasePayState, "payment", "", "payment status (unpaid|partial|paid)")
		cmd.Flags().StringArrayVar(&purchaseItems, "item", nil, "line item as description|quantity|unit-price[|tax-rate], repeatable")
	}

	purchasesCmd.AddCommand(purchasesListCmd)
	purchasesCmd.AddCommand(purchasesGetCmd)
	purchasesCmd.AddCommand(purchasesCreateCmd)
	purchasesCmd.AddCommand(purchasesUpdateCmd)
	purchasesCmd.AddCommand(purchasesDeleteCmd)
}
