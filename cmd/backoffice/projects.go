package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/projects"
	"github.com/tidewater-labs/backoffice/pkg/dates"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var (
	projectPage        int
	projectSize        int
	projectStatus      string
	projectCustomer    int64
	projectName        string
	projectCustomerID  int64
	projectStart       string
	projectEnd         string
	projectState       string
	projectBudget      string
	projectDescription string
)

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filters projects.Filters
		if projectStatus != "" {
			s := projects.Status(projectStatus)
			filters.Status = &s
		}
		if projectCustomer != 0 {
			filters.CustomerID = &projectCustomer
		}

		list := projects.NewList(app.projects, filters, app.cfg.Pagination, app.logger)
		defer list.Close()

		if err := list.Resize(projectSize); err != nil {
			fmt.Println(list.Message())
			return err
		}
		if err := list.GoTo(projectPage); err != nil {
			fmt.Println(list.Message())
			return err
		}

		if list.Empty() {
			fmt.Println("No projects found")
			pageFooter(list.Page(), list.Total())
			return nil
		}

		rows := make([][]string, 0, len(list.Items()))
		for _, p := range list.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.ProjectNumber,
				p.ProjectName,
				strconv.FormatInt(p.CustomerID, 10),
				p.StartDate.String(),
				string(p.Status),
				p.BudgetAmount.String(),
			})
		}
		table([]string{"ID", "NUMBER", "NAME", "CUSTOMER", "START", "STATUS", "BUDGET"}, rows)
		pageFooter(list.Page(), list.Total())
		return nil
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		detail := projects.NewDetail(app.projects, app.logger)
		defer detail.Close()

		if err := detail.Load(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		return printJSON(detail.Entity())
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE:  func(cmd *cobra.Command, args []string) error { return saveProject(0) },
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project (full-record replace; the project number never changes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}
		return saveProject(id)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		detail := projects.NewDetail(app.projects, app.logger)
		defer detail.Close()

		if err := detail.Delete(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		fmt.Printf("project %d deleted\n", id)
		return nil
	},
}

func saveProject(id int64) error {
	form := projects.NewForm(app.projects, app.logger)
	defer form.Close()

	if id != 0 {
		current, err := app.projects.Find(context.Background(), id)
		if err != nil {
			fmt.Println(projects.MsgFetchFailed)
			return err
		}
		form.Seed(*current)
	}

	var budget *decimal.Decimal
	if projectBudget != "" {
		b, err := decimal.NewFromString(projectBudget)
		if err != nil {
			return fmt.Errorf("invalid budget amount %q", projectBudget)
		}
		budget = &b
	}
	var start, end *dates.Date
	if projectStart != "" {
		d, err := dates.Parse(projectStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q", projectStart)
		}
		start = &d
	}
	if projectEnd != "" {
		d, err := dates.Parse(projectEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q", projectEnd)
		}
		end = &d
	}

	form.Edit(func(draft *projects.Project) {
		if projectName != "" {
			draft.ProjectName = projectName
		}
		if projectCustomerID != 0 {
			draft.CustomerID = projectCustomerID
		}
		if start != nil {
			draft.StartDate = *start
		}
		if end != nil {
			draft.EndDate = end
		}
		if projectState != "" {
			draft.Status = projects.Status(projectState)
		}
		if budget != nil {
			draft.BudgetAmount = *budget
		}
		if projectDescription != "" {
			draft.Description = projectDescription
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
		fmt.Printf("project %d created (number %s)\n", saved.ID, saved.ProjectNumber)
	} else {
		fmt.Printf("project %d updated\n", saved.ID)
	}
	return nil
}

func init() {
	projectsListCmd.Flags().IntVar(&projectPage, "page", 0, "zero-based page")
	projectsListCmd.Flags().IntVar(&projectSize, "size", 0, "rows per page")
	projectsListCmd.Flags().StringVar(&projectStatus, "status", "", "filter by status (active|completed|on-hold|cancelled)")
	projectsListCmd.Flags().Int64Var(&projectCustomer, "customer", 0, "filter by customer id")

	for _, cmd := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		cmd.Flags().StringVar(&projectName, "name", "", "project name")
		cmd.Flags().Int64Var(&projectCustomerID, "customer", 0, "owning customer id")
		cmd.Flags().StringVar(&projectStart, "start", "", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&projectEnd, "end", "", "end date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&projectState, "status", "", "status (active|completed|on-hold|cancelled)")
		cmd.Flags().StringVar(&projectBudget, "budget", "", "budget amount")
		cmd.Flags().StringVar(&projectDescription, "description", "", "description")
	}

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
