package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tidewater-labs/backoffice/internal/documents"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage documents and their version history",
}

var (
	documentPage       int
	documentSize       int
	documentType       string
	documentStatus     string
	documentEntityType string
	documentEntityID   int64

	documentName        string
	documentFile        string
	documentExpiry      string
	documentTags        string
	documentDescription string
	documentNotes       string
	documentOut         string
)

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filters documents.Filters
		filters.Related = documents.RelatedEntity{
			Kind: documents.RelatedKind(documentEntityType),
			ID:   documentEntityID,
		}
		if documentType != "" {
			filters.DocumentType = &documentType
		}
		if documentStatus != "" {
			s := documents.Status(documentStatus)
			filters.Status = &s
		}

		list := documents.NewList(app.documents, filters, app.cfg.Pagination, app.logger)
		defer list.Close()

		if err := list.Resize(documentSize); err != nil {
			fmt.Println(list.Message())
			return err
		}
		if err := list.GoTo(documentPage); err != nil {
			fmt.Println(list.Message())
			return err
		}

		if list.Empty() {
			fmt.Println("No documents found")
			pageFooter(list.Page(), list.Total())
			return nil
		}

		rows := make([][]string, 0, len(list.Items()))
		for _, d := range list.Items() {
			rows = append(rows, []string{
				strconv.FormatInt(d.ID, 10),
				d.Name,
				d.DocumentType,
				string(d.Status),
				d.Related.Label(),
				d.Tags.String(),
			})
		}
		table([]string{"ID", "NAME", "TYPE", "STATUS", "RELATED", "TAGS"}, rows)
		pageFooter(list.Page(), list.Total())
		return nil
	},
}

var documentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one document and its version history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		detail := documents.NewDetail(app.documents, app.logger)
		defer detail.Close()

		if err := detail.Load(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}

		if err := printJSON(detail.Entity()); err != nil {
			return err
		}

		versions := detail.Dependents()
		if len(versions) == 0 {
			return nil
		}
		rows := make([][]string, 0, len(versions))
		for _, v := range versions {
			rows = append(rows, []string{
				strconv.Itoa(v.VersionNumber),
				v.UploadDate.String(),
				v.Notes,
			})
		}
		fmt.Println()
		table([]string{"VERSION", "UPLOADED", "NOTES"}, rows)
		return nil
	},
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a new document with its file content",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := documents.UploadRequest{
			Name:         documentName,
			DocumentType: documentType,
			Status:       documents.StatusActive,
			Related: documents.RelatedEntity{
				Kind: documents.RelatedKind(documentEntityType),
				ID:   documentEntityID,
			},
			ExpiryDate:  documentExpiry,
			Tags:        documents.ParseTags(documentTags),
			Description: documentDescription,
		}
		if documentStatus != "" {
			req.Status = documents.Status(documentStatus)
		}

		if documentFile != "" {
			data, err := os.ReadFile(documentFile)
			if err != nil {
				return fmt.Errorf("read %s: %w", documentFile, err)
			}
			req.Filename = filepath.Base(documentFile)
			req.Data = data
		}

		created, err := app.documents.Upload(context.Background(), req)
		if err != nil {
			var ve *forms.Error
			if errors.As(err, &ve) {
				printViolations(ve.Violations)
				return err
			}
			fmt.Println(documents.MsgUploadFailed)
			return err
		}

		fmt.Printf("document %d uploaded\n", created.ID)
		return nil
	},
}

var documentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a document's metadata (file content is never changed here)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		ctx := context.Background()
		current, err := app.documents.Find(ctx, id)
		if err != nil {
			fmt.Println(documents.MsgFetchFailed)
			return err
		}

		doc := *current
		if documentName != "" {
			doc.Name = documentName
		}
		if documentType != "" {
			doc.DocumentType = documentType
		}
		if documentStatus != "" {
			doc.Status = documents.Status(documentStatus)
		}
		if documentEntityType != "" || documentEntityID != 0 {
			doc.Related = documents.RelatedEntity{
				Kind: documents.RelatedKind(documentEntityType),
				ID:   documentEntityID,
			}
			if err := doc.Related.Validate(); err != nil {
				return err
			}
		}
		if documentTags != "" {
			doc.Tags = documents.ParseTags(documentTags)
		}
		if documentDescription != "" {
			doc.Description = documentDescription
		}

		updated, err := app.documents.Update(ctx, id, doc)
		if err != nil {
			fmt.Println(documents.MsgUpdateFailed)
			return err
		}
		fmt.Printf("document %d updated\n", updated.ID)
		return nil
	},
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		detail := documents.NewDetail(app.documents, app.logger)
		defer detail.Close()

		if err := detail.Delete(id); err != nil {
			fmt.Println(detail.Message())
			return err
		}
		fmt.Printf("document %d deleted\n", id)
		return nil
	},
}

var documentsDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a document's current file content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		out := documentOut
		if out == "" {
			out = fmt.Sprintf("document-%d", id)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		detail := documents.NewDetail(app.documents, app.logger)
		defer detail.Close()

		err = detail.Download(func(ctx context.Context) error {
			return app.documents.Download(ctx, id, f)
		})
		if err != nil {
			fmt.Println(detail.Message())
			os.Remove(out)
			return err
		}

		fmt.Printf("saved %s\n", out)
		return nil
	},
}

var documentsUploadVersionCmd = &cobra.Command{
	Use:   "upload-version <id>",
	Short: "Append new file content as a new version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		req := documents.VersionUploadRequest{Notes: documentNotes}
		if documentFile != "" {
			data, err := os.ReadFile(documentFile)
			if err != nil {
				return fmt.Errorf("read %s: %w", documentFile, err)
			}
			req.Filename = filepath.Base(documentFile)
			req.Data = data
		}

		created, err := app.documents.UploadVersion(context.Background(), id, req)
		if err != nil {
			var ve *forms.Error
			if errors.As(err, &ve) {
				printViolations(ve.Violations)
				return err
			}
			fmt.Println(documents.MsgUploadFailed)
			return err
		}

		fmt.Printf("version %d uploaded for document %d\n", created.VersionNumber, id)
		return nil
	},
}

var documentsDownloadVersionCmd = &cobra.Command{
	Use:   "download-version <version-id>",
	Short: "Download one version's file content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		versionID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version id %q", args[0])
		}

		out := documentOut
		if out == "" {
			out = fmt.Sprintf("version-%d", versionID)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		detail := documents.NewDetail(app.documents, app.logger)
		defer detail.Close()

		err = detail.Download(func(ctx context.Context) error {
			return app.documents.DownloadVersion(ctx, versionID, f)
		})
		if err != nil {
			fmt.Println(detail.Message())
			os.Remove(out)
			return err
		}

		fmt.Printf("saved %s\n", out)
		return nil
	},
}

func init() {
	documentsListCmd.Flags().IntVar(&documentPage, "page", 0, "zero-based page")
	documentsListCmd.Flags().IntVar(&documentSize, "size", 0, "rows per page")
	documentsListCmd.Flags().StringVar(&documentType, "type", "", "filter by document type")
	documentsListCmd.Flags().StringVar(&documentStatus, "status", "", "filter by status (active|archived)")
	documentsListCmd.Flags().StringVar(&documentEntityType, "entity-type", "", "filter by related entity type")
	documentsListCmd.Flags().Int64Var(&documentEntityID, "entity-id", 0, "filter by related entity id")

	for _, cmd := range []*cobra.Command{documentsUploadCmd, documentsUpdateCmd} {
		cmd.Flags().StringVar(&documentName, "name", "", "document name")
		cmd.Flags().StringVar(&documentType, "type", "", "document type")
		cmd.Flags().StringVar(&documentStatus, "status", "", "status (active|archived)")
		cmd.Flags().StringVar(&documentEntityType, "entity-type", "", "related entity type")
		cmd.Flags().Int64Var(&documentEntityID, "entity-id", 0, "related entity id")
		cmd.Flags().StringVar(&documentTags, "tags", "", "comma-separated tags")
		cmd.Flags().StringVar(&documentDescription, "description", "", "description")
	}
	documentsUploadCmd.Flags().StringVar(&documentFile, "file", "", "path of the file to upload")
	documentsUploadCmd.Flags().StringVar(&documentExpiry, "expiry", "", "expiry date (YYYY-MM-DD)")

	documentsUploadVersionCmd.Flags().StringVar(&documentFile, "file", "", "path of the file to upload")
	documentsUploadVersionCmd.Flags().StringVar(&documentNotes, "notes", "", "version notes")

	documentsDownloadCmd.Flags().StringVar(&documentOut, "out", "", "output path")
	documentsDownloadVersionCmd.Flags().StringVar(&documentOut, "out", "", "output path")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsGetCmd)
	documentsCmd.AddCommand(documentsUploadCmd)
	documentsCmd.AddCommand(documentsUpdateCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	documentsCmd.AddCommand(documentsDownloadCmd)
	documentsCmd.AddCommand(documentsUploadVersionCmd)
	documentsCmd.AddCommand(documentsDownloadVersionCmd)
}
