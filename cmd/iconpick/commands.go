package iconpick

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/surquest/icon-picker/pkg/download"
	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/export"
	"github.com/surquest/icon-picker/pkg/library"
	"github.com/surquest/icon-picker/pkg/types"
)

func newListCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the icons in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd)
			if err != nil {
				return err
			}
			if tag != "" {
				records = library.FilterByTag(records, tag)
			}

			data := pterm.TableData{{"NAME", "TAGS"}}
			for _, r := range records {
				data = append(data, []string{r.Name, strings.Join(r.Tags, ", ")})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only list icons carrying this tag")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		size   int
		color  string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export one icon as an SVG or PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd)
			if err != nil {
				return err
			}
			rec, ok := library.Find(records, args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "icon %q not found in library", args[0])
			}

			params := types.RenderParams{Size: size, Color: color}
			var artifact *types.ExportArtifact
			switch export.Format(format) {
			case export.FormatVector:
				artifact, err = export.Vector(rec, params)
			case export.FormatBitmap:
				artifact, err = export.Bitmap(rec, params)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want svg or png)", format)
			}
			if err != nil {
				return err
			}

			if err := (download.DirSink{Dir: outDir}).Trigger(artifact); err != nil {
				return err
			}
			pterm.Success.Printfln("Exported %s", artifact.Filename)
			return nil
		},
	}

	addRenderFlags(cmd, &size, &color)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format (svg or png)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func newArchiveCmd() *cobra.Command {
	var (
		size   int
		color  string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "archive [names...]",
		Short: "Export icons as a single zip archive",
		Long: `Export the named icons (or the whole library) into one zip archive.
Icons that fail to convert are skipped with a warning; the archive keeps
the surviving icons in library order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd)
			if err != nil {
				return err
			}
			selected, err := library.Select(records, args)
			if err != nil {
				return err
			}

			if export.Format(format) != export.FormatVector && export.Format(format) != export.FormatBitmap {
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want svg or png)", format)
			}

			params := types.RenderParams{Size: size, Color: color}
			artifact, results, err := export.Archive(selected, params, export.Format(format))
			for _, entry := range results.Failed() {
				pterm.Warning.Printfln("Skipped %s: %v", entry.Name, entry.Err)
			}
			if err != nil {
				return err
			}

			if err := (download.DirSink{Dir: outDir}).Trigger(artifact); err != nil {
				return err
			}
			pterm.Success.Printfln("Archived %d of %d icons into %s",
				len(results)-len(results.Failed()), len(results), artifact.Filename)
			return nil
		},
	}

	addRenderFlags(cmd, &size, &color)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Per-icon format inside the archive (svg or png)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func newStylesheetCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "stylesheet [names...]",
		Short: "Export icons as one mask-based CSS stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cmd)
			if err != nil {
				return err
			}
			selected, err := library.Select(records, args)
			if err != nil {
				return err
			}

			artifact, err := export.Stylesheet(selected)
			if err != nil {
				return err
			}

			if err := (download.DirSink{Dir: outDir}).Trigger(artifact); err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", artifact.Filename)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func addRenderFlags(cmd *cobra.Command, size *int, color *string) {
	cmd.Flags().IntVarP(size, "size", "s", 64, "Target size in pixels (16-512)")
	cmd.Flags().StringVarP(color, "color", "c", "#000000", "Fill color as 6-digit hex")
}
