package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finex/backend/internal/application/usecase/export"
	"github.com/finex/backend/internal/integration/spreadsheet"
)

func exportCmd() *cobra.Command {
	var start, end, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the movements of a period to xlsx",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			output, err := export.NewExportMovementsUseCase(s.movements, spreadsheet.NewRenderer()).
				Execute(cmd.Context(), export.ExportMovementsInput{Start: start, End: end})
			if err != nil {
				return err
			}

			path := out
			if info, statErr := os.Stat(out); out == "" || (statErr == nil && info.IsDir()) {
				path = filepath.Join(out, output.Filename)
			}

			if err := os.WriteFile(path, output.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Wrote %d movements to %s", output.Rows, path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&out, "out", "", "output file or directory (default: current directory)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
