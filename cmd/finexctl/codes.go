package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finex/backend/internal/application/usecase/product"
	"github.com/finex/backend/internal/domain/entity"
)

func codesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Inspect product codes",
	}

	cmd.AddCommand(nextCodeCmd())

	return cmd
}

func nextCodeCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the code the next product of an operator would get",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			op, err := s.operators.FindByUsername(cmd.Context(), entity.NormalizeUsername(username))
			if err != nil {
				return fmt.Errorf("operator %q: %w", username, err)
			}

			generator := product.NewCodeGenerator(s.products, s.locker)
			code, err := product.NewNextCodeUseCase(generator).Execute(cmd.Context(), op)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", subtleStyle.Render(op.Name+":"), headerStyle.Render(code))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "operator", "", "operator username")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}
