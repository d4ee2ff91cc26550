package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finex/backend/internal/application/usecase/operator"
	"github.com/finex/backend/internal/domain/entity"
)

func operatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operators",
		Short: "Manage operators",
	}

	cmd.AddCommand(listOperatorsCmd())
	cmd.AddCommand(addOperatorCmd())
	cmd.AddCommand(deleteOperatorCmd())

	return cmd
}

func listOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			output := operator.NewListOperatorsUseCase(s.operators).Execute(cmd.Context())
			if len(output.Operators) == 0 {
				fmt.Println(subtleStyle.Render("No operators. Use 'finexctl operators add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Username"),
				headerStyle.Render("Name"),
				headerStyle.Render("Colour"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 12),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8))

			for _, op := range output.Operators {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.ID, op.Username, op.Name, swatch(op.Color.Hex(), string(op.Color)))
			}
			return nil
		},
	}
}

func addOperatorCmd() *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if name == "" {
				name = args[0]
			}

			output, err := operator.NewCreateOperatorUseCase(s.operators).Execute(cmd.Context(), operator.CreateOperatorInput{
				Username: args[0],
				Name:     name,
				Color:    entity.OperatorColor(color),
			})
			if err != nil {
				return err
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("Created operator %s (%s)", output.Operator.Username, output.Operator.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the username)")
	cmd.Flags().StringVar(&color, "color", string(entity.OperatorColorBlue), "colour tag: blue, purple or orange")

	return cmd
}

func deleteOperatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid operator id %q: %w", args[0], err)
			}

			s, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := operator.NewDeleteOperatorUseCase(s.operators).Execute(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(successStyle.Render("Deleted operator " + id.String()))
			return nil
		},
	}
}
