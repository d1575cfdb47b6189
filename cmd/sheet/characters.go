package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd35-sheet/internal/orchestrators/sheet"
)

func (c *cli) createCmd() *cobra.Command {
	var (
		race   string
		class  string
		method string
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a level 1 character",
		Long: `Create a level 1 character with the class skills of its class and its racial traits.

Ability generation methods:
  point_buy         start every ability at 8 with 32 points to spend (default)
  random_point_buy  spend the 32 points at random
  4d6               roll 4d6 drop lowest for every ability

  Example: create "Tordek" --race dwarf --class fighter --method 4d6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.CreateCharacter(cmd.Context(), &sheet.CreateCharacterInput{
				Name:    args[0],
				ClassID: class,
				RaceID:  race,
				Method:  method,
			})
			if err != nil {
				return err
			}

			if len(output.Rolls) > 0 {
				if err := printRolls(cmd.OutOrStdout(), output.Rolls); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Point-buy value of the rolls: %d\n\n", output.RolledCost)
			}

			return printSheet(cmd.OutOrStdout(), c.catalog, output.Character)
		},
	}

	cmd.Flags().StringVar(&race, "race", "human", "race id, see list-races")
	cmd.Flags().StringVar(&class, "class", "fighter", "class id, see list-classes")
	cmd.Flags().StringVar(&method, "method", sheet.MethodPointBuy, "ability generation method")

	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [character-id]",
		Short: "Print a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.GetCharacter(cmd.Context(), &sheet.GetCharacterInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			return printSheet(cmd.OutOrStdout(), c.catalog, output.Character)
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.ListCharacters(cmd.Context(), &sheet.ListCharactersInput{ClassID: class})
			if err != nil {
				return err
			}

			return printCharacterList(cmd.OutOrStdout(), output.Characters)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "only list characters of this class")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [character-id]",
		Short: "Delete a character and its roll history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.DeleteCharacter(cmd.Context(), &sheet.DeleteCharacterInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%d recorded rolls removed)\n", args[0], output.RollsDeleted)
			return nil
		},
	}
}
