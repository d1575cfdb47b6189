package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd35-sheet/internal/orchestrators/sheet"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
)

func (c *cli) rollAbilityScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll-ability-scores [character-id]",
		Short: "Replace ability scores with 4d6 drop lowest rolls",
		Long: `Roll 4d6 drop lowest for every ability of a level 1 character. The rolls are
kept for a while so they can be reviewed with ability-rolls.

  Example: roll-ability-scores char_1234`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.RollAbilityScores(cmd.Context(), &sheet.RollAbilityScoresInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			if err := printRolls(cmd.OutOrStdout(), output.Rolls); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Point-buy value of the rolls: %d\n", output.RolledCost)
			if output.Session != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Rolls kept until %s\n", output.Session.ExpiresAt.Format("15:04:05"))
			}
			return nil
		},
	}
}

func (c *cli) randomizeAbilityScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "randomize-ability-scores [character-id]",
		Short: "Spend the remaining ability points at random",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.RandomizeAbilityScores(cmd.Context(), &sheet.RandomizeAbilityScoresInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			return printSheet(cmd.OutOrStdout(), c.catalog, output.Character)
		},
	}
}

func (c *cli) abilityRollsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ability-rolls [character-id]",
		Short: "Show the recorded ability score rolls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.GetAbilityRolls(cmd.Context(), &sheet.GetAbilityRollsInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			rolls := make([]*dicesession.DiceRoll, 0, len(output.Session.Rolls))
			for i := range output.Session.Rolls {
				rolls = append(rolls, &output.Session.Rolls[i])
			}
			return printRolls(cmd.OutOrStdout(), rolls)
		},
	}
}
