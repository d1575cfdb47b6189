package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/orchestrators/sheet"
)

func parseDelta(arg string) (int, error) {
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.InvalidArgumentf("amount must be a whole number, got %q", arg)
	}
	return delta, nil
}

func (c *cli) buyAbilityCmd() *cobra.Command {
	var free bool

	cmd := &cobra.Command{
		Use:   "buy-ability [character-id] [ability] [amount]",
		Short: "Raise an ability score with point-buy points",
		Long: `Raise an ability score. Scores up to 14 cost one point each, 15-18 cost more.
--free skips the cost and records the raise so rollback-level can undo it.

  Example: buy-ability char_1234 str 4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ability, err := dnd35.ParseAbilityID(args[1])
			if err != nil {
				return err
			}
			delta, err := parseDelta(args[2])
			if err != nil {
				return err
			}

			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.IncrementAbility(cmd.Context(), &sheet.IncrementAbilityInput{
				CharacterID: args[0],
				Ability:     ability,
				Delta:       delta,
				Free:        free,
			})
			if err != nil {
				return err
			}

			a := output.Character.Abilities[ability]
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %d (%+d), %d points spent, %d left\n",
				ability.Name(), a.Total, a.Modifier, output.PointsSpent, output.Character.AvailableAbilityPoints)
			return nil
		},
	}

	cmd.Flags().BoolVar(&free, "free", false, "apply without spending ability points")

	return cmd
}

func (c *cli) buySkillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy-skill [character-id] [skill] [ranks]",
		Short: "Buy skill ranks",
		Long: `Buy ranks in a skill. Ranks are capped at level + 3; cross-class skills count
half their ranks toward the total.

  Example: buy-skill char_1234 climb 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := parseDelta(args[2])
			if err != nil {
				return err
			}

			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.IncrementSkill(cmd.Context(), &sheet.IncrementSkillInput{
				CharacterID: args[0],
				SkillID:     args[1],
				Delta:       delta,
			})
			if err != nil {
				return err
			}

			s := output.Character.Skills[args[1]]
			fmt.Fprintf(cmd.OutOrStdout(), "%s rank %d (total %d), %d points spent, %d left\n",
				s.Name, s.Rank, s.Total, output.PointsSpent, output.Character.AvailableSkillPoints)
			return nil
		},
	}
}

func (c *cli) levelUpCmd() *cobra.Command {
	var levels int

	cmd := &cobra.Command{
		Use:   "level-up [character-id]",
		Short: "Gain levels and their skill and ability points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.LevelUp(cmd.Context(), &sheet.LevelUpInput{
				CharacterID: args[0],
				Levels:      levels,
			})
			if err != nil {
				return err
			}

			data := output.Character
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now level %d: %d skill points, %d ability points available\n",
				data.Name, data.TotalLevel, data.AvailableSkillPoints, data.AvailableAbilityPoints)
			return nil
		},
	}

	cmd.Flags().IntVar(&levels, "levels", 1, "number of levels to gain")

	return cmd
}

func (c *cli) rollbackLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback-level [character-id]",
		Short: "Undo the free raises made since the last level-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.sheetService()
			if err != nil {
				return err
			}

			output, err := svc.RollBackLevel(cmd.Context(), &sheet.RollBackLevelInput{CharacterID: args[0]})
			if err != nil {
				return err
			}

			return printSheet(cmd.OutOrStdout(), c.catalog, output.Character)
		},
	}
}
