package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
)

func (c *cli) listClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-classes",
		Short: "List the classes in the rules tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tSKILL POINTS\tCLASS SKILLS")
			for _, id := range c.catalog.ClassIDs() {
				class, _ := c.catalog.Class(id)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", class.ID, class.Name, class.SkillPointsPerLevel, len(class.ClassSkills))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) listRacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-races",
		Short: "List the races in the rules tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tSIZE\tSPEED\tABILITIES")
			for _, id := range c.catalog.RaceIDs() {
				race, _ := c.catalog.Race(id)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					race.ID, race.Name, race.Other.Size, race.Other.BaseLandSpeed, formatModifiers(race.AbilityModifiers))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) listSkillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-skills",
		Short: "List the skills in the rules tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tKEY")
			for _, id := range c.catalog.SkillIDs() {
				skill, _ := c.catalog.Skill(id)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.ID, skill.Name, skill.KeyAbility)
			}
			return tw.Flush()
		},
	}
}

// formatModifiers renders ability modifiers in sheet order, e.g. "Dex +2, Con -2"
func formatModifiers(mods map[string]int) string {
	if len(mods) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(mods))
	seen := make(map[string]bool, len(mods))
	for _, id := range dnd35.AllAbilities {
		if v, ok := mods[string(id)]; ok {
			parts = append(parts, fmt.Sprintf("%s %+d", abbreviate(id.Name()), v))
			seen[string(id)] = true
		}
	}

	var rest []string
	for k, v := range mods {
		if !seen[k] {
			rest = append(rest, fmt.Sprintf("%s %+d", k, v))
		}
	}
	sort.Strings(rest)

	return strings.Join(append(parts, rest...), ", ")
}

func abbreviate(name string) string {
	if len(name) <= 3 {
		return name
	}
	return name[:3]
}
