package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	dicesession "github.com/KirkDiggler/dnd35-sheet/internal/repositories/dice_session"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printSheet writes the full character sheet
func printSheet(w io.Writer, cat *catalog.Catalog, data *dnd35.Data) error {
	tw := newTabWriter(w)

	className := data.ClassID
	if class, ok := cat.Class(data.ClassID); ok {
		className = class.Name
	}
	raceName := data.RaceID
	if race, ok := cat.Race(data.RaceID); ok {
		raceName = race.Name
	}

	fmt.Fprintf(tw, "ID:\t%s\n", data.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", data.Name)
	fmt.Fprintf(tw, "Race:\t%s\n", raceName)
	fmt.Fprintf(tw, "Class:\t%s\n", className)
	fmt.Fprintf(tw, "Level:\t%d\n", data.TotalLevel)
	fmt.Fprintf(tw, "Ability points:\t%d\n", data.AvailableAbilityPoints)
	fmt.Fprintf(tw, "Skill points:\t%d\n", data.AvailableSkillPoints)
	if data.Details.Size != "" {
		fmt.Fprintf(tw, "Size:\t%s\n", data.Details.Size)
	}
	if data.Details.BaseLandSpeed > 0 {
		fmt.Fprintf(tw, "Speed:\t%d\n", data.Details.BaseLandSpeed)
	}
	if len(data.Details.Languages) > 0 {
		fmt.Fprintf(tw, "Languages:\t%s\n", strings.Join(data.Details.Languages, ", "))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ABILITY\tBASE\tRACIAL\tTEMP\tTOTAL\tMOD")
	for _, id := range dnd35.AllAbilities {
		a := data.Abilities[id]
		fmt.Fprintf(tw, "%s\t%d\t%+d\t%+d\t%d\t%+d\n",
			id.Name(), a.BaseValue, a.RacialModifier, sumValues(a.TemporaryModifiers), a.Total, a.Modifier)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SKILL\tKEY\tRANK\tCLASS\tMODS\tTOTAL")
	skillIDs := make([]string, 0, len(data.Skills))
	for id := range data.Skills {
		skillIDs = append(skillIDs, id)
	}
	sort.Strings(skillIDs)
	for _, id := range skillIDs {
		s := data.Skills[id]
		classMark := ""
		if s.IsClassSkill {
			classMark = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%+d\t%d\n",
			s.Name, s.KeyAbility, s.Rank, classMark, sumValues(s.Modifiers), s.Total)
	}

	if len(data.Feats) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FEAT\tDESCRIPTION")
		featIDs := make([]string, 0, len(data.Feats))
		for id := range data.Feats {
			featIDs = append(featIDs, id)
		}
		sort.Strings(featIDs)
		for _, id := range featIDs {
			f := data.Feats[id]
			fmt.Fprintf(tw, "%s\t%s\n", f.Name, f.Description)
		}
	}

	if len(data.Details.Traits) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TRAITS")
		for _, trait := range data.Details.Traits {
			fmt.Fprintf(tw, "%s\n", trait)
		}
	}

	return tw.Flush()
}

// printCharacterList writes one line per character
func printCharacterList(w io.Writer, characters []*dnd35.Data) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tNAME\tRACE\tCLASS\tLEVEL")
	for _, data := range characters {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", data.ID, data.Name, data.RaceID, data.ClassID, data.TotalLevel)
	}
	return tw.Flush()
}

// printRolls writes 4d6 drop-lowest rolls
func printRolls(w io.Writer, rolls []*dicesession.DiceRoll) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ABILITY\tDICE\tDROPPED\tSCORE")
	for _, r := range rolls {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Description, joinInts(r.Dice), joinInts(r.Dropped), r.Total)
	}
	return tw.Flush()
}

func sumValues(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
