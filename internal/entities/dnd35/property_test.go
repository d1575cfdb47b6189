package dnd35_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
)

// rapidRoller draws every die from the property test's data
type rapidRoller struct {
	rt *rapid.T
}

func (r rapidRoller) Roll(size int) (int, error) {
	return rapid.IntRange(1, size).Draw(r.rt, "roll"), nil
}

func (r rapidRoller) RollN(count, size int) ([]int, error) {
	return rapid.SliceOfN(rapid.IntRange(1, size), count, count).Draw(r.rt, "dice"), nil
}

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestProperty_PointBuyCost_StrictlyIncreasing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		score := rapid.IntRange(dnd35.BaseAbilityScore, dnd35.MaxPointBuyScore-1).Draw(rt, "score")
		lower, err := dnd35.PointBuyCost(score)
		if err != nil {
			rt.Fatalf("cost(%d): %v", score, err)
		}
		higher, err := dnd35.PointBuyCost(score + 1)
		if err != nil {
			rt.Fatalf("cost(%d): %v", score+1, err)
		}
		if higher <= lower {
			rt.Fatalf("cost(%d)=%d not above cost(%d)=%d", score+1, higher, score, lower)
		}
	})
}

func TestProperty_Ability_RejectedIncrementLeavesStateUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := dnd35.NewAbility(dnd35.AbilityCharisma)
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			delta := rapid.IntRange(-6, 12).Draw(rt, "delta")
			hasCost := rapid.Bool().Draw(rt, "has_cost")
			pool := rapid.IntRange(0, 40).Draw(rt, "pool")

			base, total, modifier := a.BaseValue(), a.Total(), a.Modifier()
			spent := a.IncrementBaseValue(delta, hasCost, pool)

			if spent == 0 && (a.BaseValue() != base || a.Total() != total || a.Modifier() != modifier) {
				rt.Fatalf("zero spend changed state: base %d->%d", base, a.BaseValue())
			}
			if spent > pool {
				rt.Fatalf("spent %d from a pool of %d", spent, pool)
			}
			if a.BaseValue() < dnd35.BaseAbilityScore {
				rt.Fatalf("base value %d below %d", a.BaseValue(), dnd35.BaseAbilityScore)
			}
		}
	})
}

func TestProperty_Skill_RankStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 20).Draw(rt, "level")
		isClassSkill := rapid.Bool().Draw(rt, "class_skill")
		skill := dnd35.NewSkill(catalog.SkillDef{ID: "jump", Name: "Jump", KeyAbility: "str"}, isClassSkill)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			delta := rapid.IntRange(-8, 8).Draw(rt, "delta")
			pool := rapid.IntRange(0, 30).Draw(rt, "pool")
			rank := skill.Rank()

			spent := skill.IncrementRank(delta, pool, level)

			if skill.Rank() < 0 || skill.Rank() > dnd35.MaxRank(level) {
				rt.Fatalf("rank %d outside [0, %d]", skill.Rank(), dnd35.MaxRank(level))
			}
			if spent == 0 && skill.Rank() != rank {
				rt.Fatalf("rejected increment moved rank %d->%d", rank, skill.Rank())
			}
		}
	})
}

func TestProperty_Skill_TotalUsesEffectiveRank(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		isClassSkill := rapid.Bool().Draw(rt, "class_skill")
		skill := dnd35.NewSkill(catalog.SkillDef{ID: "hide", Name: "Hide", KeyAbility: "dex"}, isClassSkill)

		bonus := rapid.IntRange(-4, 4).Draw(rt, "bonus")
		skill.SetModifiers(map[string]int{"racial": bonus})
		skill.SetRank(rapid.IntRange(0, 23).Draw(rt, "rank"))

		effective := skill.Rank()
		if !isClassSkill {
			effective = skill.Rank() / 2
		}
		if skill.RankTotal() != effective {
			rt.Fatalf("rank total %d, want %d", skill.RankTotal(), effective)
		}
		if skill.Total() != effective+bonus {
			rt.Fatalf("total %d, want %d + %d", skill.Total(), effective, bonus)
		}
	})
}

func TestProperty_Character_AbilityPoolNeverNegative(t *testing.T) {
	cat := mustCatalog(t)
	rapid.Check(t, func(rt *rapid.T) {
		c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
			Name:    "Prop",
			ClassID: rapid.SampledFrom(cat.ClassIDs()).Draw(rt, "class"),
			RaceID:  rapid.SampledFrom(cat.RaceIDs()).Draw(rt, "race"),
			Catalog: cat,
			Roller:  rapidRoller{rt: rt},
		})
		if err != nil {
			rt.Fatalf("new character: %v", err)
		}

		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.SampledFrom(dnd35.AllAbilities).Draw(rt, "ability")
			hasCost := rapid.Bool().Draw(rt, "has_cost")
			delta := rapid.IntRange(-4, 10).Draw(rt, "delta")
			before := c.AvailableAbilityPoints()

			spent, err := c.IncrementAbilityBaseValue(id, hasCost, delta)

			if c.AvailableAbilityPoints() < 0 {
				rt.Fatalf("ability pool went negative: %d", c.AvailableAbilityPoints())
			}
			if err != nil && spent != 0 {
				rt.Fatalf("rejected increment reported %d spent", spent)
			}
			if !hasCost && c.AvailableAbilityPoints() != before {
				rt.Fatalf("free increment changed the pool %d->%d", before, c.AvailableAbilityPoints())
			}
		}
	})
}

func TestProperty_Character_RandomizePointBuySpendsDown(t *testing.T) {
	cat := mustCatalog(t)
	rapid.Check(t, func(rt *rapid.T) {
		c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
			Name:    "Prop",
			ClassID: "rogue",
			RaceID:  rapid.SampledFrom(cat.RaceIDs()).Draw(rt, "race"),
			Catalog: cat,
			Roller:  rapidRoller{rt: rt},
		})
		if err != nil {
			rt.Fatalf("new character: %v", err)
		}

		if err := c.RandomizePointBuy(); err != nil {
			rt.Fatalf("randomize: %v", err)
		}

		pool := c.AvailableAbilityPoints()
		if pool < 0 {
			rt.Fatalf("pool went negative: %d", pool)
		}

		spent := 0
		for _, id := range dnd35.AllAbilities {
			a, _ := c.Ability(id)
			base := a.BaseValue()
			if base < dnd35.BaseAbilityScore || base > dnd35.MaxPointBuyScore {
				rt.Fatalf("%s base %d outside point-buy range", id, base)
			}
			cost, _ := dnd35.PointBuyCost(base)
			spent += cost
			if base < dnd35.MaxPointBuyScore {
				next, _ := dnd35.PointBuyCost(base + 1)
				if next-cost <= pool {
					rt.Fatalf("%s could still afford +1 with %d points left", id, pool)
				}
			}
		}
		if spent+pool != dnd35.StartingAbilityPoints {
			rt.Fatalf("spent %d + left %d != %d", spent, pool, dnd35.StartingAbilityPoints)
		}
	})
}

func TestProperty_Character_RollBackUndoesTheWindow(t *testing.T) {
	cat := mustCatalog(t)
	rapid.Check(t, func(rt *rapid.T) {
		c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
			Name:    "Prop",
			ClassID: "bard",
			RaceID:  "human",
			Catalog: cat,
			Roller:  rapidRoller{rt: rt},
		})
		if err != nil {
			rt.Fatalf("new character: %v", err)
		}
		c.UpdateAvailableSkillPoints()
		before := c.ToData()

		skillIDs := cat.SkillIDs()
		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "ability_step") {
				id := rapid.SampledFrom(dnd35.AllAbilities).Draw(rt, "ability")
				_, _ = c.IncrementAbilityBaseValue(id, false, rapid.IntRange(1, 3).Draw(rt, "delta"))
				continue
			}
			id := rapid.SampledFrom(skillIDs).Draw(rt, "skill")
			_, _ = c.IncrementSkillRank(id, rapid.IntRange(-2, 4).Draw(rt, "ranks"))
		}

		c.RollBackLevelWindow()
		after := c.ToData()

		if after.AvailableSkillPoints != before.AvailableSkillPoints {
			rt.Fatalf("skill pool %d, want %d", after.AvailableSkillPoints, before.AvailableSkillPoints)
		}
		for id, a := range before.Abilities {
			if after.Abilities[id].BaseValue != a.BaseValue {
				rt.Fatalf("%s base %d, want %d", id, after.Abilities[id].BaseValue, a.BaseValue)
			}
		}
		for id, skill := range after.Skills {
			if skill.Rank != before.Skills[id].Rank {
				rt.Fatalf("%s rank %d, want %d", id, skill.Rank, before.Skills[id].Rank)
			}
		}
		if !c.LevelUpRollBackList().IsEmpty() {
			rt.Fatalf("ledger not cleared")
		}
	})
}
