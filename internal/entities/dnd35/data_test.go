package dnd35_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/testutils"
)

type DataTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func (s *DataTestSuite) SetupSuite() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = cat
}

func TestDataSuite(t *testing.T) {
	suite.Run(t, new(DataTestSuite))
}

func (s *DataTestSuite) buildCharacter() *dnd35.Character {
	c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
		ID:      "char-data-001",
		Name:    "Lirael",
		ClassID: "wizard",
		RaceID:  "elf",
		Catalog: s.catalog,
		Roller:  testutils.NewScriptedRoller(),
	})
	s.Require().NoError(err)

	_, err = c.IncrementAbilityBaseValue(dnd35.AbilityIntelligence, true, 8)
	s.Require().NoError(err)
	c.UpdateAvailableSkillPoints()
	_, err = c.IncrementSkillRank("spellcraft", 4)
	s.Require().NoError(err)
	_, err = c.IncrementSkillRank("hide", 2)
	s.Require().NoError(err)
	_, err = c.IncrementAbilityBaseValue(dnd35.AbilityWisdom, false, 1)
	s.Require().NoError(err)
	s.Require().NoError(c.SetAbilityTemporaryModifiers(dnd35.AbilityStrength, map[string]int{"bullsStrength": 4}))

	return c
}

func (s *DataTestSuite) TestToData() {
	c := s.buildCharacter()

	data := c.ToData()

	s.Equal("char-data-001", data.ID)
	s.Equal("wizard", data.ClassID)
	s.Equal("elf", data.RaceID)
	s.Equal(1, data.TotalLevel)
	s.Equal(22, data.AvailableAbilityPoints)
	s.Equal(16, data.Abilities[dnd35.AbilityIntelligence].BaseValue)
	s.Equal(3, data.Abilities[dnd35.AbilityIntelligence].Modifier)
	s.Equal(12, data.Abilities[dnd35.AbilityStrength].Total)
	s.Equal(2, data.Abilities[dnd35.AbilityDexterity].RacialModifier)
	s.Equal(4, data.Skills["spellcraft"].Rank)
	s.False(data.Skills["hide"].IsClassSkill)
	s.Equal(2, data.Skills["hide"].Rank)
	s.Equal(1, data.Skills["hide"].Total)
	s.Equal(1, data.LevelUpRollBackList[dnd35.LedgerAbilities]["wis"])
	s.Len(data.Feats, 4)
}

func (s *DataTestSuite) TestRestoreRoundTrip() {
	original := s.buildCharacter()

	raw, err := json.Marshal(original.ToData())
	s.Require().NoError(err)
	var decoded dnd35.Data
	s.Require().NoError(json.Unmarshal(raw, &decoded))

	restored, err := dnd35.Restore(&decoded, s.catalog, nil)
	s.Require().NoError(err)

	s.Equal(original.ToData(), restored.ToData())
	s.Equal(original.SkillPointsPerLevel(), restored.SkillPointsPerLevel())

	s.Run("restored character keeps working", func() {
		spent, err := restored.IncrementSkillRank("concentration", 2)
		s.Require().NoError(err)
		s.Equal(2, spent)
		s.Equal(original.AvailableSkillPoints()-2, restored.AvailableSkillPoints())
	})
}

func (s *DataTestSuite) TestRestoreRecomputesDerivedFields() {
	data := s.buildCharacter().ToData()
	intel := data.Abilities[dnd35.AbilityIntelligence]
	intel.Modifier = 99
	intel.Total = 99
	data.Abilities[dnd35.AbilityIntelligence] = intel
	spellcraft := data.Skills["spellcraft"]
	spellcraft.Total = -7
	data.Skills["spellcraft"] = spellcraft

	restored, err := dnd35.Restore(data, s.catalog, nil)
	s.Require().NoError(err)

	a, _ := restored.Ability(dnd35.AbilityIntelligence)
	s.Equal(16, a.Total())
	s.Equal(3, a.Modifier())
	skill, _ := restored.Skill("spellcraft")
	s.Equal(4, skill.Total())
}

func (s *DataTestSuite) TestRestoreValidation() {
	s.Run("nil data", func() {
		_, err := dnd35.Restore(nil, s.catalog, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil catalog", func() {
		_, err := dnd35.Restore(s.buildCharacter().ToData(), nil, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing ability", func() {
		data := s.buildCharacter().ToData()
		delete(data.Abilities, dnd35.AbilityCharisma)
		_, err := dnd35.Restore(data, s.catalog, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("level zero", func() {
		data := s.buildCharacter().ToData()
		data.TotalLevel = 0
		_, err := dnd35.Restore(data, s.catalog, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown class", func() {
		data := s.buildCharacter().ToData()
		data.ClassID = "warlock"
		_, err := dnd35.Restore(data, s.catalog, nil)
		s.True(errors.IsNotFound(err))
	})
}
