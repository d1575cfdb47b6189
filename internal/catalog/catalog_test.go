package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *CatalogTestSuite) TestDefaultTables() {
	s.Len(s.catalog.SkillIDs(), 45)
	s.Equal([]string{
		"barbarian", "bard", "cleric", "druid", "fighter", "monk",
		"paladin", "ranger", "rogue", "sorcerer", "wizard",
	}, s.catalog.ClassIDs())
	s.Equal([]string{"dwarf", "elf", "gnome", "halfElf", "halfOrc", "halfling", "human"}, s.catalog.RaceIDs())
}

func (s *CatalogTestSuite) TestSkillPointRates() {
	testCases := map[string]int{
		"barbarian": 4,
		"bard":      6,
		"cleric":    2,
		"druid":     4,
		"fighter":   2,
		"monk":      4,
		"paladin":   2,
		"ranger":    6,
		"rogue":     8,
		"sorcerer":  2,
		"wizard":    2,
	}

	for id, expected := range testCases {
		s.Run(id, func() {
			class, ok := s.catalog.Class(id)
			s.Require().True(ok)
			s.Equal(expected, class.SkillPointsPerLevel)
		})
	}
}

func (s *CatalogTestSuite) TestElfTraits() {
	elf, ok := s.catalog.Race("elf")
	s.Require().True(ok)

	s.Equal(map[string]int{"dex": 2, "con": -2}, elf.AbilityModifiers)
	s.Equal(map[string]int{"listen": 2, "search": 2, "spot": 2}, elf.SkillModifiers)
	s.Len(elf.Feats, 4)
	s.Equal(9, elf.Other.BaseLandSpeed)
}

func (s *CatalogTestSuite) TestHumanBonusSkillPoints() {
	human, ok := s.catalog.Race("human")
	s.Require().True(ok)
	s.Equal(1, human.Other.SkillPointsPerLevel)
}

func (s *CatalogTestSuite) TestLookupsReturnCopies() {
	elf, _ := s.catalog.Race("elf")
	elf.AbilityModifiers["dex"] = 10
	elf.SkillModifiers["listen"] = 10
	elf.Other.Traits[0] = "mutated"

	again, _ := s.catalog.Race("elf")
	s.Equal(2, again.AbilityModifiers["dex"])
	s.Equal(2, again.SkillModifiers["listen"])
	s.NotEqual("mutated", again.Other.Traits[0])

	sorcerer, _ := s.catalog.Class("sorcerer")
	sorcerer.ClassSkills[0] = "mutated"
	fresh, _ := s.catalog.Class("sorcerer")
	s.Equal("bluff", fresh.ClassSkills[0])
}

func (s *CatalogTestSuite) TestUnknownLookups() {
	_, ok := s.catalog.Skill("basketWeaving")
	s.False(ok)
	_, ok = s.catalog.Class("warlock")
	s.False(ok)
	_, ok = s.catalog.Race("tiefling")
	s.False(ok)
}

func (s *CatalogTestSuite) TestNewRejectsBrokenReferences() {
	s.Run("unknown class skill", func() {
		_, err := catalog.New(
			[]catalog.SkillDef{{ID: "climb", Name: "Climb", KeyAbility: "str"}},
			[]catalog.ClassDef{{ID: "fighter", SkillPointsPerLevel: 2, ClassSkills: []string{"swim"}}},
			nil,
		)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), `unknown skill "swim"`)
	})

	s.Run("unknown racial ability", func() {
		_, err := catalog.New(nil, nil, []catalog.RaceDef{{
			ID:               "dwarf",
			AbilityModifiers: map[string]int{"car": -2},
		}})
		s.Require().Error(err)
		s.Contains(err.Error(), `unknown ability "car"`)
	})

	s.Run("unknown key ability", func() {
		_, err := catalog.New([]catalog.SkillDef{{ID: "climb", KeyAbility: "brawn"}}, nil, nil)
		s.Require().Error(err)
	})

	s.Run("duplicate skill", func() {
		_, err := catalog.New([]catalog.SkillDef{
			{ID: "climb", KeyAbility: "str"},
			{ID: "climb", KeyAbility: "str"},
		}, nil, nil)
		s.Require().Error(err)
		s.Contains(err.Error(), "defined more than once")
	})
}

func (s *CatalogTestSuite) TestLoadFromFS() {
	fsys := fstest.MapFS{
		catalog.SkillsFile: {Data: []byte(`
skills:
  - id: climb
    name: Climb
    key_ability: str
`)},
		catalog.ClassesFile: {Data: []byte(`
classes:
  - id: fighter
    name: Fighter
    skill_points_per_level: 2
    class_skills: [climb]
`)},
		catalog.RacesFile: {Data: []byte(`
races:
  - id: human
    name: Human
    other:
      skill_points_per_level: 1
`)},
	}

	c, err := catalog.Load(fsys)
	s.Require().NoError(err)

	fighter, ok := c.Class("fighter")
	s.Require().True(ok)
	s.Equal([]string{"climb"}, fighter.ClassSkills)
}

func (s *CatalogTestSuite) TestLoadMissingFile() {
	_, err := catalog.Load(fstest.MapFS{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read skills.yaml")
}

func (s *CatalogTestSuite) TestLoadMalformedYAML() {
	fsys := fstest.MapFS{
		catalog.SkillsFile: {Data: []byte("skills: [")},
	}
	_, err := catalog.Load(fsys)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
