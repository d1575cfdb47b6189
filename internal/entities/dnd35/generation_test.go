package dnd35_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/entities/dnd35"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
	"github.com/KirkDiggler/dnd35-sheet/internal/testutils"
)

type GenerationTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	roller  *testutils.ScriptedRoller
	char    *dnd35.Character
}

func (s *GenerationTestSuite) SetupSuite() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = cat
}

func (s *GenerationTestSuite) SetupTest() {
	s.roller = testutils.NewScriptedRoller()
	c, err := dnd35.NewCharacter(&dnd35.CharacterConfig{
		ID:      "char-gen",
		Name:    "Rolled",
		ClassID: "fighter",
		RaceID:  "human",
		Catalog: s.catalog,
		Roller:  s.roller,
	})
	s.Require().NoError(err)
	s.char = c
}

func TestGenerationSuite(t *testing.T) {
	suite.Run(t, new(GenerationTestSuite))
}

func (s *GenerationTestSuite) baseValues() map[dnd35.AbilityID]int {
	out := make(map[dnd35.AbilityID]int, len(dnd35.AllAbilities))
	for _, id := range dnd35.AllAbilities {
		a, _ := s.char.Ability(id)
		out[id] = a.BaseValue()
	}
	return out
}

func (s *GenerationTestSuite) TestRollAbilities4d6() {
	s.roller.QueueRollN(
		[]int{6, 6, 6, 1},
		[]int{3, 3, 3, 3},
		[]int{1, 2, 3, 4},
		[]int{5, 5, 4, 1},
		[]int{2, 2, 2, 2},
		[]int{6, 5, 4, 3},
	)

	total, rolls, err := s.char.RollAbilities4d6()

	s.Require().NoError(err)
	s.Equal(30, total)
	s.Require().Len(rolls, 6)
	s.Equal(dnd35.AbilityStrength, rolls[0].Ability)
	s.Equal(1, rolls[0].Dropped)
	s.Equal(18, rolls[0].Score)
	s.Equal([]int{1, 2, 3, 4}, rolls[2].Dice)
	s.Equal(map[dnd35.AbilityID]int{
		dnd35.AbilityStrength:     18,
		dnd35.AbilityDexterity:    9,
		dnd35.AbilityConstitution: 9,
		dnd35.AbilityIntelligence: 14,
		dnd35.AbilityWisdom:       6,
		dnd35.AbilityCharisma:     15,
	}, s.baseValues())
	s.Equal(dnd35.StartingAbilityPoints, s.char.AvailableAbilityPoints())
}

func (s *GenerationTestSuite) TestRollAbilities4d6RollerFailure() {
	s.roller.QueueRollN([]int{6, 6, 6, 6}).FailWith(errors.Internal("dice tray on fire"))

	_, _, err := s.char.RollAbilities4d6()

	s.Error(err)
	for id, v := range s.baseValues() {
		s.Equal(8, v, id)
	}
}

func (s *GenerationTestSuite) TestRollAbilities4d6WrongDiceCount() {
	s.roller.QueueRollN([]int{6, 6, 6, 6}, []int{6, 6})

	_, _, err := s.char.RollAbilities4d6()

	s.True(errors.IsInternal(err))
	for id, v := range s.baseValues() {
		s.Equal(8, v, id)
	}
}

func (s *GenerationTestSuite) TestRandomizePointBuySpendsEverything() {
	err := s.char.RandomizePointBuy()

	s.Require().NoError(err)
	s.Equal(0, s.char.AvailableAbilityPoints())
	s.Equal(map[dnd35.AbilityID]int{
		dnd35.AbilityStrength:     14,
		dnd35.AbilityDexterity:    14,
		dnd35.AbilityConstitution: 13,
		dnd35.AbilityIntelligence: 13,
		dnd35.AbilityWisdom:       13,
		dnd35.AbilityCharisma:     13,
	}, s.baseValues())
}

func (s *GenerationTestSuite) TestRandomizePointBuyCapsAtEighteen() {
	s.roller.QueueRoll(1, 10)

	err := s.char.RandomizePointBuy()

	s.Require().NoError(err)
	str, _ := s.char.Ability(dnd35.AbilityStrength)
	s.Equal(18, str.BaseValue())
	s.Equal(0, s.char.AvailableAbilityPoints())
	s.True(s.char.LevelUpRollBackList().IsEmpty())
}

func (s *GenerationTestSuite) TestRandomizePointBuyRollerFailure() {
	s.roller.FailWith(errors.Internal("dice tray on fire"))

	err := s.char.RandomizePointBuy()

	s.Error(err)
	s.Equal(dnd35.StartingAbilityPoints, s.char.AvailableAbilityPoints())
}
