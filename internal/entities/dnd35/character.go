package dnd35

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd35-sheet/internal/catalog"
	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// RacialModifierSource keys the racial entry in a skill's modifier map
const RacialModifierSource = "racial"

// CharacterDetails holds the descriptive traits granted by race
type CharacterDetails struct {
	Size                     string   `json:"size,omitempty"`
	Languages                []string `json:"languages,omitempty"`
	BaseLandSpeed            int      `json:"base_land_speed,omitempty"`
	Traits                   []string `json:"traits,omitempty"`
	BonusSkillPointsPerLevel int      `json:"bonus_skill_points_per_level,omitempty"`
}

func (d CharacterDetails) clone() CharacterDetails {
	d.Languages = append([]string(nil), d.Languages...)
	d.Traits = append([]string(nil), d.Traits...)
	return d
}

// CharacterConfig holds what is needed to build a new character
type CharacterConfig struct {
	ID      string
	Name    string
	ClassID string
	RaceID  string
	Catalog *catalog.Catalog
	// Roller drives random ability generation; dice.DefaultRoller when nil
	Roller dice.Roller
}

// Validate checks the config
func (c *CharacterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateRequired("class_id", c.ClassID, vb)
	errors.ValidateRequired("race_id", c.RaceID, vb)
	if c.Catalog == nil {
		vb.RequiredField("catalog")
	}
	return vb.Build()
}

// Character is the aggregate that owns a character's abilities, skills, feats
// and point pools. It is not safe for concurrent use.
type Character struct {
	id      string
	name    string
	classID string
	raceID  string

	catalog *catalog.Catalog
	roller  dice.Roller

	abilities map[AbilityID]*Ability
	skills    map[string]*Skill
	feats     map[string]Feat
	details   CharacterDetails

	classSkillPoints       int
	availableAbilityPoints int
	availableSkillPoints   int
	totalLevel             int
	ledger                 RollbackLedger
}

// NewCharacter builds a level 1 character with the class skills of its class
// and its racial traits applied. The skill pool is left at zero until
// UpdateAvailableSkillPoints runs after ability scores are assigned.
func NewCharacter(cfg *CharacterConfig) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character config")
	}

	class, ok := cfg.Catalog.Class(cfg.ClassID)
	if !ok {
		return nil, errors.UnknownIdentifier("class", cfg.ClassID)
	}
	race, ok := cfg.Catalog.Race(cfg.RaceID)
	if !ok {
		return nil, errors.UnknownIdentifier("race", cfg.RaceID)
	}

	c := newBareCharacter(cfg.ID, cfg.Name, class, race.ID, cfg.Catalog, cfg.Roller)
	c.availableAbilityPoints = StartingAbilityPoints
	c.totalLevel = 1

	for _, a := range AllAbilities {
		c.abilities[a] = NewAbility(a)
	}
	for _, skillID := range class.ClassSkills {
		def, ok := cfg.Catalog.Skill(skillID)
		if !ok {
			return nil, errors.UnknownIdentifier("skill", skillID)
		}
		c.skills[skillID] = NewSkill(def, true)
	}

	if err := c.applyRacialTraits(race); err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s traits", race.Name)
	}

	return c, nil
}

func newBareCharacter(id, name string, class catalog.ClassDef, raceID string, cat *catalog.Catalog, roller dice.Roller) *Character {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Character{
		id:               id,
		name:             name,
		classID:          class.ID,
		raceID:           raceID,
		catalog:          cat,
		roller:           roller,
		abilities:        make(map[AbilityID]*Ability, len(AllAbilities)),
		skills:           map[string]*Skill{},
		feats:            map[string]Feat{},
		classSkillPoints: class.SkillPointsPerLevel,
		ledger:           RollbackLedger{},
	}
}

func (c *Character) ID() string                  { return c.id }
func (c *Character) Name() string                { return c.name }
func (c *Character) ClassID() string             { return c.classID }
func (c *Character) RaceID() string              { return c.raceID }
func (c *Character) TotalLevel() int             { return c.totalLevel }
func (c *Character) AvailableAbilityPoints() int { return c.availableAbilityPoints }
func (c *Character) AvailableSkillPoints() int   { return c.availableSkillPoints }
func (c *Character) Details() CharacterDetails   { return c.details.clone() }

// SkillPointsPerLevel is the class rate plus any racial bonus
func (c *Character) SkillPointsPerLevel() int {
	return c.classSkillPoints + c.details.BonusSkillPointsPerLevel
}

// Ability returns a copy of the named ability
func (c *Character) Ability(id AbilityID) (*Ability, bool) {
	a, ok := c.abilities[id]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

// Skill returns a copy of the named skill
func (c *Character) Skill(id string) (*Skill, bool) {
	s, ok := c.skills[id]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// SkillIDs returns the ids of every skill on the character in sorted order
func (c *Character) SkillIDs() []string {
	ids := make([]string, 0, len(c.skills))
	for id := range c.skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Feats returns the character's feats sorted by id
func (c *Character) Feats() []Feat {
	feats := make([]Feat, 0, len(c.feats))
	for _, f := range c.feats {
		feats = append(feats, f)
	}
	sort.Slice(feats, func(i, j int) bool { return feats[i].ID < feats[j].ID })
	return feats
}

// LevelUpRollBackList returns a copy of the free points recorded since the
// last level-up
func (c *Character) LevelUpRollBackList() RollbackLedger {
	return c.ledger.clone()
}

// IncrementAbilityBaseValue raises an ability by delta. Costed increments draw
// the point-buy difference from the ability pool; free increments leave the
// pool alone and are recorded in the rollback ledger. A rejected increment
// returns 0 with an error and leaves the character unchanged.
func (c *Character) IncrementAbilityBaseValue(id AbilityID, hasCost bool, delta int) (int, error) {
	ability, ok := c.abilities[id]
	if !ok {
		c.warnUnknown("ability", string(id), "IncrementAbilityBaseValue")
		return 0, errors.UnknownIdentifier("ability", string(id))
	}

	spent, err := ability.tryIncrement(delta, hasCost, c.availableAbilityPoints)
	if err != nil {
		return 0, err
	}

	if hasCost {
		c.availableAbilityPoints -= spent
	} else if spent > 0 {
		c.ledger.record(LedgerAbilities, string(id), delta)
	}

	return spent, nil
}

// SetAbilityBaseValue sets a base score without touching the pool and returns
// its point-buy cost
func (c *Character) SetAbilityBaseValue(id AbilityID, value int) (int, error) {
	ability, ok := c.abilities[id]
	if !ok {
		c.warnUnknown("ability", string(id), "SetAbilityBaseValue")
		return 0, errors.UnknownIdentifier("ability", string(id))
	}
	return ability.SetBaseValue(value)
}

// SetAbilityRacialModifier replaces an ability's racial modifier
func (c *Character) SetAbilityRacialModifier(id AbilityID, value int) error {
	ability, ok := c.abilities[id]
	if !ok {
		c.warnUnknown("ability", string(id), "SetAbilityRacialModifier")
		return errors.UnknownIdentifier("ability", string(id))
	}
	ability.SetRacialModifier(value)
	return nil
}

// SetAbilityTemporaryModifiers replaces an ability's temporary modifiers
func (c *Character) SetAbilityTemporaryModifiers(id AbilityID, modifiers map[string]int) error {
	ability, ok := c.abilities[id]
	if !ok {
		c.warnUnknown("ability", string(id), "SetAbilityTemporaryModifiers")
		return errors.UnknownIdentifier("ability", string(id))
	}
	ability.SetTemporaryModifiers(modifiers)
	return nil
}

// AddSkill attaches a catalog skill as a cross-class skill. Adding a skill the
// character already has is a no-op.
func (c *Character) AddSkill(id string) error {
	if _, ok := c.skills[id]; ok {
		return nil
	}
	skill, err := c.skillFromCatalog(id)
	if err != nil {
		c.warnUnknown("skill", id, "AddSkill")
		return err
	}
	c.skills[id] = skill
	return nil
}

// IncrementSkillRank buys delta ranks in a skill, adding the skill from the
// catalog as a cross-class skill when the character does not have it yet.
// A rejected purchase returns 0 with an error and leaves the character
// unchanged.
func (c *Character) IncrementSkillRank(id string, delta int) (int, error) {
	skill, ok := c.skills[id]
	if !ok {
		var err error
		skill, err = c.skillFromCatalog(id)
		if err != nil {
			c.warnUnknown("skill", id, "IncrementSkillRank")
			return 0, err
		}
	}

	spent, err := skill.tryIncrementRank(delta, c.availableSkillPoints, c.totalLevel)
	if err != nil {
		return 0, err
	}

	if !ok {
		c.skills[id] = skill
	}
	c.availableSkillPoints -= spent
	if spent != 0 {
		c.ledger.record(LedgerSkills, id, spent)
	}

	return spent, nil
}

// SetSkillRank stores the absolute value of rank with no pool or cap checks
func (c *Character) SetSkillRank(id string, rank int) error {
	skill, ok := c.skills[id]
	if !ok {
		c.warnUnknown("skill", id, "SetSkillRank")
		return errors.UnknownIdentifier("skill", id)
	}
	skill.SetRank(rank)
	return nil
}

// SetSkillModifiers adds modifiers to a skill, stacking onto existing sources
func (c *Character) SetSkillModifiers(id string, modifiers map[string]int) error {
	skill, ok := c.skills[id]
	if !ok {
		c.warnUnknown("skill", id, "SetSkillModifiers")
		return errors.UnknownIdentifier("skill", id)
	}
	skill.SetModifiers(modifiers)
	return nil
}

// UpdateAvailableSkillPoints grants the skill points for the current level.
// The per-level amount is the class rate plus any racial bonus plus the
// Intelligence modifier, floored at 1 as 3.5 guarantees every class at least
// one point per level even with a heavy Intelligence penalty. Level 1
// receives four times that amount; later levels add to whatever is still
// unspent.
func (c *Character) UpdateAvailableSkillPoints() {
	levelPoints := c.SkillPointsPerLevel() + c.abilities[AbilityIntelligence].Modifier()
	if levelPoints < 1 {
		levelPoints = 1
	}

	if c.totalLevel == 1 {
		c.availableSkillPoints = levelPoints * 4
		return
	}
	c.availableSkillPoints += levelPoints
}

// LevelUp advances the character by delta levels and closes the current
// rollback window
func (c *Character) LevelUp(delta int) error {
	if delta < 1 {
		return errors.InvalidArgumentf("level delta must be positive, got %d", delta)
	}

	c.totalLevel += delta
	c.UpdateAvailableSkillPoints()
	if c.totalLevel%4 == 0 {
		c.availableAbilityPoints += (delta + 3) / 4
	}
	c.ledger = RollbackLedger{}

	slog.Debug("character leveled up",
		"character_id", c.id,
		"total_level", c.totalLevel,
		"available_skill_points", c.availableSkillPoints,
		"available_ability_points", c.availableAbilityPoints)

	return nil
}

// RollBackLevelWindow reverses the free ability points and skill ranks
// recorded since the last level-up, refunding the skill pool, and clears the
// ledger
func (c *Character) RollBackLevelWindow() {
	for id, amount := range c.ledger[LedgerAbilities] {
		if ability, ok := c.abilities[AbilityID(id)]; ok {
			ability.baseValue -= amount
			ability.recompute()
		}
	}
	for id, amount := range c.ledger[LedgerSkills] {
		skill, ok := c.skills[id]
		if !ok {
			continue
		}
		rank := skill.rank - amount
		if rank < 0 {
			rank = 0
		}
		skill.SetRank(rank)
		c.availableSkillPoints += amount
	}
	c.ledger = RollbackLedger{}
}

func (c *Character) skillFromCatalog(id string) (*Skill, error) {
	def, ok := c.catalog.Skill(id)
	if !ok {
		return nil, errors.UnknownIdentifier("skill", id)
	}
	return NewSkill(def, false), nil
}

func (c *Character) warnUnknown(kind, id, operation string) {
	slog.Warn("unknown identifier",
		"character_id", c.id,
		"kind", kind,
		"id", id,
		"operation", operation)
}
