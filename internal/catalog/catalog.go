// Package catalog holds the static D&D 3.5 rules tables: skills, classes and races.
//
// A Catalog is built once at startup and shared read-only by every character.
// Lookups return copies so no caller can mutate the shared definitions.
package catalog

import (
	"sort"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// AbilityCodes lists the six ability identifiers accepted in catalog data
var AbilityCodes = []string{"str", "dex", "con", "int", "wis", "cha"}

// KeyAbilityNone marks skills without a governing ability (Speak Language)
const KeyAbilityNone = "none"

// SkillDef describes one skill in the global skill list
type SkillDef struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	KeyAbility string `yaml:"key_ability"`
}

// ClassDef describes a class's skill budget and default class skills
type ClassDef struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	SkillPointsPerLevel int      `yaml:"skill_points_per_level"`
	ClassSkills         []string `yaml:"class_skills"`
}

// FeatDef is a feat granted by a race
type FeatDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// OtherTraits carries the racial details that are not ability, skill or feat modifiers
type OtherTraits struct {
	Size                string   `yaml:"size"`
	Languages           []string `yaml:"languages"`
	BaseLandSpeed       int      `yaml:"base_land_speed"`
	SkillPointsPerLevel int      `yaml:"skill_points_per_level"`
	Traits              []string `yaml:"traits"`
}

// RaceDef is the racial template applied when a character is built
type RaceDef struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	AbilityModifiers map[string]int `yaml:"ability_modifiers"`
	SkillModifiers   map[string]int `yaml:"skill_modifiers"`
	Feats            []FeatDef      `yaml:"feats"`
	Other            OtherTraits    `yaml:"other"`
}

func (c ClassDef) clone() ClassDef {
	c.ClassSkills = append([]string(nil), c.ClassSkills...)
	return c
}

func (r RaceDef) clone() RaceDef {
	r.AbilityModifiers = cloneInts(r.AbilityModifiers)
	r.SkillModifiers = cloneInts(r.SkillModifiers)
	r.Feats = append([]FeatDef(nil), r.Feats...)
	r.Other.Languages = append([]string(nil), r.Other.Languages...)
	r.Other.Traits = append([]string(nil), r.Other.Traits...)
	return r
}

func cloneInts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Catalog is the immutable set of rules tables
type Catalog struct {
	skills  map[string]SkillDef
	classes map[string]ClassDef
	races   map[string]RaceDef
}

// New validates the tables and builds a Catalog from private copies of them.
// Class skills and racial skill modifiers must reference known skills, and
// ability keys must be one of AbilityCodes.
func New(skills []SkillDef, classes []ClassDef, races []RaceDef) (*Catalog, error) {
	c := &Catalog{
		skills:  make(map[string]SkillDef, len(skills)),
		classes: make(map[string]ClassDef, len(classes)),
		races:   make(map[string]RaceDef, len(races)),
	}

	vb := errors.NewValidationBuilder()

	for _, s := range skills {
		if s.ID == "" {
			vb.RequiredField("skills.id")
			continue
		}
		if _, dup := c.skills[s.ID]; dup {
			vb.Fieldf("skills."+s.ID, "is defined more than once")
			continue
		}
		if s.KeyAbility != KeyAbilityNone && !isAbilityCode(s.KeyAbility) {
			vb.Fieldf("skills."+s.ID+".key_ability", "unknown ability %q", s.KeyAbility)
		}
		c.skills[s.ID] = s
	}

	for _, cl := range classes {
		if cl.ID == "" {
			vb.RequiredField("classes.id")
			continue
		}
		if cl.SkillPointsPerLevel < 0 {
			vb.Fieldf("classes."+cl.ID+".skill_points_per_level", "must not be negative")
		}
		for _, id := range cl.ClassSkills {
			if _, ok := c.skills[id]; !ok {
				vb.Fieldf("classes."+cl.ID+".class_skills", "unknown skill %q", id)
			}
		}
		c.classes[cl.ID] = cl.clone()
	}

	for _, r := range races {
		if r.ID == "" {
			vb.RequiredField("races.id")
			continue
		}
		for ability := range r.AbilityModifiers {
			if !isAbilityCode(ability) {
				vb.Fieldf("races."+r.ID+".ability_modifiers", "unknown ability %q", ability)
			}
		}
		for id := range r.SkillModifiers {
			if _, ok := c.skills[id]; !ok {
				vb.Fieldf("races."+r.ID+".skill_modifiers", "unknown skill %q", id)
			}
		}
		c.races[r.ID] = r.clone()
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return c, nil
}

func isAbilityCode(code string) bool {
	for _, a := range AbilityCodes {
		if a == code {
			return true
		}
	}
	return false
}

// Skill looks up a skill definition
func (c *Catalog) Skill(id string) (SkillDef, bool) {
	s, ok := c.skills[id]
	return s, ok
}

// Class looks up a class definition
func (c *Catalog) Class(id string) (ClassDef, bool) {
	cl, ok := c.classes[id]
	if !ok {
		return ClassDef{}, false
	}
	return cl.clone(), true
}

// Race looks up a race definition
func (c *Catalog) Race(id string) (RaceDef, bool) {
	r, ok := c.races[id]
	if !ok {
		return RaceDef{}, false
	}
	return r.clone(), true
}

// SkillIDs returns every skill id in sorted order
func (c *Catalog) SkillIDs() []string {
	return sortedKeys(c.skills)
}

// ClassIDs returns every class id in sorted order
func (c *Catalog) ClassIDs() []string {
	return sortedKeys(c.classes)
}

// RaceIDs returns every race id in sorted order
func (c *Catalog) RaceIDs() []string {
	return sortedKeys(c.races)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
