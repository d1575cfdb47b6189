package catalog

import (
	"embed"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// File names expected in a catalog directory
const (
	SkillsFile  = "skills.yaml"
	ClassesFile = "classes.yaml"
	RacesFile   = "races.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type skillsDoc struct {
	Skills []SkillDef `yaml:"skills"`
}

type classesDoc struct {
	Classes []ClassDef `yaml:"classes"`
}

type racesDoc struct {
	Races []RaceDef `yaml:"races"`
}

// Default loads the catalog shipped with the binary
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return Load(sub)
}

// LoadDir loads a catalog from the three YAML files in dir
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads skills.yaml, classes.yaml and races.yaml from fsys
func Load(fsys fs.FS) (*Catalog, error) {
	var skills skillsDoc
	if err := decode(fsys, SkillsFile, &skills); err != nil {
		return nil, err
	}

	var classes classesDoc
	if err := decode(fsys, ClassesFile, &classes); err != nil {
		return nil, err
	}

	var races racesDoc
	if err := decode(fsys, RacesFile, &races); err != nil {
		return nil, err
	}

	return New(skills.Skills, classes.Classes, races.Races)
}

func decode(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+name)
	}
	return nil
}
