package corpus

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// themeFile is the YAML shape accepted by LoadYAML. A file either defines a
// single theme at the top level or a "themes" list of them.
type themeFile struct {
	Name   string   `yaml:"name"`
	Words  []string `yaml:"words"`
	Themes []struct {
		Name  string   `yaml:"name"`
		Words []string `yaml:"words"`
	} `yaml:"themes"`
}

// LoadYAML registers every theme defined in the YAML document read from r.
// Registration stops at the first invalid theme; themes registered before
// the failure stay registered.
func LoadYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrInvalidCorpus, err)
	}

	var doc themeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrInvalidCorpus, err)
	}

	if doc.Name != "" || len(doc.Words) > 0 {
		if err := Register(doc.Name, doc.Words); err != nil {
			return err
		}
	}
	for _, t := range doc.Themes {
		if err := Register(t.Name, t.Words); err != nil {
			return err
		}
	}
	return nil
}
