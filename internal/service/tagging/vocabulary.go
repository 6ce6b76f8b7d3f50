package tagging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the three fixed keyword lists posts are matched
// against. The zero value is not usable; start from DefaultVocabulary
// or LoadVocabulary.
type Vocabulary struct {
	Colors []string `yaml:"colors"`
	Styles []string `yaml:"styles"`
	Moods  []string `yaml:"moods"`
}

// DefaultVocabulary returns the built-in keyword lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Colors: []string{"red", "blue", "black", "white", "green", "beige", "pastel"},
		Styles: []string{"denim", "linen", "leather", "knit", "floral"},
		Moods:  []string{"minimal", "romantic", "edgy", "cozy", "casual", "bold", "confident", "lightweight", "mood"},
	}
}

// LoadVocabulary reads a vocabulary override from a YAML file. Lists
// omitted from the file fall back to the defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("error reading vocabulary file: %w", err)
	}

	v := DefaultVocabulary()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("error parsing vocabulary file %s: %w", path, err)
	}

	if len(v.Colors) == 0 && len(v.Styles) == 0 && len(v.Moods) == 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s defines no keywords", path)
	}

	return v, nil
}

// All returns the union of the three lists as a membership set.
func (v Vocabulary) All() map[string]struct{} {
	set := make(map[string]struct{}, len(v.Colors)+len(v.Styles)+len(v.Moods))
	for _, list := range [][]string{v.Colors, v.Styles, v.Moods} {
		for _, word := range list {
			set[word] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is in any of the three lists.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v.All()[word]
	return ok
}
