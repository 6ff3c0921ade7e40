// Package locale holds the fixed response templates used by the rule-based
// fallback path. The catalog is built once at startup and never mutated, so
// it is safe for unsynchronized concurrent reads.
package locale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used whenever a session's language is missing or not
// present in the catalog.
const DefaultLanguage = "English"

// Templates is the fixed set of named messages for one language.
// Assessment and AreYouExperiencing carry a single %s placeholder
// (disease name and symptom name respectively).
type Templates struct {
	Greeting           string `yaml:"greeting"`
	OutOfScope         string `yaml:"out_of_scope"`
	Emergency          string `yaml:"emergency"`
	Assessment         string `yaml:"assessment"`
	MoreInfo           string `yaml:"more_info"`
	NextQuestion       string `yaml:"next_question"`
	AreYouExperiencing string `yaml:"are_you_experiencing"`
	AnyOtherSymptoms   string `yaml:"any_other_symptoms"`
}

// Catalog maps language tags to their templates.
type Catalog struct {
	languages map[string]Templates
}

// NewCatalog returns a catalog containing the built-in languages.
func NewCatalog() *Catalog {
	langs := make(map[string]Templates, len(builtin))
	for lang, t := range builtin {
		langs[lang] = t
	}
	return &Catalog{languages: langs}
}

// Load returns the built-in catalog with per-language overrides read from a
// YAML file. Languages absent from the file keep their built-in templates;
// empty fields in an override keep the built-in text.
func Load(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}
	var overrides map[string]Templates
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse locale file: %w", err)
	}
	for lang, o := range overrides {
		t, ok := c.languages[lang]
		if !ok {
			t = Templates{}
		}
		merge(&t, o)
		c.languages[lang] = t
	}
	return c, nil
}

func merge(dst *Templates, src Templates) {
	if src.Greeting != "" {
		dst.Greeting = src.Greeting
	}
	if src.OutOfScope != "" {
		dst.OutOfScope = src.OutOfScope
	}
	if src.Emergency != "" {
		dst.Emergency = src.Emergency
	}
	if src.Assessment != "" {
		dst.Assessment = src.Assessment
	}
	if src.MoreInfo != "" {
		dst.MoreInfo = src.MoreInfo
	}
	if src.NextQuestion != "" {
		dst.NextQuestion = src.NextQuestion
	}
	if src.AreYouExperiencing != "" {
		dst.AreYouExperiencing = src.AreYouExperiencing
	}
	if src.AnyOtherSymptoms != "" {
		dst.AnyOtherSymptoms = src.AnyOtherSymptoms
	}
}

// Has reports whether the catalog carries the given language.
func (c *Catalog) Has(language string) bool {
	_, ok := c.languages[language]
	return ok
}

// Resolve returns the language tag actually used for the given request
// language: the tag itself when present, otherwise DefaultLanguage.
func (c *Catalog) Resolve(language string) string {
	if c.Has(language) {
		return language
	}
	return DefaultLanguage
}

// Templates returns the templates for the language, falling back to the
// default language when the tag is unknown.
func (c *Catalog) Templates(language string) Templates {
	if t, ok := c.languages[language]; ok {
		return t
	}
	return c.languages[DefaultLanguage]
}
