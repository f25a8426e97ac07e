package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"businessghat/internal/domain"
)

//go:embed data/site.yaml
var siteYAML []byte

type document struct {
	Metadata domain.SiteMetadata `yaml:"metadata"`
	Content  domain.Content      `yaml:"content"`
}

// store implements domain.ContentStore over data decoded once at startup.
type store struct {
	metadata domain.SiteMetadata
	content  domain.Content
}

// NewStore decodes the embedded site data.
func NewStore() (domain.ContentStore, error) {
	return Parse(siteYAML)
}

// Parse decodes site data from raw YAML. Unknown keys are rejected so typos in
// the data file fail at startup instead of silently dropping copy.
func Parse(raw []byte) (domain.ContentStore, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode site data: %w", err)
	}
	return &store{metadata: doc.Metadata, content: doc.Content}, nil
}

func (s *store) Metadata() domain.SiteMetadata {
	m := s.metadata
	m.Icons.Icon = slices.Clone(m.Icons.Icon)
	m.OpenGraph.Images = slices.Clone(m.OpenGraph.Images)
	m.Twitter.Images = slices.Clone(m.Twitter.Images)
	return m
}

func (s *store) Content() domain.Content {
	c := domain.Content{
		Perks:        slices.Clone(s.content.Perks),
		Features:     slices.Clone(s.content.Features),
		PricingCards: slices.Clone(s.content.PricingCards),
		BentoCards:   slices.Clone(s.content.BentoCards),
		Reviews:      slices.Clone(s.content.Reviews),
	}
	for i := range c.PricingCards {
		c.PricingCards[i].Features = slices.Clone(c.PricingCards[i].Features)
	}
	return c
}
