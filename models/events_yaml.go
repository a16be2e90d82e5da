package models

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteData is the layout of a seed file:
//
//	events:
//	  - id: 1
//	    title: React Workshop for Beginners
//	    date: 2025-09-15
//	    ...
//	testimonials:
//	  - id: 1
//	    ...
type SiteData struct {
	Events       []Event       `yaml:"events"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

func LoadSiteData(path string) (SiteData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return SiteData{}, err
	}
	var sd SiteData
	if err := yaml.Unmarshal(b, &sd); err != nil {
		return SiteData{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return sd, nil
}

type yamlEventSource struct {
	path string
}

func NewYAMLEventSource(path string) EventSource {
	return &yamlEventSource{path: path}
}

func (s *yamlEventSource) LoadEvents(ctx context.Context) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sd, err := LoadSiteData(s.path)
	if err != nil {
		return nil, err
	}
	return sd.Events, nil
}
