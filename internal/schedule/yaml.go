package schedule

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCatalog struct {
	Specials []yamlSpecial `yaml:"specials"`
}

type yamlSpecial struct {
	Name     string      `yaml:"name"`
	Periods  []yamlRange `yaml:"periods"`
	Homeroom *int        `yaml:"homeroom"`
	Mincha   *int        `yaml:"mincha"`
	Skip     []int       `yaml:"skip"`
}

type yamlRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadCatalogYAML reads schedule definitions from YAML:
//
//	specials:
//	  - name: Snow Delay
//	    homeroom: 0
//	    periods:
//	      - {start: "10:00", end: "10:10"}
//	      - {start: "10:15", end: "10:50"}
//
// Times use the school clock ("1:30" is 1:30 PM).
func LoadCatalogYAML(r io.Reader) ([]Special, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: catalog yaml: %v", ErrFormat, err)
	}

	specials := make([]Special, 0, len(doc.Specials))
	for _, ys := range doc.Specials {
		s := Special{
			Name:     ys.Name,
			Homeroom: ys.Homeroom,
			Mincha:   ys.Mincha,
			Skip:     ys.Skip,
		}
		for _, yr := range ys.Periods {
			start, err := ParseClock(yr.Start)
			if err != nil {
				return nil, fmt.Errorf("schedule %q: %w", ys.Name, err)
			}
			end, err := ParseClock(yr.End)
			if err != nil {
				return nil, fmt.Errorf("schedule %q: %w", ys.Name, err)
			}
			r, err := NewRange(start, end)
			if err != nil {
				return nil, fmt.Errorf("schedule %q: %w", ys.Name, err)
			}
			s.Periods = append(s.Periods, r)
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		specials = append(specials, s)
	}
	return specials, nil
}
