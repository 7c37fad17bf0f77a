package schedule

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Names of the built-in schedules.
const (
	Regular                 = "regular"
	Rotate                  = "rotate"
	Friday                  = "Friday"
	WinterFriday            = "Winter Friday"
	RoshChodesh             = "Rosh Chodesh"
	RoshChodeshRotate       = "Rosh Chodesh Rotate"
	RoshChodeshFriday       = "Rosh Chodesh Friday"
	RoshChodeshWinterFriday = "Rosh Chodesh Winter Friday"
	Tzom                    = "Tzom"
	EarlyDismissal          = "Early Dismissal"
	AMAssembly              = "AM Assembly"
	PMAssembly              = "PM Assembly"
)

// Catalog is an immutable registry of schedules keyed by name, together with
// the rule that picks between the Friday and Winter Friday schedules.
type Catalog struct {
	rule     FridayRule
	specials []Special
	byName   map[string]int
}

// NewCatalog validates every schedule and builds a catalog. Names must be unique.
func NewCatalog(rule FridayRule, specials ...Special) (*Catalog, error) {
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	c := &Catalog{
		rule:     rule,
		specials: make([]Special, 0, len(specials)),
		byName:   make(map[string]int, len(specials)),
	}
	for _, s := range specials {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate schedule %q", ErrInvalidCatalog, s.Name)
		}
		c.byName[s.Name] = len(c.specials)
		c.specials = append(c.specials, s.clone())
	}
	return c, nil
}

// DefaultCatalog returns the built-in schedules with the default Friday rule.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultFridayRule(), builtinSpecials()...)
	if err != nil {
		panic(err)
	}
	return c
}

// With returns a new catalog holding c's schedules plus specials.
// A special whose name already exists replaces the existing entry.
func (c *Catalog) With(specials ...Special) (*Catalog, error) {
	merged := make([]Special, len(c.specials))
	copy(merged, c.specials)
	for _, s := range specials {
		if i, ok := c.byName[s.Name]; ok {
			merged[i] = s
			continue
		}
		merged = append(merged, s)
	}
	return NewCatalog(c.rule, merged...)
}

// WithRule returns a copy of c that uses rule for Friday selection.
func (c *Catalog) WithRule(rule FridayRule) (*Catalog, error) {
	return NewCatalog(rule, c.specials...)
}

// Rule returns the catalog's Friday rule.
func (c *Catalog) Rule() FridayRule {
	return c.rule
}

// Names lists schedule names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.specials))
	for i, s := range c.specials {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the schedule with the exact given name.
func (c *Catalog) Lookup(name string) (Special, error) {
	i, ok := c.byName[name]
	if !ok {
		return Special{}, fmt.Errorf("%w: %w %q", ErrFormat, ErrUnknownVariant, name)
	}
	return c.specials[i].clone(), nil
}

// Friday returns the Friday or Winter Friday schedule for the date of now.
func (c *Catalog) Friday(now time.Time) (Special, error) {
	if c.rule.IsWinterOn(now) {
		return c.Lookup(WinterFriday)
	}
	return c.Lookup(Friday)
}

// ForLetter returns the default schedule of a letter. E and F days depend on now.
func (c *Catalog) ForLetter(l Letter, now time.Time) (Special, error) {
	switch l {
	case LetterA, LetterB, LetterC:
		return c.Lookup(Rotate)
	case LetterM, LetterR:
		return c.Lookup(Regular)
	case LetterE, LetterF:
		return c.Friday(now)
	default:
		return Special{}, fmt.Errorf("%w: %w: no default schedule for %q", ErrFormat, ErrUnknownLetter, l.String())
	}
}

// ParseSpecial decodes a schedule in either form: a bare name resolved
// against the catalog, or a full {name, periods, ...} record.
func (c *Catalog) ParseSpecial(data []byte) (Special, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Special{}, fmt.Errorf("%w: empty special", ErrFormat)
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return Special{}, wrapFormat("special", err)
		}
		return c.Lookup(name)
	case '{':
		return parseFullSpecial(data)
	default:
		return Special{}, fmt.Errorf("%w: special must be a name or a record", ErrFormat)
	}
}
