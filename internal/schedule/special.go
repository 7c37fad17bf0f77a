package schedule

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
)

// Special is a named bell schedule: ordered period ranges plus optional
// homeroom, mincha and skipped-period markers (all zero-based period indices).
type Special struct {
	Name     string
	Periods  []Range
	Homeroom *int
	Mincha   *int
	Skip     []int
}

// Index returns a pointer to i, for the optional marker fields of Special.
func Index(i int) *int {
	return &i
}

// Equal reports whether s and o are the same schedule. Schedules are identified by name.
func (s Special) Equal(o Special) bool {
	return s.Name == o.Name
}

// IsHomeroom reports whether period i is homeroom.
func (s Special) IsHomeroom(i int) bool {
	return s.Homeroom != nil && *s.Homeroom == i
}

// IsMincha reports whether period i is mincha.
func (s Special) IsMincha(i int) bool {
	return s.Mincha != nil && *s.Mincha == i
}

// IsSkipped reports whether period i is skipped in the class numbering.
func (s Special) IsSkipped(i int) bool {
	return slices.Contains(s.Skip, i)
}

// Label names period i: "Homeroom", "Mincha", "Break" for skipped periods,
// otherwise "Period n" where n counts only class periods.
func (s Special) Label(i int) string {
	if i < 0 || i >= len(s.Periods) {
		return ""
	}
	switch {
	case s.IsHomeroom(i):
		return "Homeroom"
	case s.IsMincha(i):
		return "Mincha"
	case s.IsSkipped(i):
		return "Break"
	}
	n := 0
	for j := 0; j <= i; j++ {
		if !s.IsHomeroom(j) && !s.IsMincha(j) && !s.IsSkipped(j) {
			n++
		}
	}
	return "Period " + strconv.Itoa(n)
}

func (s Special) clone() Special {
	out := Special{
		Name:    s.Name,
		Periods: slices.Clone(s.Periods),
		Skip:    slices.Clone(s.Skip),
	}
	if s.Homeroom != nil {
		out.Homeroom = Index(*s.Homeroom)
	}
	if s.Mincha != nil {
		out.Mincha = Index(*s.Mincha)
	}
	return out
}

// validate checks that periods are non-empty and chronological and that every marker is in range.
func (s Special) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: schedule name is empty", ErrFormat)
	}
	if len(s.Periods) == 0 {
		return fmt.Errorf("%w: schedule %q has no periods", ErrFormat, s.Name)
	}
	for i := 1; i < len(s.Periods); i++ {
		if s.Periods[i].Start.Before(s.Periods[i-1].End) {
			return fmt.Errorf("%w: schedule %q period %d starts before period %d ends",
				ErrFormat, s.Name, i, i-1)
		}
	}
	inRange := func(i int) bool { return i >= 0 && i < len(s.Periods) }
	if s.Homeroom != nil && !inRange(*s.Homeroom) {
		return fmt.Errorf("%w: schedule %q homeroom %d out of range", ErrFormat, s.Name, *s.Homeroom)
	}
	if s.Mincha != nil && !inRange(*s.Mincha) {
		return fmt.Errorf("%w: schedule %q mincha %d out of range", ErrFormat, s.Name, *s.Mincha)
	}
	for _, i := range s.Skip {
		if !inRange(i) {
			return fmt.Errorf("%w: schedule %q skip %d out of range", ErrFormat, s.Name, i)
		}
	}
	return nil
}

type specialJSON struct {
	Name     string  `json:"name"`
	Periods  []Range `json:"periods"`
	Homeroom *int    `json:"homeroom,omitempty"`
	Mincha   *int    `json:"mincha,omitempty"`
	Skip     []int   `json:"skip,omitempty"`
}

// MarshalJSON always writes the full record form.
func (s Special) MarshalJSON() ([]byte, error) {
	return json.Marshal(specialJSON{
		Name:     s.Name,
		Periods:  s.Periods,
		Homeroom: s.Homeroom,
		Mincha:   s.Mincha,
		Skip:     s.Skip,
	})
}

// parseFullSpecial decodes the record form of a schedule without consulting a catalog.
func parseFullSpecial(data []byte) (Special, error) {
	var raw specialJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Special{}, wrapFormat("special", err)
	}
	s := Special{
		Name:     raw.Name,
		Periods:  raw.Periods,
		Homeroom: raw.Homeroom,
		Mincha:   raw.Mincha,
		Skip:     raw.Skip,
	}
	if err := s.validate(); err != nil {
		return Special{}, err
	}
	return s, nil
}
