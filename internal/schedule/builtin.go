package schedule

func builtinSpecials() []Special {
	return []Special{
		{
			Name: Regular,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 9, 0),
				Span(9, 5, 9, 50),
				Span(9, 55, 10, 40),
				Span(10, 45, 11, 30),
				Span(11, 35, 12, 20),
				Span(12, 25, 1, 5),
				Span(1, 10, 1, 55),
				Span(2, 0, 2, 45),
				Span(2, 50, 3, 35),
				Span(3, 40, 3, 55),
				Span(3, 55, 4, 40),
			},
			Homeroom: Index(0),
			Mincha:   Index(10),
			Skip:     []int{6},
		},
		{
			Name: Rotate,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 9, 10),
				Span(9, 15, 10, 10),
				Span(10, 15, 11, 10),
				Span(11, 15, 12, 10),
				Span(12, 15, 12, 55),
				Span(1, 0, 1, 55),
				Span(2, 0, 2, 55),
				Span(3, 0, 3, 15),
				Span(3, 20, 4, 15),
			},
			Homeroom: Index(0),
			Mincha:   Index(8),
			Skip:     []int{5},
		},
		{
			Name: Friday,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 8, 55),
				Span(9, 0, 9, 40),
				Span(9, 45, 10, 25),
				Span(10, 30, 11, 10),
				Span(11, 15, 11, 55),
				Span(12, 0, 12, 40),
				Span(12, 45, 1, 25),
				Span(1, 30, 1, 45),
			},
			Homeroom: Index(0),
			Mincha:   Index(8),
		},
		{
			Name: WinterFriday,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 8, 50),
				Span(8, 55, 9, 30),
				Span(9, 35, 10, 10),
				Span(10, 15, 10, 50),
				Span(10, 55, 11, 30),
				Span(11, 35, 12, 10),
				Span(12, 15, 12, 30),
			},
			Homeroom: Index(0),
			Mincha:   Index(7),
		},
		{
			Name: RoshChodesh,
			Periods: []Range{
				Span(8, 0, 8, 30),
				Span(8, 35, 9, 15),
				Span(9, 20, 10, 0),
				Span(10, 5, 10, 45),
				Span(10, 50, 11, 30),
				Span(11, 35, 12, 15),
				Span(12, 20, 1, 0),
				Span(1, 5, 1, 45),
				Span(1, 50, 2, 30),
				Span(2, 35, 3, 15),
				Span(3, 20, 3, 35),
				Span(3, 40, 4, 20),
			},
			Homeroom: Index(0),
			Mincha:   Index(10),
			Skip:     []int{6},
		},
		{
			Name: RoshChodeshRotate,
			Periods: []Range{
				Span(8, 0, 8, 30),
				Span(8, 35, 9, 25),
				Span(9, 30, 10, 20),
				Span(10, 25, 11, 15),
				Span(11, 20, 12, 10),
				Span(12, 15, 12, 55),
				Span(1, 0, 1, 50),
				Span(1, 55, 2, 45),
				Span(2, 50, 3, 5),
				Span(3, 10, 4, 0),
			},
			Homeroom: Index(0),
			Mincha:   Index(8),
			Skip:     []int{5},
		},
		{
			Name: RoshChodeshFriday,
			Periods: []Range{
				Span(8, 0, 8, 30),
				Span(8, 35, 9, 10),
				Span(9, 15, 9, 50),
				Span(9, 55, 10, 30),
				Span(10, 35, 11, 10),
				Span(11, 15, 11, 50),
				Span(11, 55, 12, 30),
				Span(12, 35, 1, 10),
				Span(1, 15, 1, 30),
			},
			Homeroom: Index(0),
			Mincha:   Index(8),
		},
		{
			Name: RoshChodeshWinterFriday,
			Periods: []Range{
				Span(8, 0, 8, 30),
				Span(8, 35, 9, 5),
				Span(9, 10, 9, 40),
				Span(9, 45, 10, 15),
				Span(10, 20, 10, 50),
				Span(10, 55, 11, 25),
				Span(11, 30, 12, 0),
				Span(12, 5, 12, 20),
			},
			Homeroom: Index(0),
			Mincha:   Index(7),
		},
		{
			Name: Tzom,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 8, 55),
				Span(9, 0, 9, 40),
				Span(9, 45, 10, 25),
				Span(10, 30, 11, 10),
				Span(11, 15, 11, 55),
				Span(12, 0, 12, 40),
				Span(12, 45, 1, 25),
				Span(1, 30, 2, 10),
				Span(2, 15, 2, 30),
			},
			Homeroom: Index(0),
			Mincha:   Index(9),
		},
		{
			Name: EarlyDismissal,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 8, 50),
				Span(8, 55, 9, 30),
				Span(9, 35, 10, 10),
				Span(10, 15, 10, 50),
				Span(10, 55, 11, 30),
				Span(11, 35, 12, 10),
				Span(12, 15, 12, 50),
				Span(12, 55, 1, 10),
			},
			Homeroom: Index(0),
			Mincha:   Index(8),
		},
		{
			Name: AMAssembly,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 9, 15),
				Span(9, 20, 10, 0),
				Span(10, 5, 10, 45),
				Span(10, 50, 11, 30),
				Span(11, 35, 12, 15),
				Span(12, 20, 1, 0),
				Span(1, 5, 1, 45),
				Span(1, 50, 2, 30),
				Span(2, 35, 3, 15),
				Span(3, 20, 3, 35),
				Span(3, 40, 4, 20),
				Span(4, 25, 5, 0),
			},
			Homeroom: Index(0),
			Mincha:   Index(10),
			Skip:     []int{1, 6},
		},
		{
			Name: PMAssembly,
			Periods: []Range{
				Span(8, 0, 8, 10),
				Span(8, 15, 8, 55),
				Span(9, 0, 9, 40),
				Span(9, 45, 10, 25),
				Span(10, 30, 11, 10),
				Span(11, 15, 11, 55),
				Span(12, 0, 12, 40),
				Span(12, 45, 1, 25),
				Span(1, 30, 2, 10),
				Span(2, 15, 3, 15),
				Span(3, 20, 3, 35),
				Span(3, 40, 4, 20),
			},
			Homeroom: Index(0),
			Mincha:   Index(10),
			Skip:     []int{6, 9},
		},
	}
}
