package colormath

// Named pairs a color with a human label.
type Named struct {
	Name  string
	Color RGB
}

// Rainbow returns the seven rainbow colors, red first.
func Rainbow() []Named {
	return []Named{
		{Name: "red", Color: RGB{R: 255}},
		{Name: "orange", Color: RGB{R: 255, G: 165}},
		{Name: "yellow", Color: RGB{R: 255, G: 255}},
		{Name: "green", Color: RGB{G: 255}},
		{Name: "blue", Color: RGB{B: 255}},
		{Name: "indigo", Color: RGB{R: 75, B: 130}},
		{Name: "violet", Color: RGB{R: 238, G: 130, B: 238}},
	}
}
