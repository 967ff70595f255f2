package palette

import "strings"

// Interpolate blends two colors linearly in RGB; factor is clamped to [0,1]
func Interpolate(from, to string, factor float64) (string, error) {
	a, err := ParseColor(from)
	if err != nil {
		return "", err
	}
	b, err := ParseColor(to)
	if err != nil {
		return "", err
	}
	return blend(a, b, factor), nil
}

func blend(a, b Color, factor float64) string {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return strings.ToUpper(a.rgb.BlendRgb(b.rgb, factor).Clamped().Hex())
}

// At samples a palette's control points at position t in [0,1]
func At(colors []Color, t float64) string {
	switch len(colors) {
	case 0:
		return ""
	case 1:
		return colors[0].Hex
	}

	if t <= 0 {
		return colors[0].Hex
	}
	if t >= 1 {
		return colors[len(colors)-1].Hex
	}

	segments := len(colors) - 1
	position := t * float64(segments)
	index := int(position)
	if index >= segments {
		return colors[segments].Hex
	}
	return blend(colors[index], colors[index+1], position-float64(index))
}

// ParseAll parses every color of a list
func ParseAll(colors []string) ([]Color, error) {
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		parsed, err := ParseColor(c)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// Gradient spreads steps colors evenly over the control points
func Gradient(colors []string, steps int) ([]string, error) {
	if steps <= 0 || len(colors) == 0 {
		return []string{}, nil
	}

	parsed, err := ParseAll(colors)
	if err != nil {
		return nil, err
	}

	if steps == 1 {
		return []string{parsed[0].Hex}, nil
	}

	out := make([]string, steps)
	for i := range out {
		out[i] = At(parsed, float64(i)/float64(steps-1))
	}
	return out, nil
}
