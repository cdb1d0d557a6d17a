package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/viz"
)

const (
	background = "#0a0a0a"

	// maxRadiusScale keeps body circles at their unzoomed size when the
	// scene is small enough to be magnified.
	maxRadiusScale = 1.0
)

// SceneToSVG draws bodies as halo and core circles, fitting the scene into
// width x height with a 10% margin. Bodies keep the screen convention of
// the live viewer: y grows downwards.
func SceneToSVG(bodies []physics.BodyView, width, height int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	if len(bodies) > 0 {
		minX, maxX := bodies[0].Position.X, bodies[0].Position.X
		minY, maxY := bodies[0].Position.Y, bodies[0].Position.Y
		for _, b := range bodies {
			minX = math.Min(minX, b.Position.X)
			maxX = math.Max(maxX, b.Position.X)
			minY = math.Min(minY, b.Position.Y)
			maxY = math.Max(maxY, b.Position.Y)
		}

		rangeX := math.Max(maxX-minX, 1)
		rangeY := math.Max(maxY-minY, 1)
		// one scale for both axes so circles stay round
		scale := math.Min(float64(width)/(rangeX*1.2), float64(height)/(rangeY*1.2))
		rs := math.Min(scale, maxRadiusScale)
		cx, cy := (minX+maxX)/2, (minY+maxY)/2

		for _, b := range bodies {
			x := float64(width)/2 + (b.Position.X-cx)*scale
			y := float64(height)/2 + (b.Position.Y-cy)*scale
			color := html.EscapeString(b.Color)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="0.25"/>
<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, x, y, viz.HaloRadius(b.Mass, rs), color, x, y, viz.CoreRadius(b.Mass, rs), color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, html.EscapeString(strokeColor)))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
