package app

import (
	"strconv"

	"perlin-toy/internal/core"
)

// settingsSnapshot formats the live viewer settings for the overlay.
func settingsSnapshot(octaves int, persistence float64, scale int, offset float64) core.Snapshot {
	return core.Snapshot{Params: []core.Parameter{
		{Label: "Octaves", Value: strconv.Itoa(octaves)},
		{Label: "Persistence", Value: strconv.FormatFloat(persistence, 'f', 2, 64)},
		{Label: "Horz. scale", Value: strconv.Itoa(scale)},
		{Label: "Pan offset", Value: strconv.FormatFloat(offset, 'f', 1, 64)},
	}}
}
