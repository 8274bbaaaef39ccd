package glm

import (
	"log/slog"
	"strconv"
)

// LogValue renders the matrix as a group of its four rows, matching
// what String prints.
func (lhs Mat4[T]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 4)
	for r := range attrs {
		row := lhs.Row(r)
		attrs[r] = slog.Any("row"+strconv.Itoa(r), []float64{
			float64(row[0]), float64(row[1]), float64(row[2]), float64(row[3]),
		})
	}

	return slog.GroupValue(attrs...)
}
