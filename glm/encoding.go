package glm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"gopkg.in/yaml.v3"
)

func bitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func formatFloat[T Float](value T) string {
	return strconv.FormatFloat(float64(value), 'g', -1, bitSize[T]())
}

func (lhs Mat4[T]) String() string {
	var sb strings.Builder

	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}

		row := lhs.Row(r)
		for c, value := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(formatFloat(value))
		}
	}

	return sb.String()
}

// MarshalText writes the 16 elements in storage order, separated by spaces.
func (lhs Mat4[T]) MarshalText() ([]byte, error) {
	values := make([]string, len(lhs))
	for idx, value := range lhs {
		values[idx] = formatFloat(value)
	}

	return []byte(strings.Join(values, " ")), nil
}

func (m *Mat4[T]) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != len(m) {
		return fmt.Errorf("matrix needs %d elements, got %d", len(m), len(fields))
	}

	var result Mat4[T]
	for idx, field := range fields {
		value, err := strconv.ParseFloat(field, bitSize[T]())
		if err != nil {
			return fmt.Errorf("parse element %d: %w", idx, err)
		}

		result[idx] = T(value)
	}

	*m = result
	return nil
}

// MarshalYAML encodes the matrix as four rows of four numbers, so it reads
// the way it is written down on paper.
func (lhs Mat4[T]) MarshalYAML() (any, error) {
	rows := &yaml.Node{Kind: yaml.SequenceNode}

	for r := 0; r < 4; r++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

		for _, value := range lhs.Row(r) {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: formatYAMLFloat(value),
			})
		}

		rows.Content = append(rows.Content, row)
	}

	return rows, nil
}

func (m *Mat4[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("matrix must be a sequence of rows")
	}

	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return fmt.Errorf("decode matrix: %w", err)
	}

	if len(rows) != 4 {
		return fmt.Errorf("matrix needs 4 rows, got %d", len(rows))
	}

	var result Mat4[T]
	for r, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("matrix row %d needs 4 elements, got %d", r, len(row))
		}

		for c, element := range row {
			result[4*c+r] = element
		}
	}

	*m = result
	return nil
}

func formatYAMLFloat[T Float](value T) string {
	v := float64(value)

	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	default:
		return formatFloat(value)
	}
}
