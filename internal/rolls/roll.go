package rolls

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
)

// Roll is one remaining roll: its width, an auxiliary plan column the
// suggestions never read, and the leftover quantity.
type Roll struct {
	Width    float64
	Aux      float64
	Quantity float64
}

// Parse collects the valid roll tuples from a decoded JSON value.
// Anything that is not an array of tuples yields nil. Tuples shorter than
// three fields, with non-numeric fields, or with a quantity that is not
// positive are skipped.
func Parse(raw any) []Roll {
	switch v := raw.(type) {
	case []any:
		var out []Roll
		for _, item := range v {
			if r, ok := parseTuple(item); ok {
				out = append(out, r)
			}
		}
		return out

	case [][]float64:
		var out []Roll
		for _, t := range v {
			if len(t) < 3 || !(t[2] > 0) {
				continue
			}
			out = append(out, Roll{Width: t[0], Aux: t[1], Quantity: t[2]})
		}
		return out
	}
	return nil
}

func parseTuple(item any) (Roll, bool) {
	fields, ok := item.([]any)
	if !ok || len(fields) < 3 {
		return Roll{}, false
	}

	var nums [3]float64
	for i := range nums {
		n, ok := number(fields[i])
		if !ok {
			return Roll{}, false
		}
		nums[i] = n
	}
	if !(nums[2] > 0) {
		return Roll{}, false
	}

	return Roll{Width: nums[0], Aux: nums[1], Quantity: nums[2]}, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseJSON decodes either a bare array of roll tuples or an object with
// remainingRolls and maxWidth. It returns the parsed rolls and the maxWidth
// found in the document (0 when absent). Only undecodable JSON is an error.
func ParseJSON(data []byte) ([]Roll, float64, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("decode rolls: %w", err)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, 0, errors.New("decode rolls: trailing data after document")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return Parse(doc), 0, nil
	}

	maxWidth, _ := number(obj["maxWidth"])
	return Parse(obj["remainingRolls"]), maxWidth, nil
}

// Columns of a trimming plan matrix row.
const (
	colWidth     = 0
	colAux       = 4
	colRemaining = 5
)

// FromFinalTrim derives the remaining rolls from a final trimming plan
// matrix: rows that still have quantity left, ordered by width, truncated to
// whole units. A fractional leftover below one is listed with quantity 0;
// Compute never pairs it.
func FromFinalTrim(matrix [][]float64) []Roll {
	var rows [][]float64
	for _, row := range matrix {
		if len(row) <= colRemaining || !(row[colRemaining] > 0) {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][colWidth] < rows[j][colWidth]
	})

	out := make([]Roll, 0, len(rows))
	for _, row := range rows {
		out = append(out, Roll{
			Width:    math.Trunc(row[colWidth]),
			Aux:      math.Trunc(row[colAux]),
			Quantity: math.Trunc(row[colRemaining]),
		})
	}
	return out
}
