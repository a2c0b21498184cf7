package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/activ/internal/tensor"
)

var errNotRectangular = errors.New("samples have different widths")

// readRows decodes a JSON [][]number batch from path, or stdin when path is "-".
func readRows(path string, stdin io.Reader) ([][]float64, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if !tensor.FromRows[float64](rows).Rectangular() {
		return nil, fmt.Errorf("%s: %w", path, errNotRectangular)
	}
	return rows, nil
}

func writeRows(w io.Writer, rows [][]float64) error {
	if rows == nil {
		rows = [][]float64{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}
