// Package dataset bundles the iris measurements the classifier is trained on.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
)

//go:embed iris.csv
var irisCSV []byte

// ClassNames are the iris species, indexed by class label.
var ClassNames = []string{"setosa", "versicolor", "virginica"}

// Set holds feature rows and their class labels.
type Set struct {
	Samples [][]float64
	Labels  []int
}

// Iris parses the embedded iris data: 150 rows of four measurements
// (sepal length/width, petal length/width) and a class label.
func Iris() (*Set, error) {
	records, err := csv.NewReader(bytes.NewReader(irisCSV)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse iris data: %w", err)
	}

	set := &Set{
		Samples: make([][]float64, 0, len(records)),
		Labels:  make([]int, 0, len(records)),
	}

	for i, record := range records {
		if len(record) != 5 {
			return nil, fmt.Errorf("row %d: expected 5 columns, got %d", i, len(record))
		}

		row := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i, j, err)
			}
			row[j] = v
		}

		label, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad label: %w", i, err)
		}
		if label < 0 || label >= len(ClassNames) {
			return nil, fmt.Errorf("row %d: label %d out of range", i, label)
		}

		set.Samples = append(set.Samples, row)
		set.Labels = append(set.Labels, label)
	}

	return set, nil
}
