package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultNeighbors matches the k the bundled model is trained with.
const DefaultNeighbors = 5

// Classifier is a k-nearest-neighbours classifier. Fitting stores the
// training set; prediction is a majority vote among the K nearest training
// rows by Euclidean distance. Fields are exported for gob encoding.
type Classifier struct {
	Samples [][]float64
	Labels  []int
	K       int
}

// NewClassifier fits a classifier to the given training rows.
func NewClassifier(samples [][]float64, labels []int, k int) (*Classifier, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("got %d samples but %d labels", len(samples), len(labels))
	}
	if k < 1 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	width := len(samples[0])
	for i, row := range samples {
		if len(row) != width {
			return nil, fmt.Errorf("sample %d: expected %d features, got %d", i, width, len(row))
		}
	}
	for i, label := range labels {
		if label < 0 {
			return nil, fmt.Errorf("sample %d: negative label %d", i, label)
		}
	}

	return &Classifier{Samples: samples, Labels: labels, K: k}, nil
}

// InputWidth returns the number of features each row must have.
func (c *Classifier) InputWidth() int {
	if len(c.Samples) == 0 {
		return 0
	}
	return len(c.Samples[0])
}

// Predict returns the class label for each feature row.
func (c *Classifier) Predict(rows [][]float64) ([]int, error) {
	if len(c.Samples) == 0 {
		return nil, fmt.Errorf("classifier has no training samples")
	}

	width := c.InputWidth()
	labels := make([]int, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: expected %d features, got %d", i, width, len(row))
		}
		labels[i] = c.predictRow(row)
	}
	return labels, nil
}

type neighbor struct {
	dist  float64
	label int
}

func (c *Classifier) predictRow(row []float64) int {
	neighbors := make([]neighbor, len(c.Samples))
	for i, sample := range c.Samples {
		neighbors[i] = neighbor{
			dist:  floats.Distance(row, sample, 2),
			label: c.Labels[i],
		}
	}

	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].dist < neighbors[j].dist })

	k := c.K
	if k > len(neighbors) {
		k = len(neighbors)
	}

	votes := make(map[int]int, k)
	for _, n := range neighbors[:k] {
		votes[n.label]++
	}

	// Ties go to the lowest class index.
	best, bestVotes := -1, 0
	for label, count := range votes {
		if count > bestVotes || (count == bestVotes && label < best) {
			best, bestVotes = label, count
		}
	}
	return best
}
