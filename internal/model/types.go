package model

// Metadata describes the trained artifact, stored as JSON next to it.
type Metadata struct {
	InputWidth int      `json:"input_width"`
	Classes    []string `json:"classes"`
	Neighbors  int      `json:"neighbors"`
}

// PredictionRequest carries feature rows to classify. Each inner slice is
// one observation: sepal length, sepal width, petal length, petal width.
type PredictionRequest struct {
	X [][]float64 `json:"X"`
}
