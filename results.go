package decomposer

import "github.com/aouyang1/go-decomposer/decompose"

// Results is everything produced by a single run of the pipeline
type Results struct {
	Decomposition *decompose.Result `json:"decomposition"`
	Summary       *Summary          `json:"summary"`
}
