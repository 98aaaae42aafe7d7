package readability

import (
	"fmt"
	"math"
)

// GradeBand assigns Grades to the truncated scores in [Min, Max).
type GradeBand struct {
	Min    int   `json:"min" yaml:"min"`
	Max    int   `json:"max" yaml:"max"`
	Grades []int `json:"grades" yaml:"grades"`
}

// GradeScale is an ordered list of non-overlapping bands.
type GradeScale []GradeBand

// Validate checks that every band is non-empty, has grades and that bands do
// not overlap.
func (g GradeScale) Validate() error {
	for i, b := range g {
		if b.Min >= b.Max {
			return fmt.Errorf("grade band %d: min %d must be below max %d", i, b.Min, b.Max)
		}
		if len(b.Grades) == 0 {
			return fmt.Errorf("grade band %d: no grades", i)
		}
		for j := range i {
			if b.Min < g[j].Max && g[j].Min < b.Max {
				return fmt.Errorf("grade band %d overlaps band %d", i, j)
			}
		}
	}
	return nil
}

// Lookup truncates score toward zero and returns the grades of the band
// containing it.
func (g GradeScale) Lookup(score float64) ([]int, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, fmt.Errorf("%w: %v", ErrScoreOutOfRange, score)
	}
	s := int(math.Trunc(score))
	for _, b := range g {
		if s >= b.Min && s < b.Max {
			return append([]int(nil), b.Grades...), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrScoreOutOfRange, s)
}

var (
	fleschDoumaGrades = GradeScale{
		{Min: -5, Max: 30, Grades: []int{13}},
		{Min: 30, Max: 45, Grades: []int{11, 12}},
		{Min: 45, Max: 60, Grades: []int{9, 10}},
		{Min: 60, Max: 70, Grades: []int{7, 8}},
		{Min: 70, Max: 80, Grades: []int{6}},
		{Min: 80, Max: 90, Grades: []int{5}},
		{Min: 90, Max: 101, Grades: []int{4}},
		{Min: 101, Max: 130, Grades: []int{1, 2, 3}},
	}

	leesindexAGrades = GradeScale{
		{Min: -20, Max: 20, Grades: []int{13}},
		{Min: 20, Max: 35, Grades: []int{11, 12, 13}},
		{Min: 35, Max: 40, Grades: []int{10, 11, 12, 13}},
		{Min: 40, Max: 50, Grades: []int{10, 11}},
		{Min: 50, Max: 55, Grades: []int{8, 9, 10, 11}},
		{Min: 55, Max: 69, Grades: []int{8, 9, 10}},
		{Min: 69, Max: 74, Grades: []int{5, 6, 7, 8}},
		{Min: 74, Max: 79, Grades: []int{4, 5}},
		{Min: 79, Max: 84, Grades: []int{3, 4, 5}},
		{Min: 84, Max: 89, Grades: []int{3, 4}},
		{Min: 89, Max: 101, Grades: []int{2, 3}},
		{Min: 101, Max: 130, Grades: []int{1, 2}},
	}

	clibGrades = GradeScale{
		{Min: -25, Max: 8, Grades: []int{1}},
		{Min: 8, Max: 21, Grades: []int{2}},
		{Min: 21, Max: 36, Grades: []int{3}},
		{Min: 36, Max: 49, Grades: []int{4}},
		{Min: 49, Max: 62, Grades: []int{5}},
		{Min: 62, Max: 75, Grades: []int{6}},
		{Min: 75, Max: 88, Grades: []int{7}},
		{Min: 88, Max: 200, Grades: []int{8}},
	}

	ciltGrades = GradeScale{
		{Min: 45, Max: 59, Grades: []int{1}},
		{Min: 59, Max: 64, Grades: []int{2}},
		{Min: 64, Max: 68, Grades: []int{3}},
		{Min: 68, Max: 72, Grades: []int{4}},
		{Min: 72, Max: 75, Grades: []int{5}},
		{Min: 75, Max: 135, Grades: []int{6, 7, 8}},
	}
)
