// Package gpa computes credit-weighted grade-point averages and their remarks.
package gpa

import (
	"math/big"
	"strings"

	"github.com/jonathan/gpa-calculator/internal/grades"
	"github.com/jonathan/gpa-calculator/internal/types"
)

// PointSource looks up the point value of a grade label.
type PointSource interface {
	PointsFor(label string) int
}

// Evaluator turns subject entries into a Result. It holds no mutable state and is safe to reuse.
type Evaluator struct {
	scale   PointSource
	remarks Remarks
}

// New creates an Evaluator backed by scale and remarks.
func New(scale PointSource, remarks Remarks) *Evaluator {
	return &Evaluator{scale: scale, remarks: remarks}
}

// Default returns an Evaluator using the default grade scale and remark catalog.
func Default() *Evaluator {
	return New(grades.Default, DefaultRemarks())
}

// Compute validates the whole entry list, then returns the weighted GPA rounded to two decimals.
// An empty list or any row with empty credits or grade yields a *ValidationError and no result.
func (ev *Evaluator) Compute(entries []types.SubjectEntry) (*types.Result, error) {
	if err := checkComplete(entries); err != nil {
		return nil, err
	}

	weighted := new(big.Rat)
	total := new(big.Rat)
	for _, e := range entries {
		credits := coerceCredits(e.Credits)
		points := big.NewRat(int64(ev.scale.PointsFor(e.Grade)), 1)

		weighted.Add(weighted, new(big.Rat).Mul(points, credits))
		total.Add(total, credits)
	}

	cents := new(big.Int)
	if total.Sign() > 0 {
		cents = roundCents(new(big.Rat).Quo(weighted, total))
	}

	gpa, _ := new(big.Rat).SetFrac(cents, big.NewInt(100)).Float64()
	totalCredits, _ := total.Float64()
	tier := Classify(gpa)
	remark := ev.remarks.For(tier)

	return &types.Result{
		GPA:          gpa,
		Display:      formatCents(cents),
		TotalCredits: totalCredits,
		Tier:         tier,
		Remark:       remark.Text,
		Media:        remark.Media,
		Celebrate:    gpa > 9,
	}, nil
}

// checkComplete inspects every entry before any arithmetic happens.
func checkComplete(entries []types.SubjectEntry) error {
	if len(entries) == 0 {
		return &ValidationError{Message: ErrIncompleteInput.Error()}
	}

	var rows []int
	for i, e := range entries {
		if strings.TrimSpace(e.Credits) == "" || strings.TrimSpace(e.Grade) == "" {
			rows = append(rows, i)
		}
	}
	if len(rows) > 0 {
		return &ValidationError{Message: ErrIncompleteInput.Error(), Rows: rows}
	}
	return nil
}

// Breakdown is the per-subject contribution used by the presentation layer.
type Breakdown struct {
	Credits  float64
	Grade    string
	Points   int
	Weighted float64
}

// Contributions reports how each entry was weighted, applying the same coercions as Compute.
func (ev *Evaluator) Contributions(entries []types.SubjectEntry) []Breakdown {
	out := make([]Breakdown, len(entries))
	for i, e := range entries {
		credits, _ := coerceCredits(e.Credits).Float64()
		points := ev.scale.PointsFor(e.Grade)
		out[i] = Breakdown{
			Credits:  credits,
			Grade:    e.Grade,
			Points:   points,
			Weighted: credits * float64(points),
		}
	}
	return out
}
