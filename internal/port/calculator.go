package port

import (
	"gonum.org/v1/gonum/mat"

	"aeroxfer/internal/domain"
)

// TransferResult holds the four N×3 matrices produced by one transfer:
// the dimensional force/moment vectors in the target frame plus their
// non-dimensional coefficient forms.
type TransferResult struct {
	ForceTransformed  *mat.Dense
	MomentTransformed *mat.Dense
	CoeffForce        *mat.Dense
	CoeffMoment       *mat.Dense
}

// Calculator re-references N×3 force and moment coefficient matrices from a
// source part's frame to a target part's frame. The block processor consumes
// it as an opaque collaborator.
type Calculator interface {
	Process(forces, moments *mat.Dense) (*TransferResult, error)
}

// CalculatorFactory builds a Calculator for one source/target pair from the
// project configuration.
type CalculatorFactory func(project *domain.Project, sourcePart, targetPart string) (Calculator, error)
