// Package transfer provides the default moment-reference transfer
// calculator. Coefficients are re-dimensionalized with the source part's
// reference quantities, moments are shifted to the target reference point,
// and the results are non-dimensionalized with the target's quantities.
package transfer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"aeroxfer/internal/domain"
	"aeroxfer/internal/port"
)

// Calculator implements port.Calculator for one source/target part pair.
type Calculator struct {
	source domain.Part
	target domain.Part
}

// NewCalculator builds a Calculator from the project configuration. It is a
// port.CalculatorFactory.
func NewCalculator(project *domain.Project, sourcePart, targetPart string) (port.Calculator, error) {
	src := project.SourceByName(sourcePart)
	if src == nil {
		return nil, fmt.Errorf("source part %q: %w", sourcePart, domain.ErrUnknownPart)
	}
	tgt := project.TargetByName(targetPart)
	if tgt == nil {
		return nil, fmt.Errorf("target part %q: %w", targetPart, domain.ErrUnknownPart)
	}
	for _, p := range []*domain.Part{src, tgt} {
		if p.RefArea <= 0 || p.RefLength <= 0 {
			return nil, fmt.Errorf("part %q: %w", p.Name, domain.ErrInvalidReference)
		}
	}
	return &Calculator{source: *src, target: *tgt}, nil
}

// Factory is NewCalculator typed as a port.CalculatorFactory.
var Factory port.CalculatorFactory = NewCalculator

// Process transfers N×3 coefficient matrices. Row i of forces holds
// (Cx, Cy, Cz) and row i of moments holds (CMx, CMy, CMz) about the source
// reference point.
func (c *Calculator) Process(forces, moments *mat.Dense) (*port.TransferResult, error) {
	fr, fc := forces.Dims()
	mr, mc := moments.Dims()
	if fc != 3 || mc != 3 {
		return nil, fmt.Errorf("expected N×3 matrices, got %dx%d forces and %dx%d moments", fr, fc, mr, mc)
	}
	if fr != mr {
		return nil, fmt.Errorf("force rows (%d) and moment rows (%d) differ", fr, mr)
	}

	// Moment arm from target reference point to source reference point.
	arm := [3]float64{
		c.source.RefPoint[0] - c.target.RefPoint[0],
		c.source.RefPoint[1] - c.target.RefPoint[1],
		c.source.RefPoint[2] - c.target.RefPoint[2],
	}

	sArea, sLen := c.source.RefArea, c.source.RefLength
	tArea, tLen := c.target.RefArea, c.target.RefLength

	forceT := mat.NewDense(fr, 3, nil)
	momentT := mat.NewDense(fr, 3, nil)
	coeffF := mat.NewDense(fr, 3, nil)
	coeffM := mat.NewDense(fr, 3, nil)

	for i := 0; i < fr; i++ {
		// Dimensional force and moment at unit dynamic pressure.
		f := [3]float64{
			sArea * forces.At(i, 0),
			sArea * forces.At(i, 1),
			sArea * forces.At(i, 2),
		}
		m := [3]float64{
			sArea * sLen * moments.At(i, 0),
			sArea * sLen * moments.At(i, 1),
			sArea * sLen * moments.At(i, 2),
		}

		// M_t = M_s + arm × F
		mt := [3]float64{
			m[0] + arm[1]*f[2] - arm[2]*f[1],
			m[1] + arm[2]*f[0] - arm[0]*f[2],
			m[2] + arm[0]*f[1] - arm[1]*f[0],
		}

		for k := 0; k < 3; k++ {
			forceT.Set(i, k, f[k])
			momentT.Set(i, k, mt[k])
			coeffF.Set(i, k, f[k]/tArea)
			coeffM.Set(i, k, mt[k]/(tArea*tLen))
		}
	}

	return &port.TransferResult{
		ForceTransformed:  forceT,
		MomentTransformed: momentT,
		CoeffForce:        coeffF,
		CoeffMoment:       coeffM,
	}, nil
}
