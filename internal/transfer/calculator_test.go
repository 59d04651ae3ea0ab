package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"aeroxfer/internal/domain"
)

func testProject() *domain.Project {
	return &domain.Project{
		Sources: []domain.Part{
			{Name: "Wing", RefPoint: [3]float64{1, 0, 0}, RefArea: 1, RefLength: 1},
			{Name: "Same", RefPoint: [3]float64{0, 0, 0}, RefArea: 1, RefLength: 1},
			{Name: "Bad", RefPoint: [3]float64{0, 0, 0}, RefArea: 0, RefLength: 1},
		},
		Targets: []domain.Part{
			{Name: "Body", RefPoint: [3]float64{0, 0, 0}, RefArea: 1, RefLength: 1},
			{Name: "Same", RefPoint: [3]float64{0, 0, 0}, RefArea: 1, RefLength: 1},
			{Name: "Big", RefPoint: [3]float64{0, 0, 0}, RefArea: 2, RefLength: 2},
		},
	}
}

func TestNewCalculator_UnknownPart(t *testing.T) {
	_, err := NewCalculator(testProject(), "Nope", "Body")
	assert.ErrorIs(t, err, domain.ErrUnknownPart)

	_, err = NewCalculator(testProject(), "Wing", "Nope")
	assert.ErrorIs(t, err, domain.ErrUnknownPart)
}

func TestNewCalculator_InvalidReference(t *testing.T) {
	_, err := NewCalculator(testProject(), "Bad", "Body")
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestProcess_IdentityWhenSameReference(t *testing.T) {
	calc, err := NewCalculator(testProject(), "Same", "Same")
	require.NoError(t, err)

	forces := mat.NewDense(1, 3, []float64{1, 2, 3})
	moments := mat.NewDense(1, 3, []float64{4, 5, 6})
	res, err := calc.Process(forces, moments)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		assert.InDelta(t, forces.At(0, k), res.CoeffForce.At(0, k), 1e-12)
		assert.InDelta(t, moments.At(0, k), res.CoeffMoment.At(0, k), 1e-12)
	}
}

func TestProcess_MomentShift(t *testing.T) {
	// Source reference point at (1,0,0), target at origin, unit references.
	// A pure z-force of 1 picks up a -1 pitching moment about y.
	calc, err := NewCalculator(testProject(), "Wing", "Body")
	require.NoError(t, err)

	forces := mat.NewDense(1, 3, []float64{0, 0, 1})
	moments := mat.NewDense(1, 3, []float64{0, 0, 0})
	res, err := calc.Process(forces, moments)
	require.NoError(t, err)

	assert.InDelta(t, 0, res.CoeffMoment.At(0, 0), 1e-12)
	assert.InDelta(t, -1, res.CoeffMoment.At(0, 1), 1e-12)
	assert.InDelta(t, 0, res.CoeffMoment.At(0, 2), 1e-12)
	assert.InDelta(t, 1, res.CoeffForce.At(0, 2), 1e-12)
}

func TestProcess_ReferenceRescaling(t *testing.T) {
	// Same reference point, but the target has twice the area and length:
	// force coefficients halve, moment coefficients quarter.
	calc, err := NewCalculator(testProject(), "Same", "Big")
	require.NoError(t, err)

	forces := mat.NewDense(1, 3, []float64{1, 1, 1})
	moments := mat.NewDense(1, 3, []float64{1, 1, 1})
	res, err := calc.Process(forces, moments)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.CoeffForce.At(0, 0), 1e-12)
	assert.InDelta(t, 0.25, res.CoeffMoment.At(0, 0), 1e-12)
}

func TestProcess_DimensionErrors(t *testing.T) {
	calc, err := NewCalculator(testProject(), "Same", "Same")
	require.NoError(t, err)

	_, err = calc.Process(mat.NewDense(1, 2, nil), mat.NewDense(1, 3, nil))
	assert.Error(t, err)

	_, err = calc.Process(mat.NewDense(2, 3, nil), mat.NewDense(1, 3, nil))
	assert.Error(t, err)
}
