// SPDX-License-Identifier: MIT

package planning

// BaseModel returns the reference farm: land, labor, water and fertilizer
// shared by corn, soybean and wheat.
func BaseModel() Model {
	return Model{
		Name:      "base",
		Resources: []string{"land", "labor", "water", "fertilizer"},
		Crops:     []string{"corn", "soybean", "wheat"},
		A: [][]float64{
			{1, 1, 1},          // land (ha)
			{10, 8, 12},        // labor (h)
			{3000, 2500, 1500}, // water (m³)
			{150, 120, 100},    // fertilizer (kg)
		},
		B:            []float64{100, 900, 220000, 12000},
		Profit:       []float64{3000, 2800, 2000},
		RelPerturb:   DefaultRelPerturb,
		EqualityRows: DefaultEqualityRows,
	}
}

// WellConditioned returns the binding subsystem of BaseModel as a model of
// its own.
func WellConditioned() Model {
	base := BaseModel()

	return Model{
		Name:         "well-conditioned",
		Resources:    base.Resources[:3],
		Crops:        base.Crops,
		A:            base.A[:3],
		B:            base.B[:3],
		Profit:       base.Profit,
		RelPerturb:   DefaultRelPerturb,
		EqualityRows: 3,
	}
}

// IllConditioned returns the collinear reference system: the second and
// third rows are nearly twice and three times the first, and the third is
// exactly the sum of the other two.
func IllConditioned() Model {
	return Model{
		Name:      "ill-conditioned",
		Resources: []string{"R1", "R2", "R3"},
		Crops:     []string{"C1", "C2", "C3"},
		A: [][]float64{
			{1, 1, 1},
			{2.01, 2, 1.99},
			{3.01, 3, 2.99},
		},
		B:            []float64{100, 200, 300},
		Profit:       []float64{1, 1, 1},
		RelPerturb:   DefaultRelPerturb,
		EqualityRows: 3,
	}
}
