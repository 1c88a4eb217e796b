package table

// MinDistance is the threshold at or below which a grid sample is
// skipped instead of evaluated. Skipped samples leave no substitute
// row; the grid index still advances.
const MinDistance = 1e-10

// Grid describes the distance sweep for one tabulation pass.
type Grid struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// Steps returns floor((End-Start)/Step). A sweep emits Steps()+1
// samples at Start + k*Step, minus any skipped by MinDistance.
func (g Grid) Steps() int {
	return int((g.End - g.Start) / g.Step)
}

// At returns the k-th sample distance.
func (g Grid) At(k int) float64 {
	return g.Start + float64(k)*g.Step
}
