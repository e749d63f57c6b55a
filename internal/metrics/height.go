package metrics

import "github.com/san-kum/storycards/internal/dynamo"

// MeanHeight tracks the mean vertical position of the particles.
type MeanHeight struct {
	name   string
	series []float64
}

func NewMeanHeight() *MeanHeight {
	return &MeanHeight{name: "mean_height"}
}

func (m *MeanHeight) Name() string { return m.name }

func (m *MeanHeight) Observe(x dynamo.State, u dynamo.Control, t float64) {
	n := particles(x)
	if n == 0 {
		return
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += x[stride*i+1]
	}
	m.series = append(m.series, sum/float64(n))
}

// Value is the mean height of the latest frame.
func (m *MeanHeight) Value() float64 {
	if len(m.series) == 0 {
		return 0
	}
	return m.series[len(m.series)-1]
}

// Series returns one sample per observed frame.
func (m *MeanHeight) Series() []float64 {
	return append([]float64(nil), m.series...)
}

func (m *MeanHeight) Reset() {
	m.series = nil
}
