package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBands(t *testing.T) {
	// weight normal range is 50-90
	tests := []struct {
		name  string
		value float64
		want  Status
	}{
		{"at min", 50, StatusGood},
		{"at max", 90, StatusGood},
		{"mid band", 70, StatusGood},
		{"warning low edge", 40, StatusWarning},   // exactly min*0.8
		{"warning high edge", 108, StatusWarning}, // exactly max*1.2
		{"just below warning band", 39.9, StatusCritical},
		{"just above warning band", 108.1, StatusCritical},
		{"far out", 200, StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(TypeWeight, tt.value))
		})
	}
}

func TestClassifyUnknownTypeIsGood(t *testing.T) {
	assert.Equal(t, StatusGood, Classify(Type("cholesterol"), 9999))
}

func TestClassifyTemperature(t *testing.T) {
	assert.Equal(t, StatusGood, Classify(TypeTemperature, 36.6))
	assert.Equal(t, StatusWarning, Classify(TypeTemperature, 38.5))
	assert.Equal(t, StatusCritical, Classify(TypeTemperature, 45))
}

func TestValidateValue(t *testing.T) {
	// weight plausible window is 25-180 (half min, double max)
	assert.NoError(t, ValidateValue(TypeWeight, 25))
	assert.NoError(t, ValidateValue(TypeWeight, 180))
	assert.Error(t, ValidateValue(TypeWeight, 24.9))
	assert.Error(t, ValidateValue(TypeWeight, 180.1))
}

func TestValidateValueUnknownTypeRejected(t *testing.T) {
	err := ValidateValue(Type("cholesterol"), 100)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric type")
}
