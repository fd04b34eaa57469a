package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingAverageSeedsOnFirstUpdate(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)
	assert.Equal(t, 2.0, ma.Update(2))
	assert.Equal(t, 2.0, ma.Estimate)
}

func TestMovingAverageWindow(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)
	ma.Update(0)
	for range 4 {
		ma.Update(1)
	}
	assert.InDelta(t, 1, ma.Estimate, 1e-12)

	ma.Update(5)
	assert.InDelta(t, 2, ma.Estimate, 1e-12)
}

func TestMovingAverageReset(t *testing.T) {
	var ma MovingAverage
	ma.Init(4)
	ma.Update(10)
	ma.Update(10)
	ma.Reset()
	assert.Equal(t, 3.0, ma.Update(3))
}
