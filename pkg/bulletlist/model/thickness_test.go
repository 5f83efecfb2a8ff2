package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThicknessSums(t *testing.T) {
	th := Thickness{Left: 1, Top: 2, Right: 3.5, Bottom: 4}
	assert.Equal(t, 4.5, th.Horizontal())
	assert.Equal(t, 6.0, th.Vertical())

	assert.Equal(t, 6.0, Uniform(3).Horizontal())
	assert.Zero(t, Thickness{}.Vertical())
}
