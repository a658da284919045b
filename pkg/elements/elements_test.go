package elements_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/elements"
	"github.com/gnames/gnpot/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMass(t *testing.T) {
	tests := []struct {
		msg  string
		tag  string
		mass float64
	}{
		{"aluminum", "Al", 26.9815385},
		{"copper", "Cu", 63.546},
		{"interval weight", "H", 1.007975},
		{"deuterium", "D", 2.01410177812},
		{"tritium isotope tag", "H-3", 3.0160492779},
		{"no standard weight", "Tc", 96.9063667},
		{"stable isotope tag", "Pu-244", 244.0642053},
		{"systematic name", "Uuo", 294.21392},
		{"spaces", " Fe ", 55.845},
	}

	for _, v := range tests {
		res, err := elements.Mass(v.tag)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.mass, res, v.msg)
	}
}

func TestMassUnknown(t *testing.T) {
	tags := []string{"Xx", "", "Al-27", "Fe-x", "al"}
	for _, v := range tags {
		_, err := elements.Mass(v)
		require.Error(t, err, v)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v)
		assert.Equal(t, errcode.UnknownElementError, gnErr.Code, v)
		require.Len(t, gnErr.Vars, 1)
	}
}

func TestLookup(t *testing.T) {
	el, ok := elements.Lookup("Og")
	require.True(t, ok)
	assert.Equal(t, 118, el.Number)
	assert.Equal(t, 294, el.StableIsotope)

	el, ok = elements.Lookup("Uub")
	require.True(t, ok)
	assert.Equal(t, "Cn", el.Symbol)

	_, ok = elements.Lookup("Qq")
	assert.False(t, ok)
}

func TestIsElement(t *testing.T) {
	assert.True(t, elements.IsElement("Ni"))
	assert.True(t, elements.IsElement("D"))
	assert.False(t, elements.IsElement("Ni1"))
	assert.False(t, elements.IsElement("Xx"))
}
