package builder_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/pkg/builder"
	"github.com/gnames/gnpot/pkg/errcode"
	"github.com/gnames/gnpot/pkg/lammps"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func alCuPair(t *testing.T) *builder.Pair {
	b := builder.NewPair("lj/cut")
	b.ID = "2024--Doe-J--Al-Cu--LAMMPS--ipr1"
	b.AddAtom("", "Al", potential.Float(26.9815385))
	b.AddAtom("", "Cu", potential.Float(63.546))
	return b
}

func TestPair(t *testing.T) {
	assert := assert.New(t)
	b := alCuPair(t)
	assert.Equal(builder.FamilyPair, b.Family())
	assert.Contains(b.PairStyles(), "lj/cut")

	_, err := b.Build()
	assert.Equal(errcode.IncompleteBuildError, errCode(t, err))

	require.NoError(t, b.SetInteraction([]string{"Al", "Al"}, potential.Params(1.23, 3.412)))
	require.NoError(t, b.SetInteraction([]string{"Cu", "Al"}, potential.Params(9, 9)))
	require.NoError(t, b.SetInteraction([]string{"Cu", "Cu"}, potential.Params(5.324, 3.14)))
	require.NoError(t, b.SetInteraction([]string{"Al", "Cu"}, potential.Params(1.124, 2.124)))
	assert.Equal(3, b.Interactions())

	rec, err := b.Build()
	require.NoError(t, err)
	assert.Equal(b.Key, rec.Key())
	assert.Equal("2024--Doe-J--Al-Cu", rec.Potential().ID)
	assert.Equal(gnuuid.New("2024--Doe-J--Al-Cu").String(), rec.Potential().Key)
	assert.Equal("metal", rec.Units())

	lines, err := lammps.Render(rec, lammps.WithComments(false))
	require.NoError(t, err)
	assert.Equal([]string{
		"pair_style lj/cut",
		"pair_coeff 1 1 1.23 3.412",
		"pair_coeff 1 2 1.124 2.124",
		"pair_coeff 2 2 5.324 3.14",
		"mass 1 26.9815385",
		"mass 2 63.546",
	}, lines)

	rec2, err := b.Build()
	require.NoError(t, err)
	assert.Equal(rec, rec2)
}

func TestPairErrors(t *testing.T) {
	b := alCuPair(t)
	err := b.SetInteraction([]string{"Al", "Ni"}, potential.Params(1))
	assert.Equal(t, errcode.BuildInputError, errCode(t, err))

	err = b.SetInteraction([]string{"Al"}, potential.Params(1))
	assert.Equal(t, errcode.BuildInputError, errCode(t, err))

	err = b.SetInteraction([]string{"Al", "Al"}, nil)
	assert.Equal(t, errcode.BuildInputError, errCode(t, err))

	err = b.SetInteraction([]string{"Al", "Al"}, []potential.Term{potential.Symbols()})
	assert.Equal(t, errcode.UnsupportedPairStyleError, errCode(t, err))

	hybrid := builder.NewPair("hybrid/overlay")
	hybrid.ID = "h"
	hybrid.AddAtom("", "Al", nil)
	require.NoError(t, hybrid.SetInteraction(nil, potential.Params(1)))
	_, err = hybrid.Build()
	assert.Equal(t, errcode.UnsupportedPairStyleError, errCode(t, err))
}

func TestPairGlobal(t *testing.T) {
	b := alCuPair(t)
	require.NoError(t, b.SetInteraction(nil, potential.Params(1, 2)))
	rec, err := b.Build()
	require.NoError(t, err)
	lines, err := lammps.Render(rec, lammps.WithComments(false))
	require.NoError(t, err)
	assert.Equal(t, "pair_coeff * * 1 2", lines[1])

	require.NoError(t, b.SetInteraction([]string{"Al", "Al"}, potential.Params(1, 2)))
	assert.Equal(t, 1, b.Interactions())
	_, err = b.Build()
	assert.Equal(t, errcode.IncompleteBuildError, errCode(t, err))
}

func TestParamFile(t *testing.T) {
	b := builder.NewParamFile("eam/alloy")
	b.ID = "demo1"
	b.AddAtom("", "Al", potential.Float(26.9815385))

	for _, v := range b.Requirements() {
		if v.Name == "file" {
			assert.False(t, v.Satisfied)
		}
	}
	_, err := b.Build()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.IncompleteBuildError, gnErr.Code)
	assert.Equal(t, "file", gnErr.Vars[1])

	b.File = "Al.eam.alloy"
	rec, err := b.Build()
	require.NoError(t, err)
	lines, err := lammps.Render(rec, lammps.WithComments(false))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pair_style eam/alloy",
		"pair_coeff * * Al.eam.alloy Al",
		"mass 1 26.9815385",
	}, lines)
	assert.Equal(t, []string{"Al.eam.alloy"}, rec.Files())
}

func TestEAM(t *testing.T) {
	b := builder.NewEAM()
	b.ID = "eam"
	b.AddAtom("", "Ni", nil)
	b.AddAtom("", "Cu", nil)
	b.Files = []string{"Ni_u3.eam"}
	_, err := b.Build()
	assert.Equal(t, errcode.IncompleteBuildError, errCode(t, err))

	b.Files = append(b.Files, "Cu_u3.eam")
	rec, err := b.Build()
	require.NoError(t, err)
	lines, err := lammps.Render(rec, lammps.WithComments(false), lammps.WithSymbols("Cu"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pair_style eam",
		"pair_coeff 1 1 Cu_u3.eam",
		"mass 1 63.546",
	}, lines)
}

func TestLibParam(t *testing.T) {
	b := builder.NewLibParam("")
	b.ID = "meam"
	b.AddAtom("", "C", nil)
	b.AddAtom("", "Si", nil)
	b.LibFile = "library.meam"

	rec, err := b.Build()
	require.NoError(t, err)
	lines, err := lammps.Render(rec, lammps.WithComments(false), lammps.WithSymbols("Si"))
	require.NoError(t, err)
	assert.Equal(t, "pair_style meam", lines[0])
	assert.Equal(t, "pair_coeff * * library.meam C Si NULL Si", lines[1])

	b.ParamFile = "CSi.meam"
	rec, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"library.meam", "CSi.meam"}, rec.Files())
}

func TestEIM(t *testing.T) {
	b := builder.NewEIM()
	b.ID = "eim"
	b.AddAtom("", "Na", nil)
	b.AddAtom("", "Cl", nil)
	b.ParamFile = "ffield.eim"

	rec, err := b.Build()
	require.NoError(t, err)
	assert.True(t, rec.AllSymbols())
	lines, err := lammps.Render(rec, lammps.WithComments(false), lammps.WithSymbols("Na"))
	require.NoError(t, err)
	assert.Equal(t, "pair_coeff * * Na Cl ffield.eim Na Cl", lines[1])
	assert.Len(t, lines, 4)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []builder.Family{"eam", "eim", "libparam", "pair", "paramfile"},
		builder.Families())

	tests := []struct {
		style  string
		family builder.Family
	}{
		{"lj/cut", builder.FamilyPair},
		{"eam/alloy", builder.FamilyParamFile},
		{"eam/alloy/gpu", builder.FamilyParamFile},
		{"eam", builder.FamilyEAM},
		{"eam/opt", builder.FamilyEAM},
		{"meam/c", builder.FamilyLibParam},
		{"eim", builder.FamilyEIM},
	}
	for _, v := range tests {
		f, err := builder.ForPairStyle(v.style)
		require.NoError(t, err, v.style)
		assert.Equal(t, v.family, f, v.style)

		b, err := builder.New(f)
		require.NoError(t, err)
		assert.Equal(t, f, b.Family())
	}

	for _, v := range []string{"hybrid/overlay", "kim", "unknown"} {
		_, err := builder.ForPairStyle(v)
		assert.Equal(t, errcode.UnsupportedPairStyleError, errCode(t, err), v)
	}

	_, err := builder.New("tabulated")
	assert.Equal(t, errcode.BuildSpecError, errCode(t, err))
}

func TestEmptyKey(t *testing.T) {
	b := builder.NewParamFile("sw")
	b.Key = ""
	b.ID = "sw-si"
	b.AddAtom("", "Si", nil)
	b.File = "Si.sw"
	rec, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, gnuuid.New("sw-si").String(), rec.Key())
	assert.Empty(t, rec.Potential().Key)
}
