package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpot/internal/iostore"
	"github.com/gnames/gnpot/internal/iotesting"
	"github.com/gnames/gnpot/pkg/config"
	"github.com/gnames/gnpot/pkg/errcode"
	"github.com/gnames/gnpot/pkg/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alCuJSON = `{"potential-LAMMPS": {
  "key": "k-alcu", "id": "demo-alcu",
  "potential": {"id": "demo", "doi": "10.1000/demo"},
  "atom": [{"element": "Al"}, {"element": "Cu"}],
  "pair_style": {"type": "eam/alloy"},
  "pair_coeff": {"term": [{"file": "AlCu.eam.alloy"}, {"symbols": true}]}
}}`

const ljSpec = `family: pair
id: demo-lj
key: k-lj
pair_style: lj/cut
pair_style_terms: [10]
atoms:
  - {element: Ar}
interactions:
  - {symbols: [Ar, Ar], terms: [0.0104, 3.4]}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return iotesting.NewStore(t, map[string]string{
		"demo-alcu.json":           alCuJSON,
		"demo-alcu/AlCu.eam.alloy": "eam data",
	})
}

func errCode(t *testing.T, err error) int {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "%v", err)
	return int(gnErr.Code)
}

func TestRenderRecord(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	st := iostore.New(c)

	out, err := renderRecord(ctx, st, c, "demo-alcu", renderInput{})
	require.NoError(t, err)
	assert.Equal(t, `print "Potential demo-alcu"
print "Publication(s) related to the potential:"
print "https://doi.org/10.1000/demo"
pair_style eam/alloy
pair_coeff * * AlCu.eam.alloy Al Cu
mass 1 26.9815385
mass 2 63.546

`, out)

	c.Update([]config.Option{
		config.OptRenderComments(false),
		config.OptRenderPathMode("by-id"),
	})
	out, err = renderRecord(ctx, st, c, "demo-alcu", renderInput{
		symbols: []string{"Cu"},
		masses:  map[string]string{"Cu": "63.5"},
	})
	require.NoError(t, err)
	assert.Equal(t, `pair_style eam/alloy
pair_coeff * * demo-alcu/AlCu.eam.alloy Cu
mass 1 63.5

`, out)
}

func TestRenderRecordData(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	c.Update([]config.Option{config.OptRenderComments(false)})
	st := iostore.New(c)

	out, err := renderRecord(ctx, st, c, "demo-alcu", renderInput{
		dataFile: "system.dat",
		pbc:      "ppm",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "units metal\natom_style atomic\n\nboundary p p m\nread_data system.dat\n\npair_style")

	out, err = renderRecord(ctx, st, c, "demo-alcu", renderInput{restartFile: "run.restart"})
	require.NoError(t, err)
	assert.Contains(t, out, "read_restart run.restart\n\npair_style eam/alloy\n")
}

func TestRenderRecordErrors(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	st := iostore.New(c)

	tests := []struct {
		msg  string
		id   string
		in   renderInput
		code gn.ErrorCode
	}{
		{"no record", "absent", renderInput{}, errcode.StoreRecordNotFoundError},
		{"bad symbol", "demo-alcu", renderInput{symbols: []string{"Zr"}}, errcode.UnknownSymbolError},
		{"bad mass", "demo-alcu", renderInput{masses: map[string]string{"Al": "heavy"}}, errcode.FlagValueError},
		{"negative mass", "demo-alcu", renderInput{masses: map[string]string{"Al": "-1"}}, errcode.FlagValueError},
		{"bad pbc", "demo-alcu", renderInput{dataFile: "a.dat", pbc: "pp"}, errcode.FlagValueError},
	}

	for _, v := range tests {
		_, err := renderRecord(ctx, st, c, v.id, v.in)
		require.Error(t, err, v.msg)
		assert.Equal(t, int(v.code), errCode(t, err), v.msg)
	}
}

func TestListRecords(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	st := iostore.New(c)

	var buf bytes.Buffer
	err := listRecords(ctx, st, potential.Filter{Elements: []string{"Cu"}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "demo-alcu\team/alloy\tAl,Cu\n", buf.String())

	buf.Reset()
	err = listRecords(ctx, st, potential.Filter{Elements: []string{"Ni"}}, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestBuildRecord(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	st := iostore.New(c)

	var buf bytes.Buffer
	err := buildRecord(ctx, []byte(ljSpec), nil, "yaml", &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "potential-LAMMPS:")
	assert.Contains(t, buf.String(), "id: demo-lj")

	buf.Reset()
	err = buildRecord(ctx, []byte(ljSpec), nil, "toml", &buf)
	assert.Equal(t, int(errcode.FlagValueError), errCode(t, err))

	err = buildRecord(ctx, []byte(ljSpec), st, "json", &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	rendered, err := renderRecord(ctx, st, c, "demo-lj", renderInput{})
	require.NoError(t, err)
	assert.Contains(t, rendered, "pair_style lj/cut 10\npair_coeff 1 1 0.0104 3.4\nmass 1 39.948\n")
}

func TestCopyFiles(t *testing.T) {
	ctx := context.Background()
	c := testConfig(t)
	dest := filepath.Join(t.TempDir(), "pots")

	require.NoError(t, copyFiles(ctx, c, "demo-alcu", dest, false))
	content, err := os.ReadFile(filepath.Join(dest, "AlCu.eam.alloy"))
	require.NoError(t, err)
	assert.Equal(t, "eam data", string(content))

	err = copyFiles(ctx, c, "absent", dest, false)
	assert.Equal(t, int(errcode.StoreRecordNotFoundError), errCode(t, err))
}

// TestRenderCmd_EndToEnd runs bootstrap and render with a temporary home.
func TestRenderCmd_EndToEnd(t *testing.T) {
	home := iotesting.SetupTempHome(t)
	c := testConfig(t)
	t.Setenv("GNPOT_STORE_DIR", c.StoreDir())
	t.Setenv("GNPOT_RENDER_PATH_MODE", "by-id")

	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"render", "demo-alcu", "--comments=false", "--symbols", "Al", "--mass", "Al=27",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, `pair_style eam/alloy
pair_coeff * * demo-alcu/AlCu.eam.alloy Al
mass 1 27

`, buf.String())

	_, err := os.Stat(config.ConfigFilePath(home))
	assert.NoError(t, err, "bootstrap should create config.yaml")
}

func TestInitConfig_BadFile(t *testing.T) {
	home := iotesting.SetupTempHome(t)
	path := config.ConfigFilePath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed\n"), 0644))

	_, err := initConfig(home)
	require.Error(t, err)
	assert.Equal(t, int(errcode.ReadFileError), errCode(t, err))

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, []any{path}, gnErr.Vars)
}

func TestParseMasses(t *testing.T) {
	res, err := parseMasses(map[string]string{"Al": "26.98", " Cu ": " 63.5"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Al": 26.98, "Cu": 63.5}, res)

	res, err = parseMasses(nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}
