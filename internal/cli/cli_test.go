package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/internal/config"
	"github.com/oliverbestmann/bykegraph/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
viewport:
  size: [800, 600]
  domain: {x: [-10, 10], y: [-7.5, 7.5]}

nodes:
  - name: background
    shape: {type: rectangle, size: [20, 15]}

  - name: body
    offset: [2, 1]
    layer: 1
    shape: {type: circle, radius: 1.5}

  - parent: body
    offset: [1, 0]
    layer: 2
    shape: {type: point, radius: 0.25}
`

func writeScene(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))
	return path
}

// execute runs the root command with the given arguments and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	// keep the working directory free of a graphhit.yaml
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "graphhit version "+Version+"\n", out)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "graphhit hit tests pointers against 2D scene graphs.")
}

func TestQueryCmd_Text(t *testing.T) {
	scenePath := writeScene(t)

	// (2, 1) is at (480, 260) on the screen, (3, 1) at (520, 260)
	out, err := execute(t, "query", "--scene", scenePath, "--at", "480,260", "--at", "520, 260", "--at=-5,-5")
	require.NoError(t, err)

	expected := "" +
		"480,260:\n" +
		"  body\tlayer=1\tlocal=0,0\n" +
		"  background\tlayer=0\tlocal=2,1\n" +
		"520,260:\n" +
		"  #2\tlayer=2\tlocal=0,0\n" +
		"  body\tlayer=1\tlocal=1,0\n" +
		"  background\tlayer=0\tlocal=3,1\n" +
		"-5,-5: no hits\n"

	assert.Equal(t, expected, out)
}

func TestQueryCmd_Json(t *testing.T) {
	scenePath := writeScene(t)

	out, err := execute(t, "query", "--scene", scenePath, "--at", "480,260", "--at=-5,-5", "--format", "json", "--workers", "1")
	require.NoError(t, err)

	var results []queryResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, [2]float64{480, 260}, results[0].Pointer)
	require.Len(t, results[0].Hits, 2)
	assert.Equal(t, "body", results[0].Hits[0].Name)
	assert.Equal(t, 1, results[0].Hits[0].Node)
	assert.InDelta(t, 0, results[0].Hits[0].Local[0], 1e-9)

	assert.Empty(t, results[1].Hits)
	assert.NotNil(t, results[1].Hits)
}

func TestQueryCmd_Config(t *testing.T) {
	scenePath := writeScene(t)

	configPath := filepath.Join(t.TempDir(), "graphhit.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("query:\n  scene: "+scenePath+"\n  format: json\n"), 0o644))

	out, err := execute(t, "--config", configPath, "query", "--at", "480,260")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "body"`)
}

func TestSubCmd_FlagsOverrideConfig(t *testing.T) {
	scenePath := writeScene(t)

	configPath := filepath.Join(t.TempDir(), "graphhit.yaml")
	content := "query:\n  scene: " + filepath.Join(t.TempDir(), "missing.yaml") + "\n  format: text\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	t.Run("query", func(t *testing.T) {
		out, err := execute(t, "--config", configPath, "query", "--scene", scenePath, "--format", "json", "--at", "480,260")
		require.NoError(t, err)

		var results []queryResult
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		require.Len(t, results[0].Hits, 2)
	})

	t.Run("inspect", func(t *testing.T) {
		out, err := execute(t, "--config", configPath, "inspect", "--scene", scenePath, "--format", "json")
		require.NoError(t, err)

		var infos []nodeInfo
		require.NoError(t, json.Unmarshal([]byte(out), &infos))
		require.Len(t, infos, 3)
	})

	t.Run("config only", func(t *testing.T) {
		_, err := execute(t, "--config", configPath, "inspect")
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestInspectCmd_SceneFlag(t *testing.T) {
	scenePath := writeScene(t)

	out, err := execute(t, "inspect", "--scene", scenePath)
	require.NoError(t, err)
	assert.Contains(t, out, "background rectangle layer=0\n")

	// without --scene the default scene.yaml in the working directory is used
	_, err = execute(t, "inspect")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestQueryCmd_Errors(t *testing.T) {
	scenePath := writeScene(t)

	t.Run("no pointer", func(t *testing.T) {
		_, err := execute(t, "query", "--scene", scenePath)
		require.ErrorIs(t, err, ErrInvalidPointer)
	})

	t.Run("invalid pointer", func(t *testing.T) {
		_, err := execute(t, "query", "--scene", scenePath, "--at", "1;2")
		require.ErrorIs(t, err, ErrInvalidPointer)
	})

	t.Run("missing scene", func(t *testing.T) {
		_, err := execute(t, "query", "--scene", filepath.Join(t.TempDir(), "missing.yaml"), "--at", "1,2")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, "query", "--scene", scenePath, "--at", "1,2", "--format", "xml")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("invalid profile", func(t *testing.T) {
		_, err := execute(t, "--profile", "gpu", "query", "--scene", scenePath, "--at", "1,2")
		require.ErrorIs(t, err, ErrInvalidProfile)
	})
}

func TestInspectCmd(t *testing.T) {
	scenePath := writeScene(t)

	out, err := execute(t, "inspect", "--scene", scenePath, "--format", "json")
	require.NoError(t, err)

	var infos []nodeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)

	assert.Equal(t, "body", infos[1].Name)
	assert.Nil(t, infos[1].Parent)
	assert.Equal(t, [6]float64{1, 0, 0, 1, 2, 1}, infos[1].World)

	require.NotNil(t, infos[2].Parent)
	assert.Equal(t, 1, *infos[2].Parent)
	assert.Equal(t, "point", infos[2].Shape)
	assert.InDelta(t, 520, infos[2].Origin[0], 1e-9)
	assert.InDelta(t, 260, infos[2].Origin[1], 1e-9)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "inspect", "--scene", scenePath)
		require.NoError(t, err)
		assert.Contains(t, out, "body circle layer=1\n  world  [1 0 0 1 2 1]\n")
		assert.Contains(t, out, "#2 (parent #1) point layer=2\n")
	})
}

func TestParsePointer(t *testing.T) {
	cases := []struct {
		input    string
		expected gm.Vec
	}{
		{"1,2", gm.VecOf(1, 2)},
		{" 1.5 , -2 ", gm.VecOf(1.5, -2)},
		{"1e2,0", gm.VecOf(100, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := parsePointer(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}

	for _, input := range []string{"", "1", "a,b", "1,b"} {
		_, err := parsePointer(input)
		assert.ErrorIs(t, err, ErrInvalidPointer, input)
	}
}
