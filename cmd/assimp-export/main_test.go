package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	assimpexport "github.com/flywave/go-assimp-export"
	"github.com/flywave/go-assimp-export/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverter struct {
	formats []string
	report  *assimpexport.Report
	err     error
	lastErr string
	runs    int
}

func (s *stubConverter) ListSupportedFormats() []string { return s.formats }

func (s *stubConverter) Convert(in, out string) bool {
	_, err := s.Run(in, out)
	return err == nil
}

func (s *stubConverter) Run(in, out string) (*assimpexport.Report, error) {
	s.runs++
	return s.report, s.err
}

func (s *stubConverter) LastError() string { return s.lastErr }

func useConverter(t *testing.T, conv assimpexport.Converter) *config.Config {
	t.Helper()
	var seen config.Config
	prev := newConverter
	newConverter = func(cfg *config.Config) (assimpexport.Converter, error) {
		seen = *cfg
		return conv, nil
	}
	t.Cleanup(func() { newConverter = prev })
	return &seen
}

func execute(args ...string) (string, string, error) {
	cmd := NewAssimpExportCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommand(t *testing.T) {
	conv := &stubConverter{report: &assimpexport.Report{
		Input: "model.usdz", Output: "model.obj", Meshes: 2, Materials: 1,
	}}
	seen := useConverter(t, conv)

	out, _, err := execute("convert", "model.usdz", "model.obj", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "model.usdz -> model.obj (meshes: 2, materials: 1, textures: 0)")
	assert.Equal(t, 1, conv.runs)
	assert.True(t, seen.Log.Enabled)
	assert.False(t, seen.Verify)
}

func TestConvertCommandFailure(t *testing.T) {
	conv := &stubConverter{
		err:     &assimpexport.ConvertError{Kind: assimpexport.ImportFailure, Message: "boom"},
		lastErr: "Import: Unable to open file",
	}
	useConverter(t, conv)

	_, _, err := execute("convert", "missing.usdz", "out.obj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Import: Unable to open file")
}

func TestConvertCommandFailureWithoutLastError(t *testing.T) {
	conv := &stubConverter{
		err: &assimpexport.ConvertError{Kind: assimpexport.MissingRootNode, Path: "a.usdz", Message: assimpexport.NoErrorString},
	}
	useConverter(t, conv)

	_, _, err := execute("convert", "a.usdz", "a.obj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing root node")
}

func TestConvertCommandValidation(t *testing.T) {
	conv := &stubConverter{}
	useConverter(t, conv)

	_, _, err := execute("convert", "same.obj", "same.obj")
	assert.Error(t, err)
	_, _, err = execute("convert", "only-one.usdz")
	assert.Error(t, err)
	assert.Zero(t, conv.runs)
}

func TestConvertCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verify: true\nlog:\n  enabled: true\n"), 0o644))
	conv := &stubConverter{report: &assimpexport.Report{Input: "a", Output: "b"}}
	seen := useConverter(t, conv)

	_, _, err := execute("convert", "a.usdz", "b.obj", "--config", path, "--verbose=false")
	require.NoError(t, err)
	assert.True(t, seen.Verify)
	assert.False(t, seen.Log.Enabled)
}

func TestFormatsCommand(t *testing.T) {
	conv := &stubConverter{formats: []string{"obj - Wavefront OBJ format", "stl - Stereolithography"}}
	useConverter(t, conv)

	out, _, err := execute("formats")
	require.NoError(t, err)
	assert.Equal(t, "obj - Wavefront OBJ format\nstl - Stereolithography\n", out)

	out, _, err = execute("formats", "-o", "json")
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, conv.formats, got)

	_, _, err = execute("formats", "-o", "xml")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 3/1/1\n"), 0o644))

	out, _, err := execute("inspect", path, "-o", "json")
	require.NoError(t, err)
	var got objReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Vertices)
	assert.Equal(t, 1, got.Faces)
	assert.Equal(t, [3]float64{1, 1, 0}, got.Max)

	_, _, err = execute("inspect", filepath.Join(dir, "missing.obj"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "assimp-export "+assimpexport.Version+"\n", out)
}
