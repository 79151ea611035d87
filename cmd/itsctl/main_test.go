package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestEstimate(t *testing.T) {
	out, err := run(t, "estimate",
		"--from", "50,50", "--to", "300,300", "--speed", "15.5", "--level", "1",
		"--level-coefficient", "0.1", "--time-coefficient", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "distance: 353.553")
	assert.Contains(t, out, "duration: 23s (23s)")
}

func TestEstimate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad point", []string{"--from", "50", "--to", "1,1", "--speed", "1"}},
		{"same position", []string{"--from", "5,5", "--to", "5,5", "--speed", "1"}},
		{"zero speed", []string{"--from", "0,0", "--to", "5,5", "--speed", "0"}},
		{"invalid coefficient", []string{"--from", "0,0", "--to", "5,5", "--speed", "1", "--level-coefficient", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"estimate", "--time-coefficient", "1", "--level-coefficient", "0.1"}, tt.args...)
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestPlanets_AddAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "its.db")

	out, err := run(t, "--sqlite", dbPath, "planets", "add", "P-900", "120", "640", "--type", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "created planet P-900 at (120, 640)")

	_, err = run(t, "--sqlite", dbPath, "planets", "add", "P-900", "1", "1")
	require.Error(t, err)

	out, err = run(t, "--sqlite", dbPath, "planets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "P-900")
	assert.Contains(t, out, "ice")

	out, err = run(t, "--sqlite", dbPath, "planets", "list", "-o", "yaml")
	require.NoError(t, err)

	var doc struct {
		Planets []planetRecord `yaml:"planets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Planets, 1)
	assert.Equal(t, planetRecord{Name: "P-900", PositionX: 120, PositionY: 640, Radius: 10, Color: "#32cbd4", Type: 2}, doc.Planets[0])

	_, err = run(t, "--sqlite", dbPath, "planets", "list", "-o", "json")
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	out, err := run(t, "--sqlite", filepath.Join(t.TempDir(), "its.db"), "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date (sqlite)")
}
