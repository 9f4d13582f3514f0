package appicon

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativetranslator/appicon/utils"
)

func TestExec_Execute(t *testing.T) {
	assert := assert.New(t)
	utils.NoColor = true

	tmp := t.TempDir()
	var out bytes.Buffer
	op := &Ops{
		Size:   ReferenceSize,
		Dst:    filepath.Join(tmp, "AppIcon.appiconset"),
		Master: filepath.Join(tmp, "master.png"),
		Ico:    filepath.Join(tmp, "appicon.ico"),
		Out:    &out,
	}

	var written int
	e := &Exporter{Filter: Lanczos, OnWrite: func(string, int) { written++ }}

	paths, err := NewComposer().Execute(e, op)
	require.NoError(t, err)
	assert.Len(paths, len(DefaultTargets)+3)
	assert.Equal(len(DefaultTargets)+1, written)

	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(err, p)
	}

	m, err := ReadManifest(op.Dst)
	require.NoError(t, err)
	assert.NoError(m.Validate(op.Dst))

	log := out.String()
	assert.Contains(log, "Generated Icon-1024.png at 1024x1024")
	assert.Contains(log, "Generated Contents.json")
	assert.Contains(log, "All icons generated in: "+op.Dst)
	assert.NotContains(log, "\033[", "no escape sequences outside of a terminal")
}

func TestExec_InvalidSize(t *testing.T) {
	utils.NoColor = true

	tmp := t.TempDir()
	var out bytes.Buffer
	op := &Ops{Size: 0, Dst: filepath.Join(tmp, "out"), Out: &out}

	paths, err := NewComposer().Execute(&Exporter{}, op)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Empty(t, paths)
	assert.Contains(t, out.String(), "drawing the icon failed")

	_, statErr := os.Stat(op.Dst)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExec_SmallReference(t *testing.T) {
	utils.NoColor = true

	op := &Ops{
		Size: 256,
		Dst:  filepath.Join(t.TempDir(), "out"),
		Out:  &bytes.Buffer{},
		Targets: []Target{
			{Filename: "Icon-60@3x.png", Pixels: 180, Idiom: "iphone", Scale: "3x", Size: "60x60"},
		},
	}

	paths, err := NewComposer().Execute(&Exporter{Filter: Box}, op)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(op.Dst, "Icon-60@3x.png"),
		filepath.Join(op.Dst, ManifestName),
	}, paths)
}
