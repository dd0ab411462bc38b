package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
)

func TestRenderInspect_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderInspect(&buf, colormath.Describe(colormath.RGB(255, 0, 0)), false, false))

	out := buf.String()
	assert.Contains(t, out, "#FF0000 red")
	assert.Contains(t, out, "#FFFF0000")
	assert.Contains(t, out, "255,0,0,255")
	assert.Contains(t, out, "text color")
}

func TestRenderInspect_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderInspect(&buf, colormath.Describe(colormath.RGB(100, 149, 237)), true, false))

	var info colormath.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "#6495ED", info.Hex)
	assert.Equal(t, "cornflowerblue", info.Name)
	assert.Equal(t, colormath.RGB(100, 149, 237), info.RGBA)
}

func TestSuggestName(t *testing.T) {
	_, err := colormath.Parse("cornflowerblu")
	require.Error(t, err)

	err = suggestName(err)
	assert.Contains(t, err.Error(), "did you mean cornflowerblue?")

	var unknown *colormath.UnknownColorNameError
	assert.True(t, errors.As(err, &unknown))
}

func TestSuggestName_FormatErrorUnchanged(t *testing.T) {
	_, err := colormath.Parse("#12")
	require.Error(t, err)
	assert.Equal(t, err, suggestName(err))
}

func TestErrUnknownKey(t *testing.T) {
	err := errUnknownKey("palete.count")
	assert.EqualError(t, err, "unknown key palete.count, did you mean palette.count?")
}
