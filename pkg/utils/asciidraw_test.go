package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiFrame_NoFields(t *testing.T) {
	actual, err := AsciiFrame([]AsciiFrameField{}, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(actual, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "15"))
	assert.True(t, strings.HasSuffix(lines[0], "0"))
	assert.Contains(t, lines[2], "(unused)")
	assert.Contains(t, lines[4], "16 bits")
}

func TestAsciiFrame_SingleField(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	assert.Equal(t, "| first field |", strings.Split(actual, "\n")[2])
	assert.NotContains(t, actual, "(unused)")
}

func TestAsciiFrame_SingleField_NotFittingFullFrame(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	body := strings.Split(actual, "\n")[2]
	assert.Less(t, strings.Index(body, "(unused)"), strings.Index(body, "first field"), "higher units are drawn first in right to left layout")
}

func TestAsciiFrame_WithTextPadding(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 4)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(actual, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "    "), "line '%v' is not padded", line)
	}
}

func TestAsciiFrame_UnsortedFields(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "high", Begin: 16, Width: 16},
		{Name: "low", Begin: 0, Width: 16},
	}

	actual, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_LeftToRight, 0)
	require.NoError(t, err)

	body := strings.Split(actual, "\n")[2]
	assert.Less(t, strings.Index(body, "low"), strings.Index(body, "high"))
}

func TestAsciiFrame_OverlappingFields(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "a", Begin: 0, Width: 8},
		{Name: "b", Begin: 4, Width: 8},
	}

	_, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}

func TestAsciiFrame_FieldsWiderThanFrame(t *testing.T) {
	fields := []AsciiFrameField{
		{Name: "a", Begin: 0, Width: 40},
	}

	_, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}
