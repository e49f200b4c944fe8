package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected end of JSON input")
	err := NewParseError("project.json", 3, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "project.json", parseErr.Path)
	require.Equal(t, 3, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "project.json:3")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("settings", "settings object is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "settings", validationErr.Field)
	require.Equal(t, "validation error: settings: settings object is required", err.Error())
}

func TestVariantErrorIncludesVariantName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not registered")
	err := NewVariantError("myspace", underlying)

	var variantErr *VariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "myspace", variantErr.Variant)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[myspace]")
}

func TestUploadErrorFormatsStatus(t *testing.T) {
	t.Parallel()

	err := NewUploadError("cat.png", 400, "Upload preset not found", nil)
	require.Equal(t, "upload error: cat.png: status 400: Upload preset not found", err.Error())

	cause := stdErrors.New("connection refused")
	err = NewUploadError("cat.png", 0, "", cause)
	require.True(t, stdErrors.Is(err, cause))
	require.Contains(t, err.Error(), "connection refused")
}
