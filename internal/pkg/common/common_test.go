package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseJSONBytes(t *testing.T) {
	var out struct {
		Meals []map[string]*string `json:"meals"`
	}

	require.NoError(t, ParseJSONBytes([]byte(`{"meals":[{"idMeal":"1","strTags":null}]}`+"\n"), &out))
	require.Len(t, out.Meals, 1)
	assert.Equal(t, "1", *out.Meals[0]["idMeal"])
	assert.Nil(t, out.Meals[0]["strTags"])

	err := ParseJSONBytes([]byte(`{"meals":null}{"meals":null}`), &out)
	assert.Error(t, err, "trailing documents are rejected")
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestAsCustomError(t *testing.T) {
	wrapped := fmt.Errorf("gate: %w", ErrServiceUnavailable.WithErr(errors.New("queue full")))

	ce := AsCustomError(wrapped)
	assert.Equal(t, ErrCodeServiceUnavailable, ce.Code)
	assert.Equal(t, http.StatusServiceUnavailable, ce.Status)
	assert.Equal(t, "queue full", ce.Error())

	plain := AsCustomError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternalError, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("nonsense"))
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogInfo("before init")
		LogWarn("before init")
		LogCatalogCall("filter", "egg", 0, errors.New("x"))
	})
}
