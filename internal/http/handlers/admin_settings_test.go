package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

func newSettingsHandler(t *testing.T) (*AdminSettingsHandler, *studio.State) {
	t.Helper()
	state := newTestState(t)
	return NewAdminSettingsHandler(state, logging.Default()), state
}

func TestSettingsGetDefaults(t *testing.T) {
	h, _ := newSettingsHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var settings studio.Settings
	decodeBody(t, rec, &settings)
	assert.Equal(t, 250.0, settings.DefaultPrice)
	assert.Equal(t, 240, settings.DefaultDuration)
}

func TestSettingsUpdate(t *testing.T) {
	h, state := newSettingsHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPut, "/", studio.Settings{
		DefaultPrice:    300,
		DefaultDuration: 300,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 300.0, state.Settings().DefaultPrice)
	assert.Equal(t, 300, state.Settings().DefaultDuration)
}

func TestSettingsUpdateRejectsNonPositiveValues(t *testing.T) {
	h, state := newSettingsHandler(t)

	rec := doJSON(t, h.Routes(), http.MethodPut, "/", studio.Settings{
		DefaultPrice:    0,
		DefaultDuration: 240,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 250.0, state.Settings().DefaultPrice)
}
