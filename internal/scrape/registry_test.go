package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/apperr"
	"jobscout/internal/config"
	"jobscout/internal/logging"
)

func testDeps() Deps {
	return Deps{Cfg: config.Default(), Logger: logging.Nop()}
}

func TestSites(t *testing.T) {
	assert.Equal(t, []string{"indeed", "linkedin", "remotive", "themuse"}, Sites())
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("themuse"))
	assert.True(t, Known("TheMuse"))
	assert.True(t, Known("  remotive "))
	assert.False(t, Known("glassdoor"))
	assert.False(t, Known(""))
}

func TestResolveCaseInsensitive(t *testing.T) {
	sc, err := Resolve("ReMoTiVe", testDeps())
	require.NoError(t, err)
	assert.Equal(t, "remotive", sc.Name())
}

func TestResolveUnknownSite(t *testing.T) {
	_, err := Resolve("glassdoor", testDeps())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	// the message must name the valid choices
	assert.Contains(t, apperr.Message(err), "themuse")
	assert.Contains(t, apperr.Message(err), "remotive")
	assert.Contains(t, apperr.Message(err), `"glassdoor"`)
}
