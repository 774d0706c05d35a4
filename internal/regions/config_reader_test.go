package regions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fragment-cache/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRegionsConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
regions:
  PopularProducts:
    origin: "http://renderer:9000/fragments/popular-products"
    expires_after: "10m"
    vary_by_query: [category, page]
  UserGreeting:
    origin: "http://renderer:9000/fragments/greeting"
    expires_sliding: "5m"
    vary_by_user: true
    vary_by_culture: true
  HolidayBanner:
    origin: "http://renderer:9000/fragments/banner"
    expires_on: 2030-01-01T00:00:00Z
`)

	registry, err := LoadRegionsConfig(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"HolidayBanner", "PopularProducts", "UserGreeting"}, registry.Names())

	products, ok := registry.Lookup("PopularProducts")
	require.True(t, ok)
	assert.Equal(t, 10*time.Minute, products.Expiration.FreshFor)
	assert.Equal(t, models.ExpirationAbsolute, products.Expiration.Mode())
	assert.Equal(t, []string{"category", "page"}, products.VaryBy.QueryKeys)

	greeting, ok := registry.Lookup("UserGreeting")
	require.True(t, ok)
	assert.Equal(t, models.ExpirationSliding, greeting.Expiration.Mode())
	assert.True(t, greeting.VaryBy.User)
	assert.True(t, greeting.VaryBy.Culture)

	banner, ok := registry.Lookup("HolidayBanner")
	require.True(t, ok)
	assert.Equal(t, models.ExpirationAt, banner.Expiration.Mode())
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), banner.Expiration.At)
}

func TestLoadRegionsConfig_ConflictingExpirationModes(t *testing.T) {
	path := writeConfig(t, `
regions:
  Broken:
    origin: "http://renderer:9000/fragments/broken"
    expires_after: "10m"
    expires_sliding: "5m"
`)

	_, err := LoadRegionsConfig(path, zap.NewNop())
	require.Error(t, err)

	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Broken", cfgErr.Region)
}

func TestLoadRegionsConfig_DefaultExpiration(t *testing.T) {
	path := writeConfig(t, `
regions:
  NoExpiry:
    origin: "http://renderer:9000/fragments/plain"
`)

	registry, err := LoadRegionsConfig(path, zap.NewNop())
	require.NoError(t, err)

	region, ok := registry.Lookup("NoExpiry")
	require.True(t, ok)
	// The engine substitutes the default duration for a zero spec.
	assert.True(t, region.Expiration.IsZero())
	assert.Equal(t, models.ExpirationAbsolute, region.Expiration.Mode())
}

func TestLoadRegionsConfig_PastInstantAccepted(t *testing.T) {
	path := writeConfig(t, `
regions:
  Expired:
    origin: "http://renderer:9000/fragments/expired"
    expires_on: 2001-01-01T00:00:00Z
`)

	// Construct-then-expire is valid configuration, not an error.
	registry, err := LoadRegionsConfig(path, zap.NewNop())
	require.NoError(t, err)
	_, ok := registry.Lookup("Expired")
	assert.True(t, ok)
}

func TestLoadRegionsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{
			name:   "missing regions section",
			config: `regions: {}`,
		},
		{
			name: "missing origin",
			config: `
regions:
  NoOrigin:
    expires_after: "10m"
`,
		},
		{
			name: "relative origin",
			config: `
regions:
  BadOrigin:
    origin: "/fragments/relative"
`,
		},
		{
			name: "empty vary-by key",
			config: `
regions:
  EmptyKey:
    origin: "http://renderer:9000/f"
    vary_by_query: ["category", ""]
`,
		},
		{
			name: "negative duration",
			config: `
regions:
  Negative:
    origin: "http://renderer:9000/f"
    expires_after: "-10m"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.config)
			_, err := LoadRegionsConfig(path, zap.NewNop())
			require.Error(t, err)

			var cfgErr *models.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadRegionsConfig_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegionsConfig(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "regions: [not a map")
		_, err := LoadRegionsConfig(path, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestRegistry_LookupUnknownRegion(t *testing.T) {
	registry, err := NewRegistry(&RegionsConfig{
		Regions: map[string]RegionDecl{
			"Known": {Origin: "http://renderer:9000/f"},
		},
	}, zap.NewNop())
	require.NoError(t, err)

	_, ok := registry.Lookup("Unknown")
	assert.False(t, ok)
}
