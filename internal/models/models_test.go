package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpirationSpec_Mode(t *testing.T) {
	tests := []struct {
		name string
		spec ExpirationSpec
		want ExpirationMode
	}{
		{"zero value defaults to absolute", ExpirationSpec{}, ExpirationAbsolute},
		{"absolute duration", ExpirationSpec{FreshFor: 10 * time.Minute}, ExpirationAbsolute},
		{"sliding window", ExpirationSpec{SlidingFor: 5 * time.Second}, ExpirationSliding},
		{"fixed instant", ExpirationSpec{At: time.Now()}, ExpirationAt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Mode())
		})
	}
}

func TestExpirationSpec_Validate(t *testing.T) {
	t.Run("single mode is valid", func(t *testing.T) {
		assert.NoError(t, ExpirationSpec{FreshFor: time.Minute}.Validate())
		assert.NoError(t, ExpirationSpec{SlidingFor: time.Minute}.Validate())
		assert.NoError(t, ExpirationSpec{At: time.Now()}.Validate())
	})

	t.Run("no mode is valid", func(t *testing.T) {
		assert.NoError(t, ExpirationSpec{}.Validate())
	})

	t.Run("two modes are rejected", func(t *testing.T) {
		spec := ExpirationSpec{FreshFor: time.Minute, SlidingFor: time.Minute}
		err := spec.Validate()
		require.Error(t, err)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("instant in the past is valid", func(t *testing.T) {
		spec := ExpirationSpec{At: time.Now().Add(-time.Hour)}
		assert.NoError(t, spec.Validate())
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		assert.Error(t, ExpirationSpec{FreshFor: -time.Second}.Validate())
	})
}

func TestExpirationSpec_OrDefault(t *testing.T) {
	t.Run("zero spec falls back", func(t *testing.T) {
		spec := ExpirationSpec{}.OrDefault(5 * time.Minute)
		assert.Equal(t, 5*time.Minute, spec.FreshFor)
	})

	t.Run("zero spec and zero fallback use package default", func(t *testing.T) {
		spec := ExpirationSpec{}.OrDefault(0)
		assert.Equal(t, DefaultFreshFor, spec.FreshFor)
	})

	t.Run("set spec is untouched", func(t *testing.T) {
		spec := ExpirationSpec{SlidingFor: time.Minute}.OrDefault(5 * time.Minute)
		assert.Equal(t, time.Minute, spec.SlidingFor)
		assert.Zero(t, spec.FreshFor)
	})
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	t.Run("parses duration strings", func(t *testing.T) {
		var d Duration
		err := yaml.Unmarshal([]byte(`"1h30m"`), &d)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, d.Std())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var d Duration
		err := yaml.Unmarshal([]byte(`"soon"`), &d)
		assert.Error(t, err)
	})
}

func TestConfigurationError_Error(t *testing.T) {
	err := NewConfigurationError("PopularProducts", "bad option %q", "expires_never")
	assert.Contains(t, err.Error(), "PopularProducts")
	assert.Contains(t, err.Error(), "expires_never")

	unbound := NewConfigurationError("", "no region")
	assert.NotContains(t, unbound.Error(), `""`)
}
