package httpserver

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestContext_Query(t *testing.T) {
	r := httptest.NewRequest("GET", "/fragments/x?category=shoes&empty=", nil)
	ctx := NewRequestContext(r)

	v, ok := ctx.Query("category")
	assert.True(t, ok)
	assert.Equal(t, "shoes", v)

	// Present but empty is still present.
	v, ok = ctx.Query("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = ctx.Query("missing")
	assert.False(t, ok)
}

func TestRequestContext_Cookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/fragments/x", nil)
	r.Header.Set("Cookie", "theme=dark")
	ctx := NewRequestContext(r)

	v, ok := ctx.Cookie("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, ok = ctx.Cookie("missing")
	assert.False(t, ok)
}

func TestRequestContext_Header(t *testing.T) {
	r := httptest.NewRequest("GET", "/fragments/x", nil)
	r.Header.Set("X-Tenant", "acme")
	ctx := NewRequestContext(r)

	v, ok := ctx.Header("X-Tenant")
	assert.True(t, ok)
	assert.Equal(t, "acme", v)

	_, ok = ctx.Header("X-Missing")
	assert.False(t, ok)
}

func TestRequestContext_User(t *testing.T) {
	r := httptest.NewRequest("GET", "/fragments/x", nil)
	ctx := NewRequestContext(r)
	_, ok := ctx.User()
	assert.False(t, ok)

	r.Header.Set("X-User-Id", "alice")
	ctx = NewRequestContext(r)
	v, ok := ctx.User()
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestRequestContext_Culture(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
		ok     bool
	}{
		{"absent", "", "", false},
		{"single tag", "en-US", "en-US", true},
		{"multiple tags", "fr-FR, en-US;q=0.8", "fr-FR", true},
		{"quality weight stripped", "de-DE;q=0.9", "de-DE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/fragments/x", nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			v, ok := NewRequestContext(r).Culture()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}
