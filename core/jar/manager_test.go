package jar_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/core/jar"
)

func TestManager_New(t *testing.T) {
	t.Run("plaintext manager without secrets", func(t *testing.T) {
		m, err := jar.New(nil)
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("filters empty secrets", func(t *testing.T) {
		m, err := jar.New([]string{"", testSecret, ""})
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := jar.New([]string{"too-short"})
		assert.ErrorIs(t, err, jar.ErrSecretTooShort)
	})

	t.Run("new manager is plaintext-only", func(t *testing.T) {
		m := jar.NewManager(jar.WithDefaults(jar.WithPath("/")))
		require.NotNil(t, m)

		j := m.ParseHeader("")
		require.NoError(t, j.Set("pref", "dark"))
		assert.Equal(t, []string{"pref=dark; path=/"}, j.Headers())

		assert.ErrorIs(t, j.SetSigned("uid", "v"), jar.ErrNoSecret)
	})
}

func TestManager_Defaults(t *testing.T) {
	t.Run("defaults apply to every written cookie", func(t *testing.T) {
		m, err := jar.New(nil, jar.WithDefaults(
			jar.WithPath("/app"),
			jar.WithSecure(true),
		))
		require.NoError(t, err)

		j := m.ParseHeader("")
		require.NoError(t, j.Set("pref", "dark"))

		assert.Equal(t, []string{"pref=dark; path=/app; secure"}, j.Headers())
	})

	t.Run("per-cookie options override defaults", func(t *testing.T) {
		m, err := jar.New(nil, jar.WithDefaults(jar.WithPath("/app")))
		require.NoError(t, err)

		j := m.ParseHeader("")
		require.NoError(t, j.Set("pref", "dark", jar.WithPath("/other")))

		assert.Equal(t, []string{"pref=dark; path=/other"}, j.Headers())
	})

	t.Run("custom max size", func(t *testing.T) {
		m, err := jar.New(nil, jar.WithMaxSize(16))
		require.NoError(t, err)

		j := m.ParseHeader("")
		assert.Error(t, j.Set("name", "a-value-over-sixteen-bytes"))
		assert.NoError(t, j.Set("ok", "v"))
	})

	t.Run("new jar reads the request cookie header", func(t *testing.T) {
		m, err := jar.New(nil)
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Cookie", "who=me")

		j := m.NewJar(r)
		assert.Equal(t, "me", j.Get("who"))
	})

	t.Run("each request gets an isolated jar", func(t *testing.T) {
		m, err := jar.New(nil)
		require.NoError(t, err)

		first := m.ParseHeader("shared=value")
		require.NoError(t, first.Set("shared", "mutated"))

		second := m.ParseHeader("shared=value")
		assert.Equal(t, "value", second.Get("shared"))
		assert.Empty(t, second.Headers())
	})
}
