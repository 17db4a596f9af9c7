package jar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/core/jar"
)

func TestConfig(t *testing.T) {
	t.Run("default config builds plaintext manager", func(t *testing.T) {
		m, err := jar.NewFromConfig(jar.DefaultConfig())
		require.NoError(t, err)

		j := m.ParseHeader("")
		require.NoError(t, j.Set("plain", "value"))
		assert.Equal(t, []string{"plain=value"}, j.Headers())
	})

	t.Run("config attributes become defaults", func(t *testing.T) {
		m, err := jar.NewFromConfig(jar.Config{
			Domain:  "example.com",
			Path:    "/",
			Secure:  true,
			MaxSize: jar.MaxCookieSize,
		})
		require.NoError(t, err)

		j := m.ParseHeader("")
		require.NoError(t, j.Set("c", "x"))
		assert.Equal(t, []string{"c=x; domain=example.com; path=/; secure"}, j.Headers())
	})

	t.Run("comma separated secrets enable signing", func(t *testing.T) {
		m, err := jar.NewFromConfig(jar.Config{
			Secrets: testSecret + " , " + testSecret2 + ",",
			MaxSize: jar.MaxCookieSize,
		})
		require.NoError(t, err)

		j := m.ParseHeader("")
		require.NoError(t, j.SetSigned("uid", "user-1"))

		next := roundTrip(t, m, j)
		value, err := next.GetSigned("uid")
		require.NoError(t, err)
		assert.Equal(t, "user-1", value)
	})

	t.Run("invalid secret fails construction", func(t *testing.T) {
		_, err := jar.NewFromConfig(jar.Config{Secrets: "short"})
		assert.ErrorIs(t, err, jar.ErrSecretTooShort)
	})

	t.Run("explicit options override config", func(t *testing.T) {
		m, err := jar.NewFromConfig(jar.Config{MaxSize: 4096}, jar.WithMaxSize(16))
		require.NoError(t, err)

		j := m.ParseHeader("")
		assert.Error(t, j.Set("name", "a-value-over-sixteen-bytes"))
	})
}
