package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-profilepage-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwksServer(t *testing.T, kid string, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()
	n := base64.RawURLEncoding.EncodeToString(pub.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x01})
	body := fmt.Sprintf(`{"keys":[{"kid":%q,"kty":"RSA","n":%q,"e":%q}]}`, kid, n, e)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestKeyFunc(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := jwksServer(t, "key-1", &priv.PublicKey)
	provider := auth.NewProvider(srv.URL)

	signedToken := func(kid string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
			"sub": "user1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token.Header["kid"] = kid
		s, err := token.SignedString(priv)
		require.NoError(t, err)
		return s
	}

	t.Run("Should verify a token signed with a published key", func(t *testing.T) {
		parsed, err := jwt.Parse(signedToken("key-1"), provider.KeyFunc)
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
	})

	t.Run("Should reject a kid the endpoint does not publish", func(t *testing.T) {
		_, err := jwt.Parse(signedToken("key-2"), provider.KeyFunc)
		assert.Error(t, err)
	})

	t.Run("Should reject non-RSA signing methods", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user1"})
		hs, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.Parse(hs, provider.KeyFunc)
		assert.Error(t, err)
	})
}
