package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("64b7f0c2a1b2c3d4e5f60718", "s3cret")
	require.NoError(t, err)

	userID, err := ParseToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", userID)
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	_, err := GenerateToken("u1", "")
	assert.Error(t, err)
}

func TestParseToken_Rejects(t *testing.T) {
	good, err := GenerateToken("u1", "s3cret")
	require.NoError(t, err)

	_, err = ParseToken(good, "other")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = ParseToken("garbage", "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = ParseToken(signed, "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err = noUser.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = ParseToken(signed, "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidationFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationFailed(c, "bad page")

	require.Equal(t, 422, w.Code)
	assert.True(t, c.IsAborted())
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad page", body["error"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestTooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	TooManyRequests(c, "rate limit exceeded", 90*time.Minute)

	require.Equal(t, 429, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":"rate limit exceeded","code":"RATE_LIMITED","retry_after":5400}`, w.Body.String())
}
