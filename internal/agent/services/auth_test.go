package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfree-rdc/customs-agent/internal/agent/client"
	"github.com/taxfree-rdc/customs-agent/internal/agent/models"
)

type fakeAuthClient struct {
	fakeClient

	loginSession *models.Session
	loginErr     error
	resumed      *models.Session
	resumeCalls  int
}

func (f *fakeAuthClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	s := *f.loginSession
	return &s, nil
}

func (f *fakeAuthClient) Resume(s *models.Session) {
	f.resumed = s
	f.resumeCalls++
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestLogin_DecodesClaimsAndPersistsSession(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	access := signedToken(t, jwt.MapClaims{
		"full_name":     "M. Kabongo",
		"role":          "CUSTOMS_AGENT",
		"point_of_exit": "FIH",
		"exp":           exp.Unix(),
	})

	fc := &fakeAuthClient{loginSession: &models.Session{AccessToken: access, RefreshToken: "ref-1"}}
	dir := t.TempDir()
	svc := NewAuthService(fc, dir)

	s, err := svc.Login(context.Background(), "agent@dgda.cd", "pw")
	require.NoError(t, err)

	assert.Equal(t, "M. Kabongo", s.AgentName)
	assert.Equal(t, "CUSTOMS_AGENT", s.Role)
	assert.Equal(t, "FIH", s.PointOfExit)
	assert.Equal(t, exp.UTC(), s.ExpiresAt)

	_, err = os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
}

func TestLogin_OpaqueTokenStillWorks(t *testing.T) {
	fc := &fakeAuthClient{loginSession: &models.Session{AccessToken: "not-a-jwt", RefreshToken: "r"}}
	svc := NewAuthService(fc, t.TempDir())

	s, err := svc.Login(context.Background(), "agent@dgda.cd", "pw")
	require.NoError(t, err)
	assert.Empty(t, s.AgentName)
	assert.Equal(t, "not-a-jwt", s.AccessToken)
}

func TestResume_RestoresPersistedSession(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{"full_name": "M. Kabongo"})
	fc := &fakeAuthClient{loginSession: &models.Session{AccessToken: access, RefreshToken: "ref-1"}}
	dir := t.TempDir()
	svc := NewAuthService(fc, dir)

	_, err := svc.Login(context.Background(), "agent@dgda.cd", "pw")
	require.NoError(t, err)

	// fresh service over the same directory, as after a restart
	fc2 := &fakeAuthClient{}
	svc2 := NewAuthService(fc2, dir)
	s, err := svc2.Resume(context.Background())
	require.NoError(t, err)

	assert.Equal(t, access, s.AccessToken)
	assert.Equal(t, "M. Kabongo", s.AgentName)
	require.NotNil(t, fc2.resumed)
	assert.Equal(t, "ref-1", fc2.resumed.RefreshToken)
}

func TestResume_NoSessionFile(t *testing.T) {
	svc := NewAuthService(&fakeAuthClient{}, t.TempDir())
	_, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLogout_RemovesSessionAndClearsClient(t *testing.T) {
	access := signedToken(t, jwt.MapClaims{})
	fc := &fakeAuthClient{loginSession: &models.Session{AccessToken: access}}
	dir := t.TempDir()
	svc := NewAuthService(fc, dir)

	_, err := svc.Login(context.Background(), "agent@dgda.cd", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, fc.resumed)
	require.GreaterOrEqual(t, fc.resumeCalls, 1)

	_, err = os.Stat(filepath.Join(dir, "session.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// second logout is a no-op
	require.NoError(t, svc.Logout(context.Background()))
}
