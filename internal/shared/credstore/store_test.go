package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"s3-cloud/internal/shared/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	s, err := Load(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACCESS_KEY=\nSECRET_KEY=\n", string(data))

	v, ok := s.Get(AccessKey)
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, []string{AccessKey, SecretKey}, s.Keys())
}

func TestLoadSplitsOnFirstEquals(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCESS_KEY=abc\r\nTOKEN=a=b=c\n\nBARE\nSECRET_KEY=\n"), 0600))

	s, err := Load(path)
	require.NoError(t, err)

	v, _ := s.Get("TOKEN")
	assert.Equal(t, "a=b=c", v)

	v, ok := s.Get("BARE")
	assert.True(t, ok)
	assert.Empty(t, v)

	v, _ = s.Get(AccessKey)
	assert.Equal(t, "abc", v)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	original := "REGION_HINT=sa-east-1\nACCESS_KEY=old\nSECRET_KEY=s3cr=t\nEXTRA= spaced value \n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0600))

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))

	reloaded, err := Load(path)
	require.NoError(t, err)
	for _, key := range s.Keys() {
		want, _ := s.Get(key)
		got, ok := reloaded.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestSetDoesNotWriteUntilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	s, err := Load(path)
	require.NoError(t, err)

	s.Set(AccessKey, "ABC")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACCESS_KEY=\nSECRET_KEY=\n", string(data))

	require.NoError(t, s.Save())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACCESS_KEY=ABC\nSECRET_KEY=\n", string(data))
}

func TestCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCESS_KEY=file-access\nSECRET_KEY=file-secret\n"), 0600))
	s, err := Load(path)
	require.NoError(t, err)

	creds, err := s.Credentials(nil)
	require.NoError(t, err)
	assert.Equal(t, Credentials{AccessKey: "file-access", SecretKey: "file-secret"}, creds)

	env := map[string]string{AccessKey: "env-access", SecretKey: ""}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	creds, err = s.Credentials(lookup)
	require.NoError(t, err)
	assert.Equal(t, "env-access", creds.AccessKey)
	assert.Equal(t, "file-secret", creds.SecretKey)
}

func TestCredentialsMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	s.Set(AccessKey, "ABC")

	_, err = s.Credentials(nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConfig))
	assert.Contains(t, err.Error(), SecretKey)
	assert.Contains(t, err.Error(), "--secret-key")
}

func TestLoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIO))
}

func TestSaveKeepsLinesWithoutEquals(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nACCESS_KEY=a\r\nSECRET_KEY=b\nBARE\n"), 0600))

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# comment\nACCESS_KEY=a\nSECRET_KEY=b\nBARE\n", string(data))

	s.Set("BARE", "set")
	require.NoError(t, s.Save())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# comment\nACCESS_KEY=a\nSECRET_KEY=b\nBARE=set\n", string(data))
}
