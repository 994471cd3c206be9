package configure

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/cmdenv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv() (*cmdenv.Env, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &cmdenv.Env{
		Stdin:     &bytes.Buffer{},
		Stdout:    stdout,
		Stderr:    stderr,
		LookupEnv: func(string) (string, bool) { return "", false },
	}, stdout, stderr
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSetKeysInTwoRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BUCKET_HINT=photos\nACCESS_KEY=\nSECRET_KEY=\n"), 0600))

	env, stdout, stderr := newEnv()
	assert.Equal(t, apperr.ExitOK, Run([]string{"--access-key", "ABC", "--config", path}, env), stderr.String())
	assert.Equal(t, apperr.ExitOK, Run([]string{"--secret-key", "XYZ", "--config", path}, env), stderr.String())

	assert.Equal(t, "BUCKET_HINT=photos\nACCESS_KEY=ABC\nSECRET_KEY=XYZ\n", readFile(t, path))
	assert.Contains(t, stdout.String(), "Credentials saved to "+path)
}

func TestCreatesFileOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	env, _, _ := newEnv()
	assert.Equal(t, apperr.ExitOK, Run([]string{"--secret-key=XYZ", "--config", path}, env))
	assert.Equal(t, "ACCESS_KEY=\nSECRET_KEY=XYZ\n", readFile(t, path))
}

func TestBothKeysAtOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	env, _, _ := newEnv()
	assert.Equal(t, apperr.ExitOK, Run([]string{"--access-key", "ABC", "--secret-key", "XYZ", "--config", path}, env))
	assert.Equal(t, "ACCESS_KEY=ABC\nSECRET_KEY=XYZ\n", readFile(t, path))
}

func TestUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--token", "ABC"}},
		{"positional", []string{"access-key", "ABC"}},
		{"connection flag", []string{"--region", "eu-west-1", "--access-key", "ABC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			env, _, stderr := newEnv()

			code := Run(append(tt.args, "--config", path), env)
			assert.Equal(t, apperr.ExitOK, code)
			assert.Contains(t, stderr.String(), msgUnknownCommand)

			_, err := os.Stat(path)
			assert.True(t, os.IsNotExist(err), "nothing should be written")
		})
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"--access-key"}} {
		env, _, stderr := newEnv()
		path := filepath.Join(t.TempDir(), ".env")
		assert.Equal(t, apperr.ExitUsage, Run(append([]string{"--config", path}, args...), env))
		assert.Contains(t, stderr.String(), "Usage: s3-cloud config")
	}
}

func TestInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCESS_KEY=OLD\nSECRET_KEY=OLDSECRET\nEXTRA=1\n"), 0600))

	env, _, _ := newEnv()
	var gotAccess, gotSecret string
	env.Prompt = func(in io.Reader, out io.Writer, accessKey, secretKey string) (string, string, error) {
		gotAccess, gotSecret = accessKey, secretKey
		return "NEW", "NEWSECRET", nil
	}

	assert.Equal(t, apperr.ExitOK, Run([]string{"-i", "--access-key", "FLAG", "--config", path}, env))
	assert.Equal(t, "FLAG", gotAccess)
	assert.Equal(t, "OLDSECRET", gotSecret)
	assert.Equal(t, "ACCESS_KEY=NEW\nSECRET_KEY=NEWSECRET\nEXTRA=1\n", readFile(t, path))
}

func TestInteractiveCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACCESS_KEY=OLD\nSECRET_KEY=OLDSECRET\n"), 0600))

	env, _, stderr := newEnv()
	env.Prompt = func(io.Reader, io.Writer, string, string) (string, string, error) {
		return "", "", ErrCancelled
	}

	assert.Equal(t, apperr.ExitFailure, Run([]string{"--interactive", "--config", path}, env))
	assert.Contains(t, stderr.String(), "nothing saved")
	assert.Equal(t, "ACCESS_KEY=OLD\nSECRET_KEY=OLDSECRET\n", readFile(t, path))
}
