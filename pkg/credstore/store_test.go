package credstore_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/pkg/apiclient"
	"github.com/lexluc/lexluc-platform/pkg/credstore"
)

var _ apiclient.Credentials = (*credstore.Store)(nil)

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "creds.db")
	s, err := credstore.Open(path)
	require.NoError(t, err)

	assert.Empty(t, s.Token())
	_, err = s.User()
	require.ErrorIs(t, err, credstore.ErrNoSession)

	user := json.RawMessage(`{"email":"admin@lexlucglobal.ng","role":"SUPER_ADMIN"}`)
	require.NoError(t, s.Save("jwt-token", user))
	assert.Equal(t, "jwt-token", s.Token())
	got, err := s.User()
	require.NoError(t, err)
	assert.JSONEq(t, string(user), string(got))
	require.NoError(t, s.Close())

	s, err = credstore.Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "jwt-token", s.Token(), "session survives reopen")

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err = s.User()
	require.ErrorIs(t, err, credstore.ErrNoSession)
}
