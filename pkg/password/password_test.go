package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/pkg/password"
)

func TestHashVerify(t *testing.T) {
	h, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", h, "nunca se guarda en claro")
	assert.True(t, password.Verify(h, "admin123"))
	assert.False(t, password.Verify(h, "admin124"))
	assert.False(t, password.Verify("no-es-un-hash", "admin123"))
}

func TestHash_Vacia(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmpty)
}
