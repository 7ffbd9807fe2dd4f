package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuboski/mediarec/pkg/storage"
	"github.com/kasuboski/mediarec/pkg/storage/storagetest"
)

func TestBadger_RoundTrip(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)
	defer b.Close()

	storagetest.RoundTrip(t, b)
	assert.Equal(t, storage.DriverBadger, b.Driver())
}

func TestBadger_InMemory(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	defer b.Close()

	storagetest.RoundTrip(t, b)
}
