package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireSingleInstance(t *testing.T) {
	appName := "Pomodo7o-test-" + t.Name()

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(appName)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestPortFromName(t *testing.T) {
	port := portFromName("Pomodo7o")

	assert.Equal(t, port, portFromName("Pomodo7o"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestInstanceGuard_NilRelease(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestInstanceGuard_ReleaseTwice(t *testing.T) {
	guard, err := AcquireSingleInstance("Pomodo7o-test-" + t.Name())
	require.NoError(t, err)

	require.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())
}
