package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupReturnsSameHandleForSameName(t *testing.T) {
	r := NewRegistry()
	a := r.Lookup("svc")
	b := r.Lookup("svc")
	assert.Same(t, a, b, "repeated lookups must return the handle to mutate in place")
}

func TestLookupIsolatesNames(t *testing.T) {
	r := NewRegistry()
	assert.NotSame(t, r.Lookup("a"), r.Lookup("b"))
}

func TestRootIsTheEmptyName(t *testing.T) {
	r := NewRegistry()
	assert.Same(t, r.Root(), r.Lookup(RootName))
	assert.Equal(t, "", r.Root().Name())
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	assert.NotSame(t, a.Lookup("svc"), b.Lookup("svc"))
}

func TestDefaultRegistryIsStable(t *testing.T) {
	require.Same(t, DefaultRegistry(), DefaultRegistry())
}
