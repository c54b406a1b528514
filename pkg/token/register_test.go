package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	k := Register("TestKeywordAlpha")
	assert.True(t, k.IsDynamic())
	assert.Equal(t, "TestKeywordAlpha", k.String())

	// Registering the same name again returns the same kind.
	again := Register("TestKeywordAlpha")
	assert.Equal(t, k, again)

	got, ok := Lookup("TestKeywordAlpha")
	assert.True(t, ok)
	assert.Equal(t, k, got)
}

func TestLookupBuiltins(t *testing.T) {
	k, ok := Lookup("EOF")
	assert.True(t, ok)
	assert.Equal(t, EOF, k)

	k, ok = Lookup("ILLEGAL")
	assert.True(t, ok)
	assert.Equal(t, ILLEGAL, k)

	_, ok = Lookup("NoSuchKind")
	assert.False(t, ok)
}

func TestRegisteredKindsIsACopy(t *testing.T) {
	k := Register("TestKeywordBeta")
	kinds := RegisteredKinds()
	assert.Equal(t, "TestKeywordBeta", kinds[k])

	// Mutating the returned map must not affect the registry.
	kinds[k] = "mutated"
	assert.Equal(t, "TestKeywordBeta", k.String())
}

func TestTokenIsEOF(t *testing.T) {
	assert.True(t, Token{Kind: EOF}.IsEOF())
	assert.False(t, Token{Kind: Register("TestKeywordGamma")}.IsEOF())
}
