package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_KeygenSealOpen(t *testing.T) {
	h := newHarness(t)
	h.write(t, "letter.txt", "post-quantum hello")

	require.NoError(t, h.run("envelope", "keygen", "-o", "alice"))
	assert.True(t, h.exists(t, "alice.kem.key"))
	assert.True(t, h.exists(t, "alice.sig.key"))

	require.NoError(t, h.run("envelope", "seal", "letter.txt", "--to", "alice.kem.key", "--signer", "alice.sig.key", "--aad", "v1"))
	assert.Contains(t, h.stdout.String(), "Envelope written to letter.txt.env")

	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(h.read(t, "letter.txt.env")), &env))
	assert.EqualValues(t, 1, env["v"])
	assert.Contains(t, env, "ct_kem")

	require.NoError(t, h.run("envelope", "open", "letter.txt.env", "-k", "alice.kem.key", "--trust", "alice.sig.key", "-o", "out"))
	assert.Equal(t, "post-quantum hello", h.read(t, "out.dec"))
}

func TestEnvelope_CBCAndUntrustedSigner(t *testing.T) {
	h := newHarness(t)
	h.write(t, "m", "hello")

	require.NoError(t, h.run("envelope", "keygen", "-o", "bob"))
	require.NoError(t, h.run("envelope", "keygen", "-o", "mallory"))
	require.NoError(t, h.run("envelope", "seal", "m", "--to", "bob.kem.key", "--signer", "mallory.sig.key", "-m", "cbc"))

	err := h.run("envelope", "open", "m.env", "-k", "bob.kem.key", "--trust", "bob.sig.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature verification failed")

	require.NoError(t, h.run("envelope", "open", "m.env", "-k", "bob.kem.key"))
	assert.Equal(t, "hello", h.read(t, "m.env.dec"))
}

func TestEnvelope_Errors(t *testing.T) {
	h := newHarness(t)
	h.write(t, "m", "hello")
	require.NoError(t, h.run("envelope", "keygen"))

	err := h.run("envelope", "seal", "m", "--to", "cryptoran.kem.key", "--signer", "cryptoran.sig.key", "-m", "ecb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported mode")

	err = h.run("envelope", "seal", "m", "--to", "cryptoran.sig.key", "--signer", "cryptoran.sig.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no KEM_PUBLIC_KEY entry")

	h.write(t, "bad.env", "{}")
	err = h.run("envelope", "open", "bad.env", "-k", "cryptoran.kem.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payload")

	assert.Error(t, h.run("envelope", "seal", "m"), "required flags")
}
