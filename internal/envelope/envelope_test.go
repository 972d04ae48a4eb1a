package envelope

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cryptoran/cryptoran-go/internal/mode"
)

type parties struct {
	recipient *Keypair
	signer    *SigningKeypair
}

func newParties(t *testing.T) parties {
	t.Helper()
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}
	sk, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}
	return parties{recipient: kp, signer: sk}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	p := newParties(t)

	tests := []struct {
		name      string
		mode      mode.Mode
		plaintext []byte
		aad       []byte
	}{
		{"CBC", mode.CBC, []byte("the quick brown fox"), []byte("header")},
		{"CTR", mode.CTR, []byte("the quick brown fox"), []byte("header")},
		{"CBC empty", mode.CBC, nil, nil},
		{"CTR empty", mode.CTR, nil, nil},
		{"CBC block aligned", mode.CBC, bytes.Repeat([]byte("x"), 32), []byte("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Seal(p.recipient.PublicKey, tt.plaintext, tt.aad, tt.mode, p.signer)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			if err := VerifySignature(env); err != nil {
				t.Fatalf("VerifySignature() error = %v", err)
			}
			if err := VerifySignatureFrom(env, p.signer.PublicKey); err != nil {
				t.Fatalf("VerifySignatureFrom() error = %v", err)
			}

			got, err := Open(env, p.recipient)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Errorf("Open() = %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestSeal_JSONRoundTrip(t *testing.T) {
	p := newParties(t)
	env, err := Seal(p.recipient.PublicKey, []byte("hello"), []byte("aad"), mode.CTR, p.signer)
	if err != nil {
		t.Fatal(err)
	}

	data, err := env.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{`"v":1`, `"ct_kem"`, `"iv"`, `"sig_pk"`, `"cipher":"AES-256-CTR"`} {
		if !bytes.Contains(data, []byte(field)) {
			t.Errorf("JSON %s missing %s", data, field)
		}
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := VerifySignature(parsed); err != nil {
		t.Fatalf("VerifySignature() error = %v", err)
	}
	got, err := Open(parsed, p.recipient)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Open() = %q, want hello", got)
	}
}

func TestSeal_Errors(t *testing.T) {
	p := newParties(t)

	if _, err := Seal(p.recipient.PublicKey, nil, nil, mode.ECB, p.signer); !errors.Is(err, mode.ErrUnsupportedMode) {
		t.Errorf("ECB error = %v, want ErrUnsupportedMode", err)
	}
	if _, err := Seal(p.recipient.PublicKey[:5], nil, nil, mode.CBC, p.signer); !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("short recipient key error = %v, want ErrInvalidPublicKeySize", err)
	}
	if _, err := Seal(p.recipient.PublicKey, nil, nil, mode.CBC, nil); !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("nil signer error = %v, want ErrInvalidPublicKeySize", err)
	}
}

func TestVerifySignature_DetectsTampering(t *testing.T) {
	p := newParties(t)

	flip := func(s string) string {
		b, err := FromBase64URL(s)
		if err != nil {
			t.Fatal(err)
		}
		b[len(b)-1] ^= 0x01
		return ToBase64URL(b)
	}

	tests := []struct {
		name   string
		tamper func(*Envelope)
	}{
		{"ciphertext", func(e *Envelope) { e.Ciphertext = flip(e.Ciphertext) }},
		{"iv", func(e *Envelope) { e.IV = flip(e.IV) }},
		{"aad", func(e *Envelope) { e.AAD = flip(e.AAD) }},
		{"ct_kem", func(e *Envelope) { e.CtKem = flip(e.CtKem) }},
		{"sig", func(e *Envelope) { e.Sig = flip(e.Sig) }},
		{"cipher", func(e *Envelope) { e.Algs.Cipher = AlgAESCBC }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Seal(p.recipient.PublicKey, []byte("payload"), []byte("aad"), mode.CTR, p.signer)
			if err != nil {
				t.Fatal(err)
			}
			tt.tamper(env)
			if err := VerifySignature(env); !errors.Is(err, ErrSignatureVerificationFailed) {
				t.Errorf("VerifySignature() error = %v, want ErrSignatureVerificationFailed", err)
			}
		})
	}
}

func TestVerifySignatureFrom_Mismatch(t *testing.T) {
	p := newParties(t)
	other, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}

	env, err := Seal(p.recipient.PublicKey, []byte("m"), nil, mode.CBC, p.signer)
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifySignatureFrom(env, other.PublicKey); !errors.Is(err, ErrSignerKeyMismatch) {
		t.Errorf("error = %v, want ErrSignerKeyMismatch", err)
	}
}

func TestNilArguments(t *testing.T) {
	p := newParties(t)
	env, err := Seal(p.recipient.PublicKey, []byte("x"), nil, mode.CBC, p.signer)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"Open nil envelope", func() error { _, err := Open(nil, p.recipient); return err }, ErrInvalidPayload},
		{"Open nil keypair", func() error { _, err := Open(env, nil); return err }, ErrInvalidSecretKeySize},
		{"VerifySignature nil", func() error { return VerifySignature(nil) }, ErrInvalidPayload},
		{"VerifySignatureFrom nil", func() error { return VerifySignatureFrom(nil, p.signer.PublicKey) }, ErrInvalidPayload},
		{"Decapsulate nil keypair", func() error {
			var kp *Keypair
			_, err := kp.Decapsulate(make([]byte, MLKEMCiphertextSize))
			return err
		}, ErrInvalidSecretKeySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpen_WrongRecipient(t *testing.T) {
	p := newParties(t)
	other, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}

	env, err := Seal(p.recipient.PublicKey, []byte("for someone else"), nil, mode.CTR, p.signer)
	if err != nil {
		t.Fatal(err)
	}
	// ML-KEM decapsulation with the wrong key yields an unrelated secret, so
	// CTR produces garbage rather than an error.
	got, err := Open(env, other)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if bytes.Equal(got, []byte("for someone else")) {
		t.Error("wrong recipient recovered the plaintext")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"not json", `{`, ErrInvalidPayload},
		{"wrong version", `{"v":2,"algs":{"kem":"ML-KEM-768","sig":"ML-DSA-65","cipher":"AES-256-CBC","kdf":"HKDF-SHA-512"}}`, ErrInvalidPayload},
		{"unknown cipher", `{"v":1,"algs":{"kem":"ML-KEM-768","sig":"ML-DSA-65","cipher":"AES-256-ECB","kdf":"HKDF-SHA-512"}}`, ErrInvalidAlgorithm},
		{"unknown kem", `{"v":1,"algs":{"kem":"X25519","sig":"ML-DSA-65","cipher":"AES-256-CBC","kdf":"HKDF-SHA-512"}}`, ErrInvalidAlgorithm},
		{"missing fields", `{"v":1,"algs":{"kem":"ML-KEM-768","sig":"ML-DSA-65","cipher":"AES-256-CBC","kdf":"HKDF-SHA-512"}}`, ErrInvalidPayload},
		{"short sig_pk", `{"v":1,"algs":{"kem":"ML-KEM-768","sig":"ML-DSA-65","cipher":"AES-256-CBC","kdf":"HKDF-SHA-512"},"ct_kem":"AA","iv":"AA","sig":"AA","sig_pk":"AAAA"}`, ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSigningPublicKey(t *testing.T) {
	p := newParties(t)

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"generated", ToBase64URL(p.signer.PublicKey), true},
		{"short", ToBase64URL(p.signer.PublicKey[:100]), false},
		{"kem key", ToBase64URL(p.recipient.PublicKey), false},
		{"not base64", "!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSigningPublicKey(tt.key); got != tt.want {
				t.Errorf("ValidateSigningPublicKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifySignature_BadEncoding(t *testing.T) {
	env := &Envelope{V: 1, CtKem: "!!!"}
	if err := VerifySignature(env); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("error = %v, want ErrInvalidPayload", err)
	}
}

func TestSuite(t *testing.T) {
	tests := []struct {
		mode    mode.Mode
		cipher  string
		wantErr bool
	}{
		{mode.CBC, AlgAESCBC, false},
		{mode.CTR, AlgAESCTR, false},
		{mode.ECB, "", true},
		{mode.Mode(0), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			algs, err := Suite(tt.mode)
			if tt.wantErr {
				if !errors.Is(err, mode.ErrUnsupportedMode) {
					t.Errorf("Suite() error = %v, want ErrUnsupportedMode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Suite() error = %v", err)
			}
			if algs.Cipher != tt.cipher {
				t.Errorf("Cipher = %q, want %q", algs.Cipher, tt.cipher)
			}
			if m, err := algs.Mode(); err != nil || m != tt.mode {
				t.Errorf("Mode() = %v, %v; want %v", m, err, tt.mode)
			}
		})
	}
}

func TestBuildTranscript(t *testing.T) {
	algs, err := Suite(mode.CBC)
	if err != nil {
		t.Fatal(err)
	}

	transcript := buildTranscript(1, algs, []byte("ct_kem"), []byte("iv"), []byte("aad"), []byte("ciphertext"), []byte("sig_pk"))
	if transcript[0] != 1 {
		t.Errorf("first byte (version) = %d, want 1", transcript[0])
	}
	for _, part := range []string{"ML-KEM-768:ML-DSA-65:AES-256-CBC:HKDF-SHA-512", HKDFContext, "ct_kem", "iv", "aad", "ciphertext", "sig_pk"} {
		if !bytes.Contains(transcript, []byte(part)) {
			t.Errorf("transcript does not contain %q", part)
		}
	}
}

func TestSetRandReaderForTesting(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(nil))
	_, err := GenerateKeypair()
	restore()
	if err == nil {
		t.Error("expected error from an exhausted random reader")
	}
	if _, err := GenerateKeypair(); err != nil {
		t.Errorf("GenerateKeypair() after restore error = %v", err)
	}
}
