package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := New([]byte("super-secret"), time.Hour)

	tok, err := svc.Issue(42, "alice@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.SubjectInt())
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := New([]byte("secret"), -time.Second)

	tok, err := svc.Issue(1, "a@b.c")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := New([]byte("right-secret"), time.Hour)
	verifier := New([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(7, "bob@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := New([]byte("k"), time.Hour)

	_, err := svc.Verify("not.a.jwt")
	require.Error(t, err)
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	svc := New([]byte("k"), time.Hour)

	// alg=none token with a plausible payload must not pass the parser's
	// method allow-list.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.Error(t, err)
}

func TestSubjectInt_NonNumeric(t *testing.T) {
	t.Parallel()

	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	assert.Equal(t, int64(0), c.SubjectInt())
}
