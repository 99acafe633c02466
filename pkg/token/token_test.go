package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matimeline/eventmanager-api/pkg/token"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testIssuer  = "eventmanager-test"
	testSubject = "alice"
	testRole    = "user"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService() *token.Service {
	return token.New(testSecret, 48*time.Hour, time.Hour, testIssuer)
}

// Caso 1: Issue + Verify antes de expirar → identidad con sub y role.
func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newTestService()

	raw, err := svc.Issue(testSubject, testRole, testNow)
	require.NoError(t, err, "debe emitirse un token válido")
	require.NotEmpty(t, raw)

	id, err := svc.Verify(raw, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, testSubject, id.Subject)
	assert.Equal(t, testRole, id.Role)
}

// Caso 2: la frontera de expiración es estricta: now == exp ya es expirado,
// un instante antes todavía es válido.
func TestVerify_FronteraDeExpiracion(t *testing.T) {
	svc := newTestService()
	raw, err := svc.Issue(testSubject, testRole, testNow)
	require.NoError(t, err)

	exp := testNow.Add(48 * time.Hour)

	_, err = svc.Verify(raw, exp.Add(-time.Second))
	assert.NoError(t, err, "un segundo antes de exp el token debe valer")

	_, err = svc.Verify(raw, exp)
	assert.ErrorIs(t, err, token.ErrExpiredToken, "en now == exp el token ya expiró")

	_, err = svc.Verify(raw, exp.Add(time.Hour))
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

// Caso 3: alterar un byte del segmento de firma siempre da ErrMalformedToken,
// nunca un verify falso-positivo.
func TestVerify_FirmaAlterada(t *testing.T) {
	svc := newTestService()
	raw, err := svc.Issue(testSubject, testRole, testNow)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered, testNow.Add(time.Minute))
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}

// Caso 4: un token estructuralmente inválido es malformado, no expirado.
func TestVerify_TokenBasura(t *testing.T) {
	svc := newTestService()
	_, err := svc.Verify("no.es.un-jwt", testNow)
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}

// Caso 5: un token firmado con otro secreto se rechaza como malformado.
func TestVerify_OtroSecreto(t *testing.T) {
	otro := token.New("otro-secret-completamente-distinto", 48*time.Hour, time.Hour, testIssuer)
	raw, err := otro.Issue(testSubject, testRole, testNow)
	require.NoError(t, err)

	svc := newTestService()
	_, err = svc.Verify(raw, testNow)
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}

// Caso 6: ExtractSubject funciona incluso sobre un token ya expirado
// (se usa para refresh), pero sigue exigiendo firma válida.
func TestExtractSubject_TokenExpirado(t *testing.T) {
	svc := newTestService()
	raw, err := svc.Issue(testSubject, testRole, testNow)
	require.NoError(t, err)

	// Mucho después de exp: Verify falla pero ExtractSubject no.
	muchoDespues := testNow.Add(100 * 24 * time.Hour)
	_, err = svc.Verify(raw, muchoDespues)
	require.ErrorIs(t, err, token.ErrExpiredToken)

	sub, err := svc.ExtractSubject(raw)
	require.NoError(t, err)
	assert.Equal(t, testSubject, sub)

	_, err = svc.ExtractSubject("basura")
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}

// Caso 7: Refreshable admite tokens vigentes y recién expirados (≤ gracia),
// y rechaza los que pasaron la ventana.
func TestRefreshable_VentanaDeGracia(t *testing.T) {
	svc := newTestService() // gracia de 1h
	raw, err := svc.Issue(testSubject, testRole, testNow)
	require.NoError(t, err)

	exp := testNow.Add(48 * time.Hour)

	// Vigente
	sub, err := svc.Refreshable(raw, exp.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, testSubject, sub)

	// Expirado hace 30 min: dentro de la gracia
	sub, err = svc.Refreshable(raw, exp.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, testSubject, sub)

	// Expirado hace 2h: fuera de la gracia
	_, err = svc.Refreshable(raw, exp.Add(2*time.Hour))
	assert.ErrorIs(t, err, token.ErrExpiredToken)

	// Firma alterada: malformado, sin importar el tiempo
	_, err = svc.Refreshable(raw+"x", exp)
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}
