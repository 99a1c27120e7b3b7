package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jdrosales/autopartes-api/pkg/jwt"
)

const (
	testSecret = "secret-de-pruebas-unitarias"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testSedeID = "00000000-0000-0000-0000-000000000002"
	testIssuer = "autopartes-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testSedeID, "bodeguero", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, sedeID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testSedeID, sedeID)
	assert.Equal(t, "bodeguero", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testSedeID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testSedeID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testSedeID, "admin", testIssuer, 60)
	assert.Error(t, err)
}
