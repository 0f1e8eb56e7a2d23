package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "user@test.com", SanitizeEmail("  USER@Test.Com  "))
}

func TestValidateAndSanitizeEmail(t *testing.T) {
	email, err := ValidateAndSanitizeEmail(" Admin@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	_, err = ValidateAndSanitizeEmail("not-an-email")
	assert.Error(t, err)
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "+55 (41) 99999-0000", SanitizePhone(" +55 (41) 99999-0000 "))
	assert.Equal(t, "123456789", SanitizePhone("123456789<script>"))
}
