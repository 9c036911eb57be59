package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "dependent", "family", "professional"} {
		r, err := ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	for _, s := range []string{"", "Admin", "superuser", "dependente"} {
		_, err := ParseRole(s)
		assert.Error(t, err, "role %q", s)
	}
}
