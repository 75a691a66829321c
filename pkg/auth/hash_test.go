package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "Valid Password", password: "securepassword"},
		{name: "Empty Password", password: "", expectedErr: ErrEmptyPassword},
		{name: "Short Password", password: "short", expectedErr: ErrShortPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, hashService.ComparePassword(hash, tt.password))
			assert.False(t, hashService.ComparePassword(hash, "another-password"))
		})
	}
}
