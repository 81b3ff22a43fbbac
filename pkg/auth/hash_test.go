package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectedErr error
		expectError bool
	}{
		{
			name:     "Shortest accepted at registration",
			password: "depot-01",
		},
		{
			name:     "Dispatcher passphrase",
			password: "north tank refill 2024",
		},
		{
			name:     "Multibyte characters",
			password: "säiliö-pohjoinen",
		},
		{
			name:     "Longest bcrypt accepts",
			password: strings.Repeat("d", 72),
		},
		{
			name:        "Past bcrypt limit",
			password:    strings.Repeat("d", 73),
			expectedErr: bcrypt.ErrPasswordTooLong,
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashedPassword)
			case tt.expectError:
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, tt.password, hashedPassword)
				cost, err := bcrypt.Cost([]byte(hashedPassword))
				require.NoError(t, err)
				assert.Equal(t, bcrypt.DefaultCost, cost)
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	hashService := &HashService{}

	first, err := hashService.HashPassword("depot-01")
	require.NoError(t, err)
	second, err := hashService.HashPassword("depot-01")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hashService.ComparePassword(first, "depot-01"))
	assert.True(t, hashService.ComparePassword(second, "depot-01"))
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}
	stored, err := hashService.HashPassword("north tank refill 2024")
	require.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{
			name:           "Login with registered password",
			password:       "north tank refill 2024",
			hashedPassword: stored,
			expectMatch:    true,
		},
		{
			name:           "Different case",
			password:       "North Tank Refill 2024",
			hashedPassword: stored,
		},
		{
			name:           "Trailing space",
			password:       "north tank refill 2024 ",
			hashedPassword: stored,
		},
		{
			name:           "Plain text in hash column",
			password:       "north tank refill 2024",
			hashedPassword: "north tank refill 2024",
		},
		{
			name:     "User without hash",
			password: "north tank refill 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := hashService.ComparePassword(tt.hashedPassword, tt.password)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
