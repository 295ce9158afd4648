package test

import (
	"path/filepath"
	"testing"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// AdminHeader returns the Authorization header for a token with
// administrator privileges.
func AdminHeader(t *testing.T) map[string]string {
	token, err := auth.NewToken(1, models.RoleAdmin)
	if err != nil {
		assert.FailNow(t, "token could not be created", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}
