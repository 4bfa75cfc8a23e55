// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
)

/*
TestConstructors_StatusAndCode checks that each error kind maps to its HTTP status.
*/
func TestConstructors_StatusAndCode(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Portfolio"), apperr.CodeNotFound, http.StatusNotFound},
		{"validation", apperr.ValidationError("bad"), apperr.CodeValidation, http.StatusBadRequest},
		{"conflict", apperr.Conflict("dup"), apperr.CodeConflict, http.StatusConflict},
		{"persistence", apperr.Persistence(cause), apperr.CodePersistence, http.StatusInternalServerError},
		{"internal", apperr.Internal(cause), apperr.CodeInternal, http.StatusInternalServerError},
		{"forbidden", apperr.Forbidden("no"), apperr.CodeForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestPersistence_HidesCause ensures the driver message never becomes the client message.
*/
func TestPersistence_HidesCause(t *testing.T) {
	cause := errors.New(`duplicate key value violates unique constraint "portfolio_pkey"`)
	err := apperr.Persistence(cause)

	assert.NotContains(t, err.Error(), "portfolio_pkey")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.NotFound("Client"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Client not found", ae.Message)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeNotFound))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
