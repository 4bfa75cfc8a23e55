// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/company"
	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/internal/platform/testutil"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context) (*company.Profile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*company.Profile)
	return profile, args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, payload *company.Payload, actor string) (*company.Profile, error) {
	args := m.Called(ctx, payload, actor)
	profile, _ := args.Get(0).(*company.Profile)
	return profile, args.Error(1)
}

/*
TestService_Save_Validation reports every failed tag by JSON field name.
*/
func TestService_Save_Validation(t *testing.T) {
	latitude := 120.0
	tests := []struct {
		name    string
		payload company.Payload
		field   string
	}{
		{"blank_name", company.Payload{Name: "  "}, "name"},
		{"bad_email", company.Payload{Name: "Kahasolusi", Email: "hello@"}, "email"},
		{"relative_logo", company.Payload{Name: "Kahasolusi", LogoURL: "/logo.png"}, "logo_url"},
		{"latitude_out_of_range", company.Payload{Name: "Kahasolusi", Latitude: &latitude}, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			_, err := company.NewService(repo).Save(context.Background(), &tt.payload, "editor-1")

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

/*
TestHandler_Routes covers the public read and the editor-only upsert.
*/
func TestHandler_Routes(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Get", mock.Anything).Return(nil, apperr.NotFound("Company profile")).Once()
	repo.On("Save", mock.Anything, mock.Anything, "editor-1").Return(&company.Profile{Name: "Kahasolusi"}, nil)

	router := company.NewHandler(company.NewService(repo)).Routes()

	recorder := testutil.Serve(router, testutil.NewRequest(http.MethodGet, "/", "", "", ""))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	body := `{"name":"Kahasolusi","email":"hello@kahasolusi.com","latitude":-7.8,"longitude":110.4}`

	recorder = testutil.Serve(router, testutil.NewRequest(http.MethodPut, "/", body, sec.RoleViewer, "viewer-1"))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = testutil.Serve(router, testutil.NewRequest(http.MethodPut, "/", body, sec.RoleEditor, "editor-1"))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var saved company.Profile
	testutil.DecodeData(t, recorder, &saved)
	assert.Equal(t, "Kahasolusi", saved.Name)
}
