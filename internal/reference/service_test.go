// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/reference"
)

// mockRepository is a testify mock of [reference.Repository].
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, includeInactive bool) ([]*reference.Reference, error) {
	args := m.Called(ctx, includeInactive)
	rows, _ := args.Get(0).([]*reference.Reference)
	return rows, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*reference.Reference, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*reference.Reference)
	return row, args.Error(1)
}

func (m *mockRepository) FindBySlug(ctx context.Context, slug string) (*reference.Reference, error) {
	args := m.Called(ctx, slug)
	row, _ := args.Get(0).(*reference.Reference)
	return row, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, payload *reference.Payload) (*reference.Reference, error) {
	args := m.Called(ctx, payload)
	row, _ := args.Get(0).(*reference.Reference)
	return row, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, payload *reference.Payload) (*reference.Reference, error) {
	args := m.Called(ctx, id, payload)
	row, _ := args.Get(0).(*reference.Reference)
	return row, args.Error(1)
}

func (m *mockRepository) ToggleActive(ctx context.Context, id int64) (*reference.Reference, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*reference.Reference)
	return row, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

/*
TestService_Create_DerivesSlug fills an empty slug from the name.
*/
func TestService_Create_DerivesSlug(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(payload *reference.Payload) bool {
		return payload.Name == "Sistem Informasi Desa" && payload.Slug == "sistem-informasi-desa"
	})).Return(&reference.Reference{ID: 4, Name: "Sistem Informasi Desa", Slug: "sistem-informasi-desa", Active: true}, nil)

	service := reference.NewService(reference.KindCategory, repo)
	created, err := service.Create(context.Background(), &reference.Payload{Name: "  Sistem Informasi Desa "})

	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	repo.AssertExpectations(t)
}

/*
TestService_Create_Validation rejects bad payloads before storage.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload reference.Payload
		field   string
	}{
		{"missing_name", reference.Payload{}, reference.FieldName},
		{"symbols_only_name", reference.Payload{Name: "***"}, reference.FieldSlug},
		{"bad_slug", reference.Payload{Name: "Go", Slug: "Go Lang"}, reference.FieldSlug},
		{"relative_logo", reference.Payload{Name: "Go", LogoURL: "logo.png"}, reference.FieldLogoURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			service := reference.NewService(reference.KindTechnology, repo)

			_, err := service.Create(context.Background(), &tt.payload)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

/*
TestService_Update_PassesThroughErrors surfaces storage classification untouched.
*/
func TestService_Update_PassesThroughErrors(t *testing.T) {
	repo := &mockRepository{}
	repo.On("Update", mock.Anything, int64(3), mock.Anything).Return(nil, apperr.Conflict("Record already exists"))

	service := reference.NewService(reference.KindClient, repo)
	_, err := service.Update(context.Background(), 3, &reference.Payload{Name: "Desa Wisata", Slug: "desa-wisata"})

	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestService_Lifecycle covers toggle, slug lookup and delete.
*/
func TestService_Lifecycle(t *testing.T) {
	repo := &mockRepository{}
	repo.On("ToggleActive", mock.Anything, int64(2)).Return(&reference.Reference{ID: 2, Active: false}, nil)
	repo.On("FindBySlug", mock.Anything, "govtech").Return(&reference.Reference{ID: 1, Slug: "govtech"}, nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(apperr.NotFound("Client"))

	service := reference.NewService(reference.KindClient, repo)
	ctx := context.Background()

	toggled, err := service.ToggleActive(ctx, 2)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	found, err := service.GetBySlug(ctx, " govtech ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)

	assert.True(t, apperr.HasCode(service.Delete(ctx, 9), apperr.CodeNotFound))
	assert.Equal(t, reference.KindClient, service.Kind())
}

/*
TestKind_Label names the resource in error messages.
*/
func TestKind_Label(t *testing.T) {
	assert.Equal(t, "Category", reference.KindCategory.Label())
	assert.Equal(t, "Technology", reference.KindTechnology.Label())
	assert.Equal(t, "Client", reference.KindClient.Label())
	assert.True(t, (&reference.Reference{PortfolioCount: 2}).InUse())
}
