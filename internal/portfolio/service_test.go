// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/portfolio"
)

// mockRepository is a testify mock of [portfolio.Repository].
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListActive(ctx context.Context, filter portfolio.Filter) ([]*portfolio.Portfolio, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*portfolio.Portfolio)
	return rows, args.Error(1)
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*portfolio.Portfolio, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*portfolio.Portfolio)
	return rows, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*portfolio.Portfolio, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*portfolio.Portfolio)
	return row, args.Error(1)
}

func (m *mockRepository) CountByRegion(ctx context.Context) ([]*portfolio.RegionGroup, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]*portfolio.RegionGroup)
	return groups, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, payload *portfolio.Payload, actor string) (int64, error) {
	args := m.Called(ctx, payload, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, payload *portfolio.Payload, actor string) error {
	return m.Called(ctx, id, payload, actor).Error(0)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) Restore(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) HardDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

/*
TestService_Create_Validation rejects bad payloads before reaching storage.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload portfolio.Payload
		field   string
	}{
		{"missing_name", portfolio.Payload{Description: "desc"}, portfolio.FieldName},
		{"blank_description", portfolio.Payload{Name: "Village Portal", Description: "   "}, portfolio.FieldDescription},
		{"relative_image_url", portfolio.Payload{Name: "n", Description: "d", ImageURL: "img.png"}, portfolio.FieldImageURL},
		{"bad_start_date", portfolio.Payload{Name: "n", Description: "d", StartDate: "01-02-2024"}, portfolio.FieldStartDate},
		{"non_positive_category", portfolio.Payload{Name: "n", Description: "d", Categories: []int64{1, 0}}, portfolio.FieldCategories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			service := portfolio.NewService(repo)

			payload := tt.payload
			_, err := service.Create(context.Background(), &payload, "editor-1")

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, detail := range ae.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

/*
TestService_Create_NormalizesPayload trims text and collapses duplicate link ids.
*/
func TestService_Create_NormalizesPayload(t *testing.T) {
	repo := &mockRepository{}
	service := portfolio.NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(payload *portfolio.Payload) bool {
		return payload.Name == "Village Portal" &&
			assert.ObjectsAreEqual([]int64{1, 2}, payload.Categories) &&
			assert.ObjectsAreEqual([]int64{5}, payload.Technologies)
	}), "editor-1").Return(int64(7), nil)

	payload := &portfolio.Payload{
		Name:         "  Village Portal ",
		Description:  "desc",
		Categories:   []int64{1, 2, 1},
		Technologies: []int64{5, 5},
	}

	id, err := service.Create(context.Background(), payload, "editor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	repo.AssertExpectations(t)
}

/*
TestService_Create_PropagatesPersistence surfaces storage failures unchanged in kind.
*/
func TestService_Create_PropagatesPersistence(t *testing.T) {
	repo := &mockRepository{}
	service := portfolio.NewService(repo)

	failure := apperr.Persistence(assert.AnError)
	repo.On("Create", mock.Anything, mock.Anything, "").Return(int64(0), failure)

	_, err := service.Create(context.Background(), &portfolio.Payload{Name: "n", Description: "d"}, "")
	assert.True(t, apperr.HasCode(err, apperr.CodePersistence))
	repo.AssertNumberOfCalls(t, "Create", 1)
}

/*
TestService_Update returns the stored aggregate and maps missing rows to NotFound.
*/
func TestService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockRepository{}
		service := portfolio.NewService(repo)

		stored := &portfolio.Portfolio{ID: 3, Name: "Village Portal v2", CategoryNames: []string{"GovTech"}}
		repo.On("Update", mock.Anything, int64(3), mock.Anything, "editor-1").Return(nil)
		repo.On("FindByID", mock.Anything, int64(3)).Return(stored, nil)

		got, err := service.Update(context.Background(), 3, &portfolio.Payload{Name: "Village Portal v2", Description: "desc2", Categories: []int64{3}}, "editor-1")
		require.NoError(t, err)
		assert.Same(t, stored, got)
	})

	t.Run("not_found", func(t *testing.T) {
		repo := &mockRepository{}
		service := portfolio.NewService(repo)

		repo.On("Update", mock.Anything, int64(99), mock.Anything, "").Return(apperr.NotFound("Portfolio"))

		_, err := service.Update(context.Background(), 99, &portfolio.Payload{Name: "n", Description: "d"}, "")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

/*
TestService_ListActive rejects negative limits and forwards trimmed filters.
*/
func TestService_ListActive(t *testing.T) {
	repo := &mockRepository{}
	service := portfolio.NewService(repo)

	_, err := service.ListActive(context.Background(), portfolio.Filter{Limit: -1})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	want := []*portfolio.Portfolio{{ID: 1, Featured: true}}
	repo.On("ListActive", mock.Anything, portfolio.Filter{CategorySlug: "govtech", FeaturedOnly: true, Limit: 3}).Return(want, nil)

	got, err := service.ListActive(context.Background(), portfolio.Filter{CategorySlug: " govtech ", FeaturedOnly: true, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

/*
TestService_Purge requires the confirmation to match the id.
*/
func TestService_Purge(t *testing.T) {
	repo := &mockRepository{}
	service := portfolio.NewService(repo)

	err := service.Purge(context.Background(), 12, "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	err = service.Purge(context.Background(), 12, "13")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	repo.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)

	repo.On("HardDelete", mock.Anything, int64(12)).Return(nil)
	require.NoError(t, service.Purge(context.Background(), 12, "12"))
	repo.AssertExpectations(t)
}

/*
TestService_SoftDeleteRestore forwards lifecycle calls and returns the restored row.
*/
func TestService_SoftDeleteRestore(t *testing.T) {
	repo := &mockRepository{}
	service := portfolio.NewService(repo)

	restored := &portfolio.Portfolio{ID: 4, Active: true}
	repo.On("SoftDelete", mock.Anything, int64(4)).Return(nil)
	repo.On("Restore", mock.Anything, int64(4)).Return(nil)
	repo.On("FindByID", mock.Anything, int64(4)).Return(restored, nil)
	repo.On("Restore", mock.Anything, int64(5)).Return(apperr.NotFound("Portfolio"))

	require.NoError(t, service.SoftDelete(context.Background(), 4))

	got, err := service.Restore(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = service.Restore(context.Background(), 5)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
