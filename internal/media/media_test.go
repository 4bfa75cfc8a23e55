// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/media"
	"github.com/taibuivan/kahasolusi/internal/platform/apperr"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/internal/platform/testutil"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, filter media.Filter) ([]*media.Item, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*media.Item)
	return rows, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*media.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*media.Item)
	return item, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, payload *media.Payload) (*media.Item, error) {
	args := m.Called(ctx, payload)
	item, _ := args.Get(0).(*media.Item)
	return item, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, payload *media.Payload) (*media.Item, error) {
	args := m.Called(ctx, id, payload)
	item, _ := args.Get(0).(*media.Item)
	return item, args.Error(1)
}

func (m *mockRepository) ToggleActive(ctx context.Context, id int64) (*media.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*media.Item)
	return item, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

/*
TestService_Create_Validation checks the type and the source requirement.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload media.Payload
		field   string
	}{
		{"unknown_type", media.Payload{MediaType: "gif", Title: "Launch", MediaURL: "https://cdn.example.com/a.gif"}, "media_type"},
		{"missing_title", media.Payload{MediaType: "image", MediaURL: "https://cdn.example.com/a.png"}, "title"},
		{"image_without_url", media.Payload{MediaType: "image", Title: "Launch"}, "media_url"},
		{"embed_without_code", media.Payload{MediaType: "embed", Title: "Launch"}, "embed_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			_, err := media.NewService(repo).Create(context.Background(), &tt.payload)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

/*
TestHandler_List_Filters passes type and visibility through.
*/
func TestHandler_List_Filters(t *testing.T) {
	repo := &mockRepository{}
	repo.On("List", mock.Anything, media.Filter{MediaType: "video", IncludeInactive: true}).Return([]*media.Item{{ID: 1}}, nil)

	router := media.NewHandler(media.NewService(repo)).Routes()

	recorder := testutil.Serve(router, testutil.NewRequest(http.MethodGet, "/?type=Video&include_inactive=1", "", sec.RoleAdmin, "admin-1"))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.Serve(router, testutil.NewRequest(http.MethodGet, "/?type=gif", "", "", ""))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	repo.AssertExpectations(t)
}

/*
TestHandler_Toggle requires an editor.
*/
func TestHandler_Toggle(t *testing.T) {
	repo := &mockRepository{}
	repo.On("ToggleActive", mock.Anything, int64(5)).Return(&media.Item{ID: 5, Active: false}, nil)

	router := media.NewHandler(media.NewService(repo)).Routes()

	recorder := testutil.Serve(router, testutil.NewRequest(http.MethodPatch, "/5/toggle", "", sec.RoleViewer, "viewer-1"))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = testutil.Serve(router, testutil.NewRequest(http.MethodPatch, "/5/toggle", "", sec.RoleEditor, "editor-1"))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
