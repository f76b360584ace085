package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/noorus/mediacms/pkg/content"
)

type mockIntros struct {
	mock.Mock
}

func (m *mockIntros) Get(ctx context.Context) (content.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.Entry), args.Error(1)
}

func (m *mockIntros) UpdateText(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

// mockList backs both iframes and sections.
type mockList struct {
	mock.Mock
}

func (m *mockList) List(ctx context.Context) ([]content.Entry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]content.Entry)
	return entries, args.Error(1)
}

func (m *mockList) Create(ctx context.Context) (content.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.Entry), args.Error(1)
}

func (m *mockList) Update(ctx context.Context, pos content.Position, body string) error {
	return m.Called(ctx, pos, body).Error(0)
}

func (m *mockList) UpdateMany(ctx context.Context, updates map[content.Position]string) error {
	return m.Called(ctx, updates).Error(0)
}

func (m *mockList) Delete(ctx context.Context, pos content.Position) error {
	return m.Called(ctx, pos).Error(0)
}
