package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
	"github.com/babyBee3443/biogenius-sub001/internal/service"
	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

func TestStatusVisibleTo(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status domain.Status
		want   bool
	}{
		{"published visible to anonymous", "", domain.StatusPublished, true},
		{"published visible to user", "user", domain.StatusPublished, true},
		{"ready visible to admin", "admin", domain.StatusReady, true},
		{"ready visible to editor", "editor", domain.StatusReady, true},
		{"ready visible to editor with odd casing", " Editor ", domain.StatusReady, true},
		{"ready hidden from user", "user", domain.StatusReady, false},
		{"ready hidden from anonymous", "", domain.StatusReady, false},
		{"draft hidden from admin", "admin", domain.StatusDraft, false},
		{"in review hidden from editor", "editor", domain.StatusInReview, false},
		{"archived hidden from everyone", "admin", domain.StatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.StatusVisibleTo(tt.role, tt.status))
		})
	}
}

func TestArticleService_ListVisible(t *testing.T) {
	repo := repository.NewArticleRepository(newTestKV(t))
	svc := service.NewArticleService(repo, validator.NewValidator(), nil)
	ctx := context.Background()

	mk := func(title string, status domain.Status) {
		_, err := svc.Create(ctx, domain.Article{
			Title:    title,
			Slug:     domain.CategoryIDFromName(title),
			Category: "Genetik",
			Status:   status,
		})
		require.NoError(t, err)
	}

	mk("Yayında", domain.StatusPublished)
	mk("Hazır", domain.StatusReady)
	mk("Taslak", domain.StatusDraft)
	mk("Arşiv", domain.StatusArchived)

	titles := func(role string) []string {
		var out []string
		for _, a := range svc.ListVisible(ctx, role) {
			out = append(out, a.Title)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Yayında"}, titles(""))
	assert.ElementsMatch(t, []string{"Yayında"}, titles("user"))
	assert.ElementsMatch(t, []string{"Yayında", "Hazır"}, titles("editor"))
	assert.ElementsMatch(t, []string{"Yayında", "Hazır"}, titles("admin"))

	assert.Len(t, svc.ListAll(ctx), 4)
}

func TestArticleService_GetRespectsVisibility(t *testing.T) {
	repo := repository.NewArticleRepository(newTestKV(t))
	svc := service.NewArticleService(repo, validator.NewValidator(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Article{
		Title:    "Hazır Makale",
		Slug:     "hazir-makale",
		Category: "Ekoloji",
		Status:   domain.StatusReady,
	})
	require.NoError(t, err)

	assert.Nil(t, svc.Get(ctx, created.ID, ""))
	assert.Nil(t, svc.Get(ctx, created.ID, "user"))
	assert.NotNil(t, svc.Get(ctx, created.ID, "editor"))
	assert.NotNil(t, svc.GetBySlug(ctx, "hazir-makale", "admin"))
	assert.Nil(t, svc.GetBySlug(ctx, "hazir-makale", ""))
	assert.NotNil(t, svc.GetAny(ctx, created.ID))
}
