package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"gdhealth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReviewService(t *testing.T) (*reviewService, *fakeReviewRepo, *fakeReservationRepo) {
	t.Helper()
	reviews := newFakeReviewRepo()
	reservations := newFakeReservationRepo()
	reservations.reservations[11] = &domain.Reservation{ID: 11, ProgramDateID: 3, CustomerID: customer.ID, ProgramName: "Pilates"}
	reservations.reservations[12] = &domain.Reservation{ID: 12, ProgramDateID: 3, CustomerID: other.ID, ProgramName: "Pilates"}
	svc := NewReviewService(reviews, reservations, newTestPager(t), time.Second).(*reviewService)
	svc.now = fixedClock(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	return svc, reviews, reservations
}

func TestReviewService_Add(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.Principal
		review  domain.Review
		seed    bool
		wantErr error
	}{
		{name: "own reservation", actor: customer, review: domain.Review{ReservationID: 11, Title: " Great ", Content: "Loved it"}},
		{name: "someone else's reservation", actor: customer, review: domain.Review{ReservationID: 12, Title: "Great", Content: "Loved it"}, wantErr: domain.ErrForbidden},
		{name: "unknown reservation", actor: customer, review: domain.Review{ReservationID: 99, Title: "Great", Content: "Loved it"}, wantErr: domain.ErrNotFound},
		{name: "already reviewed", actor: customer, review: domain.Review{ReservationID: 11, Title: "Again", Content: "Twice"}, seed: true, wantErr: domain.ErrConflict},
		{name: "employee cannot review", actor: headOffice, review: domain.Review{ReservationID: 11, Title: "Great", Content: "Loved it"}, wantErr: domain.ErrForbidden},
		{name: "blank title", actor: customer, review: domain.Review{ReservationID: 11, Title: " ", Content: "Loved it"}, wantErr: domain.ErrInvalidInput},
		{name: "title too long", actor: customer, review: domain.Review{ReservationID: 11, Title: strings.Repeat("a", 101), Content: "x"}, wantErr: domain.ErrInvalidInput},
		{name: "blank content", actor: customer, review: domain.Review{ReservationID: 11, Title: "Great"}, wantErr: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviews, _ := newTestReviewService(t)
			if tt.seed {
				require.NoError(t, reviews.Create(context.Background(), &domain.Review{ReservationID: 11, CustomerID: customer.ID}))
			}
			rv := tt.review

			err := svc.Add(context.Background(), tt.actor, &rv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, rv.ID)
			assert.Equal(t, customer.ID, rv.CustomerID)
			assert.Equal(t, "Great", rv.Title)
			assert.Equal(t, "Pilates", rv.ProgramName)
		})
	}
}

func TestReviewService_UpdateDelete_ownerOnly(t *testing.T) {
	svc, reviews, _ := newTestReviewService(t)
	ctx := context.Background()
	require.NoError(t, reviews.Create(ctx, &domain.Review{ReservationID: 11, CustomerID: customer.ID, Title: "Great", Content: "Loved it"}))

	_, err := svc.Update(ctx, other, 1, "Mine now", "Hijacked")
	require.ErrorIs(t, err, domain.ErrForbidden)

	rv, err := svc.Update(ctx, customer, 1, "Edited", "Still great")
	require.NoError(t, err)
	assert.Equal(t, "Edited", rv.Title)
	assert.Equal(t, svc.now(), rv.UpdatedAt)

	_, err = svc.Update(ctx, customer, 42, "Edited", "Still great")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, other, 1), domain.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, customer, 1))
	_, err = svc.Get(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewService_ListPage(t *testing.T) {
	svc, reviews, _ := newTestReviewService(t)
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		require.NoError(t, reviews.Create(ctx, &domain.Review{ReservationID: int64(1000 + i), CustomerID: customer.ID}))
	}

	page, err := svc.ListPage(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Total)
	assert.Equal(t, 3, page.Pagination.CurrentPageNumber)
	assert.Equal(t, 3, page.Pagination.LastPageNumber)
	assert.Equal(t, 16, page.Pagination.BeginRow)
	require.Len(t, page.Items, 4)
	assert.Equal(t, int64(4), page.Items[0].ID)

	empty := NewReviewService(newFakeReviewRepo(), newFakeReservationRepo(), newTestPager(t), time.Second)
	page, err = empty.ListPage(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 1, page.Pagination.CurrentPageNumber)
}
