package court_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hanksha/tennis-booking-backend/court"
	ct_mocks "github.com/hanksha/tennis-booking-backend/court/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCourts(t *testing.T) {
	ctx := context.Background()

	t.Run("from the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ct_mocks.NewMockCourtRepository(ctrl)
		repo.EXPECT().GetActiveCourts(ctx).Return([]court.Court{{Name: "Moscone", Active: true}}, nil).Times(1)

		courts := court.NewService(repo).ListCourts(ctx)

		require.Equal(t, []court.Court{{Name: "Moscone", Active: true}}, courts)
	})

	t.Run("store error falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ct_mocks.NewMockCourtRepository(ctrl)
		repo.EXPECT().GetActiveCourts(ctx).Return(nil, errors.New("connection refused")).Times(1)

		courts := court.NewService(repo).ListCourts(ctx)

		require.Len(t, courts, len(court.DefaultNames))
		require.Equal(t, "Alice Marble", courts[0].Name)
		require.True(t, courts[0].Active)
	})

	t.Run("empty store falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ct_mocks.NewMockCourtRepository(ctrl)
		repo.EXPECT().GetActiveCourts(ctx).Return([]court.Court{}, nil).Times(1)

		require.Len(t, court.NewService(repo).ListCourts(ctx), len(court.DefaultNames))
	})
}

func TestIsKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ct_mocks.NewMockCourtRepository(ctrl)
	repo.EXPECT().GetActiveCourts(gomock.Any()).Return(nil, nil).Times(2)

	svc := court.NewService(repo)

	require.True(t, svc.IsKnown(context.Background(), " st. mary's"))
	require.False(t, svc.IsKnown(context.Background(), "Golden Gate Park"))
}
