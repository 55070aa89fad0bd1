package snapshotting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestListSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSummarySnapshotRepository(ctrl)
	service := NewSummarySnapshotService(repo)

	stored := []domain.SummarySnapshot{
		{ID: "b", CapturedAt: time.Now()},
		{ID: "a", CapturedAt: time.Now().Add(-time.Hour)},
	}

	repo.EXPECT().List(gomock.Any(), 48).Return(stored, nil)
	repo.EXPECT().List(gomock.Any(), 10).Return(stored[:1], nil)

	got, err := service.ListSnapshots(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = service.ListSnapshots(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "b", got[0].ID)
}

func TestListSnapshots_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := errors.New("conexão recusada")
	repo := mocks.NewMockSummarySnapshotRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, cause)

	_, err := NewSummarySnapshotService(repo).ListSnapshots(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "falha ao listar fotografias")
}

func TestLatestSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSummarySnapshotRepository(ctrl)
	repo.EXPECT().Latest(gomock.Any()).Return(&domain.SummarySnapshot{ID: "x"}, nil)

	got, err := NewSummarySnapshotService(repo).LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", got.ID)
}

func TestSnapshotsDisabled(t *testing.T) {
	service := NewSummarySnapshotService(nil)

	_, err := service.ListSnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)

	_, err = service.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)
}
