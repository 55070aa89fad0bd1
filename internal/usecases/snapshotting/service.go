package snapshotting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/salesmap-dashboard/infrastructure/repository"
	"github.com/vfg2006/salesmap-dashboard/internal/domain"
)

// ErrSnapshotsDisabled indica que não há banco configurado para as fotografias
var ErrSnapshotsDisabled = errors.New("snapshotting: fotografias do resumo desabilitadas")

type SnapshotService interface {
	ListSnapshots(ctx context.Context, limit int) ([]domain.SummarySnapshot, error)
	LatestSnapshot(ctx context.Context) (*domain.SummarySnapshot, error)
}

type SummarySnapshotService struct {
	SnapshotRepository repository.SummarySnapshotRepository
}

func NewSummarySnapshotService(snapshotRepository repository.SummarySnapshotRepository) SnapshotService {
	return &SummarySnapshotService{
		SnapshotRepository: snapshotRepository,
	}
}

func (s *SummarySnapshotService) ListSnapshots(ctx context.Context, limit int) ([]domain.SummarySnapshot, error) {
	if s.SnapshotRepository == nil {
		return nil, ErrSnapshotsDisabled
	}

	snapshots, err := s.SnapshotRepository.List(ctx, repository.NormalizeSnapshotLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "snapshotting: falha ao listar fotografias")
	}
	return snapshots, nil
}

func (s *SummarySnapshotService) LatestSnapshot(ctx context.Context) (*domain.SummarySnapshot, error) {
	if s.SnapshotRepository == nil {
		return nil, ErrSnapshotsDisabled
	}

	snapshot, err := s.SnapshotRepository.Latest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "snapshotting: falha ao buscar última fotografia")
	}
	return snapshot, nil
}
