package services

import (
	"context"
	"net/http"

	"github.com/ScheffChuk/drive-t3-s/logger"
	"github.com/ScheffChuk/drive-t3-s/repositories"
)

// RevisionService exposes the per-owner revision counter that replaced the
// original client-side refresh cookie. Mutations bump it; the presentation
// layer polls it to decide when to re-fetch.
type RevisionService interface {
	Current(ctx context.Context, ownerID string) (int64, error)
}

type revisionService struct {
	revisions repositories.RevisionRepository
}

func NewRevisionService(revisions repositories.RevisionRepository) RevisionService {
	return &revisionService{revisions: revisions}
}

func (s *revisionService) Current(ctx context.Context, ownerID string) (int64, error) {
	rev, err := s.revisions.Current(ctx, ownerID)
	if err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to read revision", err)
	}
	return rev, nil
}

// bumpOwnerRevision is best-effort: a failed bump is logged and reported as
// revision 0, it never fails the mutation that triggered it.
func bumpOwnerRevision(ctx context.Context, revisions repositories.RevisionRepository, ownerID string) int64 {
	rev, err := revisions.Bump(ctx, ownerID)
	if err != nil {
		logger.Warnf("bump revision failed for owner %s: %v", ownerID, err)
		return 0
	}
	return rev
}
