package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"
)

// ISupportUseCase exposes the citizen endorsement toggle.

type ISupportUseCase interface {
	Toggle(ctx context.Context, citizenID, reportID string) (supported bool, count int, err error)
}

type SupportUseCase struct {
	repo       interfaces.ISupportRepository
	reportRepo interfaces.IReportRepository
}

var _ ISupportUseCase = (*SupportUseCase)(nil)

func NewSupportUseCase(repo interfaces.ISupportRepository, reportRepo interfaces.IReportRepository) *SupportUseCase {
	return &SupportUseCase{repo: repo, reportRepo: reportRepo}
}

// Toggle flips the caller's endorsement of a report and returns the new
// state plus the recomputed row count. A duplicate-insert race is not an
// error: the loser just re-reads the current state.
func (u *SupportUseCase) Toggle(ctx context.Context, citizenID, reportID string) (bool, int, error) {
	citizenID = strings.TrimSpace(citizenID)
	if citizenID == "" {
		return false, 0, ErrUnauthenticated
	}
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return false, 0, ErrInvalidReportID
	}

	r, err := u.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return false, 0, err
	}
	if r.ID == "" {
		return false, 0, ErrReportNotFound
	}

	exists, err := u.repo.Exists(ctx, reportID, citizenID)
	if err != nil {
		return false, 0, err
	}

	supported := !exists
	if exists {
		if err := u.repo.Remove(ctx, reportID, citizenID); err != nil {
			return false, 0, err
		}
	} else {
		err := u.repo.Add(ctx, entities.Support{
			ReportID:  reportID,
			CitizenID: citizenID,
			CreatedAt: time.Now().UTC(),
		})
		if errors.Is(err, entities.ErrDuplicateSupport) {
			// Lost a concurrent toggle; report whatever is there now.
			log.Printf("[support][usecase] duplicate insert race report_id=%s citizen_id=%s", reportID, citizenID)
			supported, err = u.repo.Exists(ctx, reportID, citizenID)
			if err != nil {
				return false, 0, err
			}
		} else if err != nil {
			return false, 0, err
		}
	}

	count, err := u.repo.CountByReportID(ctx, reportID)
	if err != nil {
		return false, 0, err
	}
	log.Printf("[support][usecase] toggle report_id=%s citizen_id=%s supported=%t count=%d", reportID, citizenID, supported, count)
	return supported, count, nil
}
