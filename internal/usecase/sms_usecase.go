package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lapor_publik/internal/domain/entities"
	"lapor_publik/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSMSBadFormat        = errors.New("sms does not match LAPOR#CATEGORY#LOCATION#DESCRIPTION")
	ErrSMSEmptyLocation    = errors.New("sms location segment is empty")
	ErrSMSEmptyDescription = errors.New("sms description segment is empty")
	ErrInvalidPhone        = errors.New("invalid sender phone number")
)

const (
	smsPrefix       = "LAPOR"
	smsReporterName = "Reporter via SMS"
	smsEmailDomain  = "sms.laporpublik.id"
)

// SMSDefaults carries the configurable fallback coordinates used for
// SMS-originated reports, which arrive without GPS data.

type SMSDefaults struct {
	Latitude  float64
	Longitude float64
}

// ISMSIntakeUseCase normalizes a raw gateway message into the same Create
// command the web path uses. No parallel creation logic exists: every
// creation guard lives in IReportUseCase.Create.

type ISMSIntakeUseCase interface {
	Ingest(ctx context.Context, phone, text string) (entities.Report, error)
}

type SMSIntakeUseCase struct {
	reports     IReportUseCase
	citizenRepo interfaces.ICitizenRepository
	defaults    SMSDefaults
}

var _ ISMSIntakeUseCase = (*SMSIntakeUseCase)(nil)

func NewSMSIntakeUseCase(reports IReportUseCase, citizenRepo interfaces.ICitizenRepository, defaults SMSDefaults) *SMSIntakeUseCase {
	return &SMSIntakeUseCase{reports: reports, citizenRepo: citizenRepo, defaults: defaults}
}

// smsCommand is the parsed LAPOR#CATEGORY#LOCATION#DESCRIPTION payload.
type smsCommand struct {
	category string
	location string
	message  string
}

// parseSMS applies the intake grammar:
//
//	LAPOR#CATEGORY#LOCATION#DESCRIPTION
//
// The prefix match is case-insensitive and the description is everything
// after the third delimiter, rejoined, so it may itself contain '#'.
func parseSMS(text string) (smsCommand, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(strings.ToUpper(text), smsPrefix+"#") {
		return smsCommand{}, ErrSMSBadFormat
	}
	segments := strings.Split(text, "#")
	if len(segments) < 4 {
		return smsCommand{}, ErrSMSBadFormat
	}

	category := strings.ToUpper(strings.TrimSpace(segments[1]))
	if _, err := entities.ParseCategory(category); err != nil {
		return smsCommand{}, err
	}
	location := strings.TrimSpace(segments[2])
	if location == "" {
		return smsCommand{}, ErrSMSEmptyLocation
	}
	message := strings.TrimSpace(strings.Join(segments[3:], "#"))
	if message == "" {
		return smsCommand{}, ErrSMSEmptyDescription
	}

	return smsCommand{category: category, location: location, message: message}, nil
}

// sanitizePhone keeps only the digits of the sender number.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (u *SMSIntakeUseCase) Ingest(ctx context.Context, phone, text string) (entities.Report, error) {
	digits := sanitizePhone(phone)
	if digits == "" {
		return entities.Report{}, ErrInvalidPhone
	}

	cmd, err := parseSMS(text)
	if err != nil {
		log.Printf("[sms][usecase] parse failed phone=%s err=%v", digits, err)
		return entities.Report{}, err
	}

	citizen, err := u.resolveCitizen(ctx, digits)
	if err != nil {
		return entities.Report{}, err
	}

	report, err := u.reports.Create(ctx, CreateReportCommand{
		ReporterID:   citizen.ID,
		Category:     cmd.category,
		Description:  cmd.message,
		LocationText: cmd.location,
		Latitude:     u.defaults.Latitude,
		Longitude:    u.defaults.Longitude,
	})
	if err != nil {
		return entities.Report{}, err
	}
	log.Printf("[sms][usecase] ingest success phone=%s report_id=%s", digits, report.ID)
	return report, nil
}

// resolveCitizen finds the sender by phone or synthesizes a reporter-only
// identity on first contact. The placeholder email is deterministic from the
// sanitized digits; the account has no usable password.
func (u *SMSIntakeUseCase) resolveCitizen(ctx context.Context, digits string) (entities.Citizen, error) {
	existing, err := u.citizenRepo.GetByPhone(ctx, digits)
	if err != nil {
		return entities.Citizen{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	c := entities.Citizen{
		ID:        uuid.NewString(),
		Name:      smsReporterName,
		Email:     fmt.Sprintf("%s@%s", digits, smsEmailDomain),
		Phone:     digits,
		Role:      entities.RoleCitizen,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.citizenRepo.Create(ctx, c)
	if err != nil {
		return entities.Citizen{}, err
	}
	log.Printf("[sms][usecase] synthesized citizen phone=%s citizen_id=%s", digits, created.ID)
	return created, nil
}
