package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lapor_publik/internal/domain/entities"
	mock_interfaces "lapor_publik/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseSMS(t *testing.T) {
	t.Run("canonical example", func(t *testing.T) {
		cmd, err := parseSMS("LAPOR#JALAN#Jl. Sudirman No 10#Jalan berlubang besar")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.category != "JALAN" || cmd.location != "Jl. Sudirman No 10" || cmd.message != "Jalan berlubang besar" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("lowercase prefix", func(t *testing.T) {
		if _, err := parseSMS("lapor#jalan#Loc#Desc"); err != nil {
			t.Fatalf("prefix must be case-insensitive, got %v", err)
		}
	})

	t.Run("description keeps extra delimiters", func(t *testing.T) {
		cmd, err := parseSMS("LAPOR#AIR#Kampung Melayu#pipa bocor # air keruh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.message != "pipa bocor # air keruh" {
			t.Fatalf("description truncated: %q", cmd.message)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		for _, text := range []string{"", "hello", "LAPOR", "LAPOR#JALAN#Loc", "REPORT#JALAN#Loc#Desc"} {
			if _, err := parseSMS(text); !errors.Is(err, ErrSMSBadFormat) {
				t.Fatalf("%q: expected ErrSMSBadFormat, got %v", text, err)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if _, err := parseSMS("LAPOR#FOO#Loc#Desc"); !errors.Is(err, entities.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("empty location", func(t *testing.T) {
		if _, err := parseSMS("LAPOR#JALAN#  #Desc"); !errors.Is(err, ErrSMSEmptyLocation) {
			t.Fatalf("expected ErrSMSEmptyLocation, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		if _, err := parseSMS("LAPOR#JALAN#Loc#  "); !errors.Is(err, ErrSMSEmptyDescription) {
			t.Fatalf("expected ErrSMSEmptyDescription, got %v", err)
		}
	})
}

func TestSanitizePhone(t *testing.T) {
	cases := map[string]string{
		"+62 812-3456-7890": "6281234567890",
		"081234567890":      "081234567890",
		"abc":               "",
	}
	for in, want := range cases {
		if got := sanitizePhone(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

// The intake path is tested against a real ReportUseCase so the round trip
// from raw SMS text to a stored PENDING_REVIEW report with its CREATED
// timeline entry runs through the one shared creation path.
func TestSMSIntakeUseCase_Ingest(t *testing.T) {
	newIntake := func(ctrl *gomock.Controller) (*SMSIntakeUseCase, *mock_interfaces.MockIReportRepository, *mock_interfaces.MockICitizenRepository) {
		reportRepo := mock_interfaces.NewMockIReportRepository(ctrl)
		citizenRepo := mock_interfaces.NewMockICitizenRepository(ctrl)
		reports := NewReportUseCase(reportRepo, nil, nil)
		intake := NewSMSIntakeUseCase(reports, citizenRepo, SMSDefaults{Latitude: -6.2, Longitude: 106.8})
		return intake, reportRepo, citizenRepo
	}

	t.Run("invalid phone", func(t *testing.T) {
		intake := NewSMSIntakeUseCase(nil, nil, SMSDefaults{})
		_, err := intake.Ingest(context.Background(), "++--", "LAPOR#JALAN#Loc#Desc")
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("parse failure creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake, _, _ := newIntake(ctrl)

		_, err := intake.Ingest(context.Background(), "08123456789", "LAPOR#FOO#Loc#Desc")
		if !errors.Is(err, entities.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("known sender round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake, reportRepo, citizenRepo := newIntake(ctrl)

		citizenRepo.EXPECT().GetByPhone(gomock.Any(), "6281234567890").Return(entities.Citizen{ID: "cit-7", Phone: "6281234567890"}, nil)
		reportRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report, created entities.TimelineEntry) (entities.Report, error) {
				if r.Category != entities.CategoryRoad {
					t.Fatalf("expected ROAD, got %s", r.Category)
				}
				if r.LocationText != "Jl. Sudirman No 10" || r.Description != "Jalan berlubang besar" {
					t.Fatalf("unexpected report fields: %+v", r)
				}
				if r.Status != entities.StatusPendingReview || r.ReporterID != "cit-7" {
					t.Fatalf("unexpected report state: %+v", r)
				}
				if r.Latitude != -6.2 || r.Longitude != 106.8 {
					t.Fatalf("default coordinates not applied: %+v", r)
				}
				if created.Event != entities.EventCreated || created.Seq != 1 {
					t.Fatalf("unexpected created entry: %+v", created)
				}
				return r, nil
			},
		)

		report, err := intake.Ingest(context.Background(), "+62 812-3456-7890", "LAPOR#JALAN#Jl. Sudirman No 10#Jalan berlubang besar")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.ID == "" {
			t.Fatalf("expected generated report id")
		}
	})

	t.Run("unknown sender is synthesized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake, reportRepo, citizenRepo := newIntake(ctrl)

		citizenRepo.EXPECT().GetByPhone(gomock.Any(), "08123456789").Return(entities.Citizen{}, nil)
		citizenRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Citizen{})).DoAndReturn(
			func(_ context.Context, c entities.Citizen) (entities.Citizen, error) {
				if c.ID == "" || c.Role != entities.RoleCitizen {
					t.Fatalf("unexpected citizen: %+v", c)
				}
				if c.Phone != "08123456789" || !strings.HasPrefix(c.Email, "08123456789@") {
					t.Fatalf("unexpected identity fields: %+v", c)
				}
				if c.PasswordHash != "" {
					t.Fatalf("synthesized citizen must have no usable password")
				}
				return c, nil
			},
		)
		reportRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Report, _ entities.TimelineEntry) (entities.Report, error) {
				return r, nil
			},
		)

		if _, err := intake.Ingest(context.Background(), "08123456789", "LAPOR#LISTRIK#Gang Mawar#tiang listrik roboh"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("citizen lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake, _, citizenRepo := newIntake(ctrl)

		citizenRepo.EXPECT().GetByPhone(gomock.Any(), "08123456789").Return(entities.Citizen{}, errors.New("db"))

		_, err := intake.Ingest(context.Background(), "08123456789", "LAPOR#JALAN#Loc#Desc")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
