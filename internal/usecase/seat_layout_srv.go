package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatLayoutService interface {
	CreateSeatLayout(ctx context.Context, req *request.SeatLayoutRequest) (*response.SeatLayoutResponse, error)
	GetSeatLayouts(ctx context.Context) ([]response.SeatLayoutResponse, error)
}

type seatLayoutService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatLayoutService(repo *repository.Repository, log *zap.Logger) SeatLayoutService {
	return &seatLayoutService{
		repo: repo,
		log:  log.With(zap.String("service", "seat_layout")),
	}
}

func (s *seatLayoutService) CreateSeatLayout(ctx context.Context, req *request.SeatLayoutRequest) (*response.SeatLayoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	layout := &entity.SeatLayout{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}

	labels := layout.RowLabels()
	if msg := checkRowLabels(labels); msg != "" {
		return nil, newValidationError(map[string]string{"rows": msg})
	}
	layout.Rows = strings.Join(labels, ",")

	if err := s.repo.SeatLayout.Create(ctx, layout); err != nil {
		return nil, fmt.Errorf("create seat layout: %w", err)
	}

	s.log.Info("Seat layout created",
		zap.String("seat_layout_id", layout.ID.String()),
		zap.String("rows", layout.Rows),
		zap.Int("seats_per_row", layout.SeatsPerRow),
	)

	resp := response.SeatLayoutToResponse(layout)
	return &resp, nil
}

func (s *seatLayoutService) GetSeatLayouts(ctx context.Context) ([]response.SeatLayoutResponse, error) {
	layouts, err := s.repo.SeatLayout.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get seat layouts: %w", err)
	}

	results := make([]response.SeatLayoutResponse, len(layouts))
	for i, layout := range layouts {
		results[i] = response.SeatLayoutToResponse(layout)
	}
	return results, nil
}

// checkRowLabels keeps seat ids unambiguous: "A1" must parse to exactly one row and number.
func checkRowLabels(labels []string) string {
	if len(labels) == 0 {
		return "At least one row label is required"
	}

	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if strings.ContainsAny(label, "0123456789") {
			return fmt.Sprintf("Row label %s must not contain digits", label)
		}
		if _, ok := seen[label]; ok {
			return fmt.Sprintf("Row %s is listed more than once", label)
		}
		seen[label] = struct{}{}
	}
	return ""
}
