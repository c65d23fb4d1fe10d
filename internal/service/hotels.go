package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/places"
	"github.com/VIPUlNEGI1/Flight/internal/service/ports"
)

type HotelService struct {
	repo   ports.HotelRepo
	finder ports.PlaceFinder
	logger logger.Logger
}

func NewHotelService(repo ports.HotelRepo, finder ports.PlaceFinder, logger logger.Logger) *HotelService {
	return &HotelService{
		repo:   repo,
		finder: finder,
		logger: logger,
	}
}

// List returns the hotels visible to the caller: approved hotels for
// everyone, plus the caller's own and, for a super-admin, everything.
func (s *HotelService) List(caller *domain.Session) []domain.Hotel {
	var out []domain.Hotel
	for _, h := range s.repo.List() {
		if h.VisibleTo(caller) {
			out = append(out, h)
		}
	}
	return out
}

func (s *HotelService) Get(caller *domain.Session, id string) (domain.Hotel, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if !h.VisibleTo(caller) {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, nil
}

// Register creates an unapproved hotel owned by the caller. A
// super-admin's hotel is approved immediately.
func (s *HotelService) Register(caller domain.Session, h domain.Hotel) (domain.Hotel, error) {
	if caller.Role != domain.RoleHotelOwner && !caller.IsSuperAdmin() {
		return domain.Hotel{}, domain.ErrAccessDenied
	}
	if h.Name == "" {
		return domain.Hotel{}, fmt.Errorf("%w: hotel name is required", domain.ErrValidation)
	}
	if h.Location == "" {
		return domain.Hotel{}, fmt.Errorf("%w: hotel location is required", domain.ErrValidation)
	}
	if h.PricePerNight <= 0 {
		return domain.Hotel{}, fmt.Errorf("%w: pricePerNight must be positive", domain.ErrValidation)
	}

	h.OwnerEmail = caller.Email
	h.IsApproved = caller.IsSuperAdmin()

	created, err := s.repo.Add(h)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("add hotel: %w", err)
	}

	s.logger.Info("hotel registered",
		logger.String("hotel_id", created.ID),
		logger.String("owner", created.OwnerEmail),
		logger.Any("approved", created.IsApproved),
	)

	return created, nil
}

// Update replaces a hotel's editable fields. Only the owner or a
// super-admin may update; ownership and approval cannot be changed
// here by an owner.
func (s *HotelService) Update(caller domain.Session, h domain.Hotel) (domain.Hotel, error) {
	existing, err := s.repo.GetByID(h.ID)
	if err != nil {
		return domain.Hotel{}, err
	}
	if !caller.IsSuperAdmin() && existing.OwnerEmail != caller.Email {
		return domain.Hotel{}, domain.ErrAccessDenied
	}

	if !caller.IsSuperAdmin() {
		h.OwnerEmail = existing.OwnerEmail
		h.IsApproved = existing.IsApproved
	}

	updated, err := s.repo.Update(h)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("update hotel: %w", err)
	}
	return updated, nil
}

func (s *HotelService) Approve(caller domain.Session, id string) (domain.Hotel, error) {
	if !caller.IsSuperAdmin() {
		return domain.Hotel{}, domain.ErrAccessDenied
	}
	h, err := s.repo.GetByID(id)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.IsApproved = true

	approved, err := s.repo.Update(h)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("approve hotel: %w", err)
	}

	s.logger.Info("hotel approved",
		logger.String("hotel_id", id),
		logger.String("approved_by", caller.Email),
	)

	return approved, nil
}

func (s *HotelService) Delete(caller domain.Session, id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if !caller.IsSuperAdmin() && existing.OwnerEmail != caller.Email {
		return domain.ErrAccessDenied
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	s.logger.Info("hotel deleted",
		logger.String("hotel_id", id),
		logger.String("deleted_by", caller.Email),
	)
	return nil
}

// Lookup resolves a free-text property name through the external
// places API, used to pre-fill the registration form.
func (s *HotelService) Lookup(ctx context.Context, query string) ([]places.Result, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	return s.finder.Lookup(ctx, query)
}
