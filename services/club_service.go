package services

import (
	"context"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/club"
)

type ClubService struct {
	store storage.Storage
}

func NewClubService(store storage.Storage) *ClubService {
	return &ClubService{store: store}
}

func (s *ClubService) GetAllClubs(ctx context.Context) ([]club.Club, error) {
	return s.store.GetClubs(ctx)
}

func (s *ClubService) GetClub(ctx context.Context, id int) (*club.Club, error) {
	return s.store.GetClub(ctx, id)
}

func (s *ClubService) GetFeaturedClubs(ctx context.Context, limit int) ([]club.Club, error) {
	return s.store.GetFeaturedClubs(ctx, limit)
}

func (s *ClubService) SearchClubs(ctx context.Context, query string) ([]club.Club, error) {
	return s.store.SearchClubs(ctx, query)
}
