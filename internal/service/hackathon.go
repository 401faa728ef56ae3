package service

import (
	"errors"
	"strings"

	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNotOwner      = errors.New("hackathon belongs to another user")
)

type HackathonService struct {
	hackathonRepo repository.HackathonRepository
}

func NewHackathonService(hackathonRepo repository.HackathonRepository) *HackathonService {
	return &HackathonService{hackathonRepo: hackathonRepo}
}

func (s *HackathonService) Create(userID string, hackathon *model.Hackathon) error {
	hackathon.Title = strings.TrimSpace(hackathon.Title)
	if hackathon.Title == "" {
		return ErrTitleRequired
	}

	hackathon.UserID = userID
	return s.hackathonRepo.Create(hackathon)
}

func (s *HackathonService) ByUserID(userID string) ([]*model.Hackathon, error) {
	return s.hackathonRepo.ByUserID(userID)
}

// Delete removes a hackathon after verifying ownership.
func (s *HackathonService) Delete(userID, id string) error {
	hackathon, err := s.hackathonRepo.ByID(id)
	if err != nil {
		return err
	}
	if hackathon.UserID != userID {
		return ErrNotOwner
	}

	return s.hackathonRepo.Delete(id)
}
