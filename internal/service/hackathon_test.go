package service

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/repository"
)

type fakeHackathonRepo struct {
	mu         sync.Mutex
	hackathons map[string]*model.Hackathon
}

func newFakeHackathonRepo() *fakeHackathonRepo {
	return &fakeHackathonRepo{hackathons: map[string]*model.Hackathon{}}
}

func (r *fakeHackathonRepo) Create(h *model.Hackathon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	clone := *h
	r.hackathons[h.ID] = &clone
	return nil
}

func (r *fakeHackathonRepo) ByUserID(userID string) ([]*model.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Hackathon
	for _, h := range r.hackathons {
		if h.UserID == userID {
			clone := *h
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeHackathonRepo) ByID(id string) (*model.Hackathon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hackathons[id]
	if !ok {
		return nil, repository.ErrHackathonNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *fakeHackathonRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hackathons[id]; !ok {
		return repository.ErrHackathonNotFound
	}
	delete(r.hackathons, id)
	return nil
}

func TestHackathonCreate(t *testing.T) {
	repo := newFakeHackathonRepo()
	svc := NewHackathonService(repo)

	h := &model.Hackathon{Title: "  HackMIT  ", Location: "Cambridge"}
	require.NoError(t, svc.Create("user-1", h))

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "user-1", h.UserID, "owner comes from the session, not the payload")
	assert.Equal(t, "HackMIT", h.Title)
}

func TestHackathonCreateBlankTitleRejected(t *testing.T) {
	svc := NewHackathonService(newFakeHackathonRepo())

	err := svc.Create("user-1", &model.Hackathon{Title: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTitleRequired))
}

func TestHackathonByUserIDScopesToOwner(t *testing.T) {
	repo := newFakeHackathonRepo()
	svc := NewHackathonService(repo)

	require.NoError(t, svc.Create("user-1", &model.Hackathon{Title: "First"}))
	require.NoError(t, svc.Create("user-1", &model.Hackathon{Title: "Second"}))
	require.NoError(t, svc.Create("user-2", &model.Hackathon{Title: "Other"}))

	list, err := svc.ByUserID("user-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, h := range list {
		assert.Equal(t, "user-1", h.UserID)
	}
}

func TestHackathonDeleteOwnershipEnforced(t *testing.T) {
	repo := newFakeHackathonRepo()
	svc := NewHackathonService(repo)

	h := &model.Hackathon{Title: "Mine"}
	require.NoError(t, svc.Create("user-1", h))

	err := svc.Delete("user-2", h.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotOwner))

	// Still there for the real owner
	require.NoError(t, svc.Delete("user-1", h.ID))

	err = svc.Delete("user-1", h.ID)
	assert.True(t, errors.Is(err, repository.ErrHackathonNotFound))
}
