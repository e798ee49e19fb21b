package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/yukikurage/digital-meishi-api/internal/constants"
	"github.com/yukikurage/digital-meishi-api/internal/models"
)

// RecentService maintains the visitor's recently-viewed card ring. The ring
// travels in the session cookie as a comma-separated id list, most recent
// first, deduplicated and capped.
type RecentService struct {
	users *UserService
}

// NewRecentService creates a new RecentService.
func NewRecentService(users *UserService) *RecentService {
	return &RecentService{users: users}
}

// Push places id at the front of the encoded ring and returns the new
// encoding.
func (s *RecentService) Push(encoded string, id uint64) string {
	ids := s.Decode(encoded)

	updated := make([]uint64, 0, len(ids)+1)
	updated = append(updated, id)
	for _, existing := range ids {
		if existing == id {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > constants.MaxRecentCards {
		updated = updated[:constants.MaxRecentCards]
	}

	parts := make([]string, len(updated))
	for i, v := range updated {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

// Decode parses the encoded ring, dropping anything unparseable.
func (s *RecentService) Decode(encoded string) []uint64 {
	if encoded == "" {
		return nil
	}

	var ids []uint64
	for _, part := range strings.Split(encoded, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Resolve returns the users behind the encoded ring. Ids that no longer
// exist are dropped silently, so a swept card simply disappears from the
// visitor's history.
func (s *RecentService) Resolve(ctx context.Context, encoded string) ([]models.User, error) {
	ids := s.Decode(encoded)
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return s.users.ResolveMany(ctx, ids)
}
