package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tracker_backend/internal/catalog/repository"
	"tracker_backend/internal/catalog/transport"
	"tracker_backend/platform/apperr"
	"tracker_backend/platform/logger"
)

// Default entries seeded into an empty catalog at startup.
var seedEntries = map[repository.Kind][]string{
	repository.KindStaff: {
		"Front Desk",
		"PPF Lead",
		"Workshop Manager",
		"Sales — Ayesha",
		"Sales — Rohan",
	},
	repository.KindService: {
		"Paint Protection Film",
		"Ceramic Coating",
		"Detailing",
	},
	repository.KindCategory: {
		"PPF — Peeling",
		"PPF — Bubbles",
		"Coating — Haze",
		"Fitment — Rattling",
		"Other",
	},
}

// Service provides get-or-create, delete, and list for the reference catalogs.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Add implements get-or-create: an existing case-insensitive match is
// returned instead of creating a duplicate. Two concurrent adds of the same
// new name may race past the lookup; the store's unique constraint rejects
// the loser, which then re-fetches and returns the winner (one retry).
func (s *Service) Add(ctx context.Context, kind repository.Kind, req transport.AddEntryRequest) (transport.EntryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return transport.EntryResponse{}, apperr.Validation("name is required")
	}

	existing, err := s.repo.FindByName(ctx, kind, name)
	if err == nil {
		return toEntryResponse(existing), nil
	}
	if apperr.GetKind(err) != apperr.KindNotFound {
		return transport.EntryResponse{}, err
	}

	created, err := s.repo.Create(ctx, kind, name)
	if err == nil {
		s.log.Info("catalog entry created", "kind", kind, "id", created.ID, "name", created.Name)
		return toEntryResponse(created), nil
	}
	if apperr.GetKind(err) != apperr.KindConflict {
		return transport.EntryResponse{}, err
	}

	winner, ferr := s.repo.FindByName(ctx, kind, name)
	if ferr != nil {
		// The duplicate vanished between the conflict and the re-read;
		// surface the original conflict rather than a misleading not-found.
		return transport.EntryResponse{}, err
	}
	return toEntryResponse(winner), nil
}

// Remove deletes an entry by id. Removing a missing id still succeeds.
func (s *Service) Remove(ctx context.Context, kind repository.Kind, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.log.Info("catalog entry removed", "kind", kind, "id", id)
	return nil
}

// List returns all entries of a kind, name ascending.
func (s *Service) List(ctx context.Context, kind repository.Kind) ([]transport.EntryResponse, error) {
	items, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.EntryResponse, len(items))
	for i, item := range items {
		responses[i] = toEntryResponse(item)
	}
	return responses, nil
}

// SeedDefaults inserts the fixed default set into each catalog that is
// currently empty. Called once at startup; a concurrently seeded duplicate
// is tolerated.
func (s *Service) SeedDefaults(ctx context.Context) error {
	for kind, names := range seedEntries {
		total, err := s.repo.Count(ctx, kind)
		if err != nil {
			return err
		}
		if total > 0 {
			continue
		}

		for _, name := range names {
			if _, err := s.repo.Create(ctx, kind, name); err != nil {
				if apperr.GetKind(err) == apperr.KindConflict {
					continue
				}
				return err
			}
		}
		s.log.Info("catalog seeded", "kind", kind, "entries", len(names))
	}
	return nil
}

func toEntryResponse(entry repository.Entry) transport.EntryResponse {
	return transport.EntryResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		CreatedAt: entry.CreatedAt,
	}
}
