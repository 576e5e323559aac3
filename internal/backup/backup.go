// Package backup snapshots the key-value store to object storage as NDJSON,
// one {"key","value"} object per line.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/contact"
	"github.com/dclhub/dcl-hub-backend/internal/donation"
	"github.com/dclhub/dcl-hub-backend/internal/eventregistration"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/internal/partnership"
	"github.com/dclhub/dcl-hub-backend/internal/volunteer"
)

// ErrNoDestination is returned when backups are requested without a bucket.
var ErrNoDestination = errors.New("backup destination not configured")

// DefaultPrefixes covers every record collection and counter family.
var DefaultPrefixes = []string{
	eventregistration.KeyPrefix + ":",
	eventregistration.CountPrefix + ":",
	donation.KeyPrefix + ":",
	donation.CampaignTotalPrefix + ":",
	volunteer.KeyPrefix + ":",
	partnership.KeyPrefix + ":",
	contact.KeyPrefix + ":",
}

// Result describes a written snapshot.
type Result struct {
	Key     string    `json:"key"`
	Entries int       `json:"entries"`
	Bytes   int       `json:"bytes"`
	TakenAt time.Time `json:"takenAt"`
}

type Service interface {
	Snapshot(ctx context.Context) (*Result, error)
}

type service struct {
	store     kvstore.Store
	dest      Destination
	keyPrefix string
	prefixes  []string
	now       func() time.Time
	newID     func() string
}

// NewService snapshots store into dest under "<keyPrefix>/<timestamp>-<uuid>.ndjson".
// A nil dest makes every Snapshot fail with ErrNoDestination.
func NewService(store kvstore.Store, dest Destination, keyPrefix string) Service {
	return &service{
		store:     store,
		dest:      dest,
		keyPrefix: keyPrefix,
		prefixes:  DefaultPrefixes,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *service) Snapshot(ctx context.Context) (*Result, error) {
	if s.dest == nil {
		return nil, ErrNoDestination
	}

	takenAt := s.now().UTC()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	entries := 0
	for _, prefix := range s.prefixes {
		batch, err := s.store.GetByPrefix(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", prefix, err)
		}
		for _, e := range batch {
			if err := enc.Encode(e); err != nil {
				return nil, fmt.Errorf("encoding %s: %w", e.Key, err)
			}
		}
		entries += len(batch)
	}

	key := path.Join(s.keyPrefix, fmt.Sprintf("%s-%s.ndjson", takenAt.Format("20060102T150405Z"), s.newID()))
	if err := s.dest.Write(ctx, key, buf.Bytes()); err != nil {
		return nil, err
	}

	log.Info().Str("key", key).Int("entries", entries).Int("bytes", buf.Len()).Msg("💾 Backup written")
	return &Result{Key: key, Entries: entries, Bytes: buf.Len(), TakenAt: takenAt}, nil
}
