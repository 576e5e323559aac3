package auditlog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new audit log entry
func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByFilter retrieves audit logs with filtering and pagination
func (r *repository) GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLog, int64, error) {
	var logs []AuditLog
	var total int64

	query := r.db.WithContext(ctx).Model(&AuditLog{})

	if filter.Action != "" {
		query = query.Where("action ILIKE ?", "%"+filter.Action+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	filter = normalizePage(filter)
	offset := (filter.Page - 1) * filter.Limit
	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// memoryRepository is used when no database is configured. It keeps the most
// recent entries and mirrors each one to the application log.
type memoryRepository struct {
	mu      sync.Mutex
	entries []AuditLog
	limit   int
	nextID  uint
}

func NewMemoryRepository(limit int) Repository {
	if limit <= 0 {
		limit = 1000
	}
	return &memoryRepository{limit: limit}
}

func (r *memoryRepository) Create(_ context.Context, entry *AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, *entry)
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}

	log.Info().
		Str("action", entry.Action).
		Str("entity_key", entry.EntityKey).
		Str("status", entry.Status).
		Str("ip", entry.IPAddress).
		RawJSON("details", entry.Details).
		Msg("📝 audit")
	return nil
}

func (r *memoryRepository) GetByFilter(_ context.Context, filter AuditLogFilter) ([]AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]AuditLog, 0)
	for _, e := range r.entries {
		if filter.Action != "" && !strings.Contains(strings.ToLower(e.Action), strings.ToLower(filter.Action)) {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.FromDate != nil && e.CreatedAt.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && e.CreatedAt.After(*filter.ToDate) {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	filter = normalizePage(filter)
	total := int64(len(matched))
	start := min((filter.Page-1)*filter.Limit, len(matched))
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func normalizePage(filter AuditLogFilter) AuditLogFilter {
	if filter.Limit <= 0 {
		filter.Limit = 20 // default limit
	}
	if filter.Page <= 0 {
		filter.Page = 1 // default page
	}
	return filter
}
