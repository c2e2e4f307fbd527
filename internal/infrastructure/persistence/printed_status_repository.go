package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPrintedStatusRepository implements PrintedStatusStore using GORM
type GormPrintedStatusRepository struct {
	db *gorm.DB
}

// NewGormPrintedStatusRepository creates a new GormPrintedStatusRepository
func NewGormPrintedStatusRepository(db *gorm.DB) *GormPrintedStatusRepository {
	return &GormPrintedStatusRepository{db: db}
}

// All returns the set of order identifiers currently marked printed.
func (r *GormPrintedStatusRepository) All(ctx context.Context) (map[string]bool, error) {
	var rows []models.PrintedOrderModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	printed := make(map[string]bool, len(rows))
	for _, row := range rows {
		printed[row.OrderID] = true
	}
	return printed, nil
}

// MarkMany records the given order identifiers as printed. Re-marking an
// already printed order refreshes its timestamp and nothing else.
func (r *GormPrintedStatusRepository) MarkMany(ctx context.Context, orderIDs []string) error {
	rows := make([]models.PrintedOrderModel, 0, len(orderIDs))
	now := time.Now().UTC()
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		rows = append(rows, models.PrintedOrderModel{OrderID: id, PrintedAt: now})
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"printed_at"}),
		}).
		Create(&rows).Error
}

// UnmarkMany removes the printed marker from the given identifiers.
// Unknown identifiers are ignored.
func (r *GormPrintedStatusRepository) UnmarkMany(ctx context.Context, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Delete(&models.PrintedOrderModel{}).Error
}

// ClearAll removes every printed marker.
func (r *GormPrintedStatusRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.PrintedOrderModel{}).Error
}

// Ensure GormPrintedStatusRepository implements PrintedStatusStore
var _ fulfillment.PrintedStatusStore = (*GormPrintedStatusRepository)(nil)
