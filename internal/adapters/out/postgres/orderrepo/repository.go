package orderrepo

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository. tracker may be nil for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save writes the header, then inserts items and history rows that are not
// stored yet. Inside a unit of work the nested transaction becomes a savepoint.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "total_amount"}),
		}).Create(&dto).Error; err != nil {
			return err
		}

		if len(dto.Items) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Items).Error; err != nil {
				return err
			}
		}

		if len(dto.History) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// FindByID retrieves the full aggregate.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByUser returns the user's orders, oldest first. An unknown user yields an empty slice.
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "user_id = ?", userID.Bytes())
}

// FindAll returns every order, oldest first.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx)
}

// FindByStatusCreatedBefore returns orders in status placed strictly before the
// given instant. The expiry job uses it to find stale unpaid orders.
func (r *GormOrderRepository) FindByStatusCreatedBefore(
	ctx context.Context,
	status order.Status,
	before time.Time,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "status = ? AND created_at < ?", status.String(), before.UTC())
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}

	return r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("History", byPosition)
}

// find loads matching orders oldest first; conds are gorm inline conditions.
func (r *GormOrderRepository) find(ctx context.Context, conds ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).Order("created_at, id").Find(&dtos, conds...).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
