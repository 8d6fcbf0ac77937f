// Package sequence issues per-entity sequential ids from a row-locked table.
//
// Postgres SEQUENCE objects are not transactional: a rolled back nextval is
// lost. The registry promises gap-free ids, so each entity keeps its next id
// in a plain row that is locked FOR UPDATE and bumped inside the caller's
// transaction. Concurrent transactions queue on the row lock.
package sequence

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceDTO is one counter row.
type SequenceDTO struct {
	Entity string `gorm:"type:varchar(64);primaryKey"`
	NextID uint64 `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "id_sequences"
}

// Next returns the next id for entity and advances the counter. Called on a
// transaction handle, the reservation is undone by a rollback.
func Next(ctx context.Context, db *gorm.DB, entity string) (kernel.ID, error) {
	db = db.WithContext(ctx)

	// Seed the row on first use; a concurrent seeder wins and we read its row.
	seed := SequenceDTO{Entity: entity}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var row SequenceDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "entity = ?", entity).Error; err != nil {
		return 0, err
	}

	if err := db.Model(&SequenceDTO{}).
		Where("entity = ?", entity).
		Update("next_id", row.NextID+1).Error; err != nil {
		return 0, err
	}

	return kernel.ID(row.NextID), nil
}
