package postgres

import (
	"context"
	"fmt"

	"carewatch/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single *gorm.DB transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewGeofenceEventRepository creates a geofence event repository bound to the transaction.
func (f *gormRepositoryFactory) NewGeofenceEventRepository() repository.GeofenceEventRepository {
	return NewGeofenceEventRepository(f.tx)
}

// NewEmergencyRepository creates an emergency repository bound to the transaction.
func (f *gormRepositoryFactory) NewEmergencyRepository() repository.EmergencyRepository {
	return NewEmergencyRepository(f.tx)
}

// NewWanderingRepository creates a wandering repository bound to the transaction.
func (f *gormRepositoryFactory) NewWanderingRepository() repository.WanderingRepository {
	return NewWanderingRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one database transaction. A returned error or a panic rolls it back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
