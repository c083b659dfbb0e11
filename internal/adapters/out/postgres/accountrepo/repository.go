package accountrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user. A duplicate email trips the unique index and comes
// back as a conflict.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing user. A full-row save, so a cleared
// verified flag is written back as false.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GetByEmail retrieves a user by email address.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormVerificationRepository implements VerificationRepository using GORM.
type GormVerificationRepository struct {
	db *gorm.DB
}

// NewGormVerificationRepository creates a new GORM verification repository.
func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Add saves a new verification code.
func (r *GormVerificationRepository) Add(ctx context.Context, aggregate *account.Verification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := verificationFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCode retrieves a verification by its one-time code.
func (r *GormVerificationRepository) GetByCode(ctx context.Context, code string) (*account.Verification, error) {
	var dto VerificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return verificationToDomain(dto)
}

// Delete removes a consumed verification.
func (r *GormVerificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&VerificationDTO{}, "id = ?", id.Bytes()).Error
}
