// Package accountrepo persists user accounts and their one-time email
// verification codes.
package accountrepo

import (
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;uniqueIndex"`
	PasswordHash []byte    `gorm:"type:bytea"`
	Role         string    `gorm:"type:text"`
	Verified     bool
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// VerificationDTO represents a pending email verification code.
type VerificationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code   string    `gorm:"type:text;uniqueIndex"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for verifications.
func (VerificationDTO) TableName() string {
	return "verifications"
}

func userFromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Verified:     aggregate.Verified(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.PasswordHash, role, dto.Verified)
}

func verificationFromDomain(aggregate *account.Verification) VerificationDTO {
	return VerificationDTO{
		ID:     aggregate.ID().Bytes(),
		Code:   aggregate.Code(),
		UserID: aggregate.UserID().Bytes(),
	}
}

func verificationToDomain(dto VerificationDTO) (*account.Verification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreVerification(id, dto.Code, userID)
}
