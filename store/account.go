package store

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

const uniqueViolationCode = "23505"

var (
	ErrEmailTaken      = fmt.Errorf("the email has already been registered")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// NormalizeEmail is the canonical form used to store and look up emails
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new email identity
func (s *TaskBridgeStore) CreateAccount(email, passwordHash string) (*schema.Account, error) {
	a := schema.Account{
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccountByEmail returns the account registered with the given email
func (s *TaskBridgeStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", NormalizeEmail(email)).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
