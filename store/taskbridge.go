package store

import (
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

//go:generate mockgen -destination=../mocks/store.go -package=mocks github.com/bitmark-inc/taskbridge-api/store TaskBridgeCore,MongoStore

// TaskBridgeCore is the relational datastore which keeps the identities
type TaskBridgeCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordHash string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
}

// TaskBridgeStore is an implementation of TaskBridgeCore
type TaskBridgeStore struct {
	ormDB *gorm.DB
}

func NewTaskBridgeStore(ormDB *gorm.DB) *TaskBridgeStore {
	return &TaskBridgeStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *TaskBridgeStore) Ping() error {
	return s.ormDB.DB().Ping()
}
