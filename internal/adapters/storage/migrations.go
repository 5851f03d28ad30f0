package storage

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// migrations returns the ordered schema migrations for the local store.
func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202605010001_create_projects",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&projectRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&projectRecord{})
			},
		},
		{
			ID: "202605010002_create_contact_submissions",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&contactRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&contactRecord{})
			},
		},
	}
}
