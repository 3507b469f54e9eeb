package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid MySQL connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "ims",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("In-memory sqlite", func(t *testing.T) {
		cfg := Config{
			Driver: DriverSQLite,
			Name:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestConnect_TranslatesDuplicateKey(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE lineage (id INTEGER PRIMARY KEY, version INTEGER NOT NULL UNIQUE)").Error
	assert.NoError(t, err)

	assert.NoError(t, db.Exec("INSERT INTO lineage (version) VALUES (1)").Error)

	err = db.Exec("INSERT INTO lineage (version) VALUES (1)").Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
