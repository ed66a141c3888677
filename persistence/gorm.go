package persistence

import (
	"github.com/MarisolRV/crossover/collab"
	"github.com/MarisolRV/crossover/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// cosmeticColumns is the DDL shape of the cosmetic tables. Constraints are
// still enforced at write time; sizes here just keep the columns honest
type cosmeticColumns struct {
	ID                   int    `gorm:"column:id;primaryKey;autoIncrement"`
	MakeupBrand          string `gorm:"column:makeup_brand;size:50;not null"`
	Videogame            string `gorm:"column:videogame;size:50;not null"`
	CollaborationDate    string `gorm:"column:collaboration_date;size:50;not null"`
	CollaborationType    string `gorm:"column:collaboration_type;size:100;not null"`
	SalesIncreasePercent string `gorm:"column:sales_increase_percent;not null"`
	ImageURL             string `gorm:"column:image_url;size:500;not null"`
}

// videogameColumns lacks the collaboration type on purpose
type videogameColumns struct {
	ID                   int    `gorm:"column:id;primaryKey;autoIncrement"`
	Videogame            string `gorm:"column:videogame;size:50;not null"`
	MakeupBrand          string `gorm:"column:makeup_brand;size:50;not null"`
	CollaborationDate    string `gorm:"column:collaboration_date;size:50;not null"`
	SalesIncreasePercent string `gorm:"column:sales_increase_percent;not null"`
	ImageURL             string `gorm:"column:image_url;size:500;not null"`
}

func NewGorm(cfg config.Database) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// migrate creates the active and deleted table of each record kind. The
// deleted tables share their kind's schema but own their identity space
func migrate(db *gorm.DB) error {
	if err := db.Table(collab.Cosmetics.ActiveTable).AutoMigrate(&cosmeticColumns{}); err != nil {
		return err
	}
	if err := db.Table(collab.Cosmetics.DeletedTable).AutoMigrate(&cosmeticColumns{}); err != nil {
		return err
	}
	if err := db.Table(collab.Videogames.ActiveTable).AutoMigrate(&videogameColumns{}); err != nil {
		return err
	}
	if err := db.Table(collab.Videogames.DeletedTable).AutoMigrate(&videogameColumns{}); err != nil {
		return err
	}
	return nil
}
