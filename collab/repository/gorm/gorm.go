package gorm

import (
	"context"
	"fmt"

	"github.com/MarisolRV/crossover/collab"
	"gorm.io/gorm"
)

type gormCollabRepository struct {
	DB *gorm.DB
}

func NewGormCollabRepository(d *gorm.DB) collab.Repository {
	return &gormCollabRepository{DB: d}
}

func (g *gormCollabRepository) Create(ctx context.Context, kind collab.Kind, record collab.Record) (*collab.Record, error) {
	n := record
	if err := g.DB.WithContext(ctx).Table(kind.ActiveTable).Select(kind.Columns()).Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (g *gormCollabRepository) Update(ctx context.Context, kind collab.Kind, record collab.Record) (*collab.Record, error) {
	u := record
	if err := g.DB.WithContext(ctx).Table(kind.ActiveTable).Where("id = ?", u.ID).Select(kind.Columns()).Updates(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *gormCollabRepository) Get(ctx context.Context, kind collab.Kind, id int) (*collab.Record, error) {
	var r collab.Record
	if err := g.DB.WithContext(ctx).Table(kind.ActiveTable).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (g *gormCollabRepository) List(ctx context.Context, kind collab.Kind) ([]collab.Record, error) {
	var r []collab.Record
	if err := g.DB.WithContext(ctx).Table(kind.ActiveTable).Find(&r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (g *gormCollabRepository) ListDeleted(ctx context.Context, kind collab.Kind) ([]collab.Record, error) {
	var r []collab.Record
	if err := g.DB.WithContext(ctx).Table(kind.DeletedTable).Find(&r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (g *gormCollabRepository) Search(ctx context.Context, kind collab.Kind, column string, term string) ([]collab.Record, error) {
	var r []collab.Record
	// column has already been resolved through the kind's schema, never
	// straight from caller input
	cond := fmt.Sprintf("%s ILIKE ?", column)
	if err := g.DB.WithContext(ctx).Table(kind.ActiveTable).Where(cond, "%"+term+"%").Find(&r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (g *gormCollabRepository) SoftDelete(ctx context.Context, kind collab.Kind, record collab.Record) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cpy := record
		// the deleted table assigns its own id
		cpy.ID = 0
		if err := tx.Table(kind.DeletedTable).Select(kind.Columns()).Create(&cpy).Error; err != nil {
			return err
		}
		if err := tx.Table(kind.ActiveTable).Where("id = ?", record.ID).Delete(&collab.Record{}).Error; err != nil {
			return err
		}
		return nil
	})
}
