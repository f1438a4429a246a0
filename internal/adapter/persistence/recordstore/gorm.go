package recordstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"gestao_integrada/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// recordRow mirrors recordItem for SQL backends. Cells are stored as a JSON array.
type recordRow struct {
	Sheet string `gorm:"column:sheet_name;primaryKey;size:64"`
	Row   int    `gorm:"column:row_index;primaryKey;autoIncrement:false"`
	Cells string `gorm:"column:cells;type:text;not null"`
}

func (recordRow) TableName() string {
	return "records"
}

// GormStore persists tables in a single SQL table through gorm
// (postgres or sqlite, see infrastructure/database).
type GormStore struct {
	db *gorm.DB
}

var _ interfaces.IRecordStore = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("migrate records: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) EnsureTable(ctx context.Context, table string, header []string) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing recordRow
		err := tx.Where("sheet_name = ? AND row_index = ?", table, headerRow).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec, err := newRecordRow(table, headerRow, header)
		if err != nil {
			return err
		}
		created = true
		return tx.Create(&rec).Error
	})
	return created, err
}

func (s *GormStore) Header(ctx context.Context, table string) ([]string, error) {
	var rec recordRow
	err := s.db.WithContext(ctx).Where("sheet_name = ? AND row_index = ?", table, headerRow).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	if err != nil {
		return nil, err
	}
	return decodeCells(rec.Cells)
}

func (s *GormStore) ReadAll(ctx context.Context, table string) ([]interfaces.Row, error) {
	recs, err := s.load(s.db.WithContext(ctx), table)
	if err != nil {
		return nil, err
	}
	header, err := decodeCells(recs[0].Cells)
	if err != nil {
		return nil, err
	}
	rows := make([]interfaces.Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		cells, err := decodeCells(rec.Cells)
		if err != nil {
			return nil, err
		}
		rows = append(rows, toRow(header, cells))
	}
	return rows, nil
}

func (s *GormStore) Append(ctx context.Context, table string, row []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last sql.NullInt64
		err := tx.Model(&recordRow{}).
			Where("sheet_name = ?", table).
			Select("MAX(row_index)").
			Scan(&last).Error
		if err != nil {
			return err
		}
		if !last.Valid {
			return fmt.Errorf("%w: %s", ErrTableNotFound, table)
		}
		rec, err := newRecordRow(table, int(last.Int64)+1, row)
		if err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
}

func (s *GormStore) ReplaceAll(ctx context.Context, table string, header []string, rows [][]string) error {
	recs := make([]recordRow, 0, len(rows)+1)
	for i, cells := range append([][]string{header}, rows...) {
		rec, err := newRecordRow(table, i, cells)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet_name = ?", table).Delete(&recordRow{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(recs, 100).Error
	})
}

func (s *GormStore) FindAndSetCell(ctx context.Context, table, searchValue string, column int, value string) (bool, error) {
	if column < 0 {
		return false, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recs, err := s.load(tx, table)
		if err != nil {
			return err
		}
		for _, rec := range recs[1:] {
			cells, err := decodeCells(rec.Cells)
			if err != nil {
				return err
			}
			if findRow([][]string{cells}, searchValue) < 0 {
				continue
			}
			updated, err := newRecordRow(table, rec.Row, setCell(cells, column, value))
			if err != nil {
				return err
			}
			found = true
			return tx.Model(&recordRow{}).
				Where("sheet_name = ? AND row_index = ?", table, rec.Row).
				Update("cells", updated.Cells).Error
		}
		return nil
	})
	return found, err
}

// load returns the header row first, followed by the data rows in order.
func (s *GormStore) load(db *gorm.DB, table string) ([]recordRow, error) {
	var recs []recordRow
	if err := db.Where("sheet_name = ?", table).Order("row_index ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	if len(recs) == 0 || recs[0].Row != headerRow {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return recs, nil
}

func newRecordRow(table string, row int, cells []string) (recordRow, error) {
	if cells == nil {
		cells = []string{}
	}
	b, err := json.Marshal(cells)
	if err != nil {
		return recordRow{}, err
	}
	return recordRow{Sheet: table, Row: row, Cells: string(b)}, nil
}

func decodeCells(raw string) ([]string, error) {
	var cells []string
	if err := json.Unmarshal([]byte(raw), &cells); err != nil {
		return nil, fmt.Errorf("decode cells: %w", err)
	}
	return cells, nil
}
