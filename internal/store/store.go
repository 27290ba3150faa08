// Package store persists one sample row per publish cadence in SQLite
// and prunes rows past the retention window eagerly after each insert.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luki/enviromon/internal/sensor"
)

// Sample is one stored reading row.
type Sample struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	Noise       float64 `json:"noise"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Humidity    float64 `json:"humidity"`
	Light       float64 `json:"light"`
	Oxidised    float64 `json:"oxidised"`
	Reduced     float64 `json:"reduced"`
	NH3         float64 `gorm:"column:nh3" json:"nh3"`
	PM1         float64 `gorm:"column:pm1" json:"pm1"`
	PM25        float64 `gorm:"column:pm25" json:"pm25"`
	PM10        float64 `gorm:"column:pm10" json:"pm10"`
}

// Store wraps the SQLite database holding the rolling sample history.
type Store struct {
	db        *gorm.DB
	retention time.Duration
}

// Open opens (creating if needed) the database at path with the given
// retention window.
func Open(path string, retention time.Duration) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Sample{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, retention: retention}, nil
}

// Append inserts one reading and immediately deletes rows older than
// the retention window.
func (s *Store) Append(t time.Time, r sensor.Reading) error {
	row := Sample{
		Timestamp:   t,
		Noise:       r[sensor.Noise],
		Temperature: r[sensor.Temperature],
		Pressure:    r[sensor.Pressure],
		Humidity:    r[sensor.Humidity],
		Light:       r[sensor.Light],
		Oxidised:    r[sensor.Oxidised],
		Reduced:     r[sensor.Reduced],
		NH3:         r[sensor.NH3],
		PM1:         r[sensor.PM1],
		PM25:        r[sensor.PM25],
		PM10:        r[sensor.PM10],
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	cutoff := t.Add(-s.retention)
	if err := s.db.Where("timestamp < ?", cutoff).Delete(&Sample{}).Error; err != nil {
		return fmt.Errorf("prune: %w", err)
	}
	return nil
}

// Count returns the number of retained rows.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.Model(&Sample{}).Count(&n).Error
	return n, err
}

// Recent returns the newest n rows, newest first.
func (s *Store) Recent(n int) ([]Sample, error) {
	var rows []Sample
	err := s.db.Order("timestamp desc").Limit(n).Find(&rows).Error
	return rows, err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
