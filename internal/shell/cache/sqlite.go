package cache

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cachedResponse is the GORM model backing one stored response.
type cachedResponse struct {
	ID         uint   `gorm:"primaryKey"`
	Generation string `gorm:"size:128;uniqueIndex:idx_gen_key;not null"`
	RequestKey string `gorm:"size:2048;uniqueIndex:idx_gen_key;not null"`
	Status     int    `gorm:"not null"`
	Headers    string `gorm:"type:text"`
	Body       []byte `gorm:"type:blob"`
	StoredAt   time.Time
}

func (cachedResponse) TableName() string { return "cached_responses" }

// SQLiteStorage persists cache generations in a SQLite database so the
// shell survives restarts. Safe for concurrent puts; the database
// serializes writes per row.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage migrates the schema and returns a persistent Storage.
func NewSQLiteStorage(db *gorm.DB) (*SQLiteStorage, error) {
	if err := db.AutoMigrate(&cachedResponse{}); err != nil {
		return nil, fmt.Errorf("failed to migrate response cache schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Open(name string) (Generation, error) {
	return &sqliteGeneration{db: s.db, name: name}, nil
}

func (s *SQLiteStorage) Names() ([]string, error) {
	var names []string
	if err := s.db.Model(&cachedResponse{}).Distinct("generation").Pluck("generation", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list cache generations: %w", err)
	}
	return names, nil
}

func (s *SQLiteStorage) Delete(name string) error {
	if err := s.db.Where("generation = ?", name).Delete(&cachedResponse{}).Error; err != nil {
		return fmt.Errorf("failed to delete cache generation %s: %w", name, err)
	}
	return nil
}

type sqliteGeneration struct {
	db   *gorm.DB
	name string
}

func (g *sqliteGeneration) Match(key string) (*Response, bool) {
	var row cachedResponse
	err := g.db.Where("generation = ? AND request_key = ?", g.name, key).First(&row).Error
	if err != nil {
		return nil, false
	}
	header := http.Header{}
	if row.Headers != "" {
		// Corrupted header JSON degrades to a headerless response.
		_ = json.Unmarshal([]byte(row.Headers), &header)
	}
	return &Response{Status: row.Status, Header: header, Body: row.Body}, true
}

func (g *sqliteGeneration) Put(key string, resp *Response) error {
	headers, err := json.Marshal(resp.Header)
	if err != nil {
		headers = []byte("{}")
	}
	row := cachedResponse{
		Generation: g.name,
		RequestKey: key,
		Status:     resp.Status,
		Headers:    string(headers),
		Body:       resp.Body,
		StoredAt:   time.Now(),
	}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "generation"}, {Name: "request_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "headers", "body", "stored_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to store response for %s: %w", key, err)
	}
	return nil
}
