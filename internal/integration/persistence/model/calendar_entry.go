// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// CalendarEntryModel represents the calendar_entries table in the database.
type CalendarEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CalendarEntryModel.
func (CalendarEntryModel) TableName() string {
	return "calendar_entries"
}

// ToEntity converts a CalendarEntryModel to a domain CalendarEntry entity.
func (m *CalendarEntryModel) ToEntity() *entity.CalendarEntry {
	return &entity.CalendarEntry{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// CalendarEntryFromEntity creates a CalendarEntryModel from a domain CalendarEntry.
func CalendarEntryFromEntity(entry *entity.CalendarEntry) *CalendarEntryModel {
	return &CalendarEntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Title:       entry.Title,
		Description: entry.Description,
		Date:        entry.Date,
		CreatedAt:   entry.CreatedAt,
	}
}
