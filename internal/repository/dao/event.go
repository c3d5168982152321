package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const eventWithGigColumns = "events.id, events.name, events.semester, events.type, events.call_time, " +
	"events.release_time, events.points, events.comments, events.location, events.gig_count, " +
	"events.default_attend, events.section, gigs.event_id AS gig_event_id, gigs.performance_time, " +
	"gigs.uniform_id, gigs.contact_name, gigs.contact_email, gigs.contact_phone, gigs.price, " +
	"gigs.public, gigs.summary, gigs.description"

// AttendanceWriter creates the attendance rows of a new event inside the
// transaction that inserts the event.
type AttendanceWriter interface {
	CreateForNewEvent(ctx context.Context, tx *gorm.DB, event Event) error
}

type EventDAO struct {
	db         *gorm.DB
	attendance AttendanceWriter
}

func NewEventDAO(db *gorm.DB, attendance AttendanceWriter) *EventDAO {
	return &EventDAO{
		db:         db,
		attendance: attendance,
	}
}

func (d *EventDAO) withGig(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Table("events").
		Select(eventWithGigColumns).
		Joins("LEFT JOIN gigs ON gigs.event_id = events.id")
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (EventWithGigRow, error) {
	var rows []EventWithGigRow

	result := d.withGig(ctx).Where("events.id = ?", id).Limit(1).Scan(&rows)
	if result.Error != nil {
		return EventWithGigRow{}, result.Error
	}
	if len(rows) == 0 {
		return EventWithGigRow{}, ErrEventNotFound
	}

	return rows[0], nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]EventWithGigRow, error) {
	var rows []EventWithGigRow

	result := d.withGig(ctx).Order("events.call_time DESC").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *EventDAO) FindBySemester(ctx context.Context, semester string) ([]EventWithGigRow, error) {
	var rows []EventWithGigRow

	result := d.withGig(ctx).
		Where("events.semester = ?", semester).
		Order("events.call_time DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *EventDAO) FindBySemesterAndType(ctx context.Context, semester, eventType string) ([]EventWithGigRow, error) {
	var rows []EventWithGigRow

	result := d.withGig(ctx).
		Where("events.semester = ? AND events.type = ?", semester, eventType).
		Order("events.call_time DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// FindOfTypeSpanning returns the events of a type in a semester that start
// after start and are released after end, earliest first.
func (d *EventDAO) FindOfTypeSpanning(ctx context.Context, semester, eventType string, start, end time.Time) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("semester = ? AND type = ?", semester, eventType).
		Where("call_time > ? AND release_time > ?", start, end).
		Order("call_time ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// InsertOccurrences inserts every event with its attendance rows, and a copy
// of gig for each when gig is not nil, in one transaction. When gigRequestID
// is set, that request is linked to the last inserted event and accepted; it
// must still be pending when the transaction commits.
// The returned ids are in insertion order.
func (d *EventDAO) InsertOccurrences(ctx context.Context, events []Event, gig *Gig, gigRequestID *uint) ([]uint, error) {
	ids := make([]uint, 0, len(events))

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, event := range events {
			event.ID = 0
			if err := tx.Create(&event).Error; err != nil {
				return fmt.Errorf("tx.Create event -> %w", mapWriteError(err))
			}
			if event.ID == 0 {
				return ErrNoEventCreated
			}

			if err := d.attendance.CreateForNewEvent(ctx, tx, event); err != nil {
				return fmt.Errorf("d.attendance.CreateForNewEvent -> %w", err)
			}

			if gig != nil {
				newGig := *gig
				newGig.EventID = event.ID
				if err := tx.Create(&newGig).Error; err != nil {
					return fmt.Errorf("tx.Create gig -> %w", mapWriteError(err))
				}
			}

			ids = append(ids, event.ID)
		}

		if len(ids) == 0 {
			return ErrNoEventCreated
		}

		if gigRequestID != nil {
			result := tx.Model(&GigRequest{}).
				Where("id = ? AND status = ?", *gigRequestID, GigRequestPending).
				Updates(map[string]any{
					"event_id": ids[len(ids)-1],
					"status":   GigRequestAccepted,
				})
			if result.Error != nil {
				return fmt.Errorf("tx.Update gig request -> %w", mapWriteError(result.Error))
			}
			if result.RowsAffected == 0 {
				var found int64
				if err := tx.Model(&GigRequest{}).Where("id = ?", *gigRequestID).Count(&found).Error; err != nil {
					return fmt.Errorf("tx.Count gig request -> %w", err)
				}
				if found == 0 {
					return ErrGigRequestNotFound
				}
				return ErrGigRequestNotPending
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// Update rewrites the event's columns and, when gig is not nil, its gig row.
// insertGig selects between inserting a new gig row and updating the
// existing one.
func (d *EventDAO) Update(ctx context.Context, event Event, gig *Gig, insertGig bool) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if gig != nil {
			if insertGig {
				if err := tx.Create(gig).Error; err != nil {
					return fmt.Errorf("tx.Create gig -> %w", mapWriteError(err))
				}
			} else {
				result := tx.Model(&Gig{}).
					Where("event_id = ?", event.ID).
					Updates(map[string]any{
						"performance_time": gig.PerformanceTime,
						"uniform_id":       gig.UniformID,
						"contact_name":     gig.ContactName,
						"contact_email":    gig.ContactEmail,
						"contact_phone":    gig.ContactPhone,
						"price":            gig.Price,
						"public":           gig.Public,
						"summary":          gig.Summary,
						"description":      gig.Description,
					})
				if result.Error != nil {
					return fmt.Errorf("tx.Update gig -> %w", mapWriteError(result.Error))
				}
				if result.RowsAffected == 0 {
					return ErrEventNotFound
				}
			}
		}

		result := tx.Model(&Event{}).
			Where("id = ?", event.ID).
			Updates(map[string]any{
				"name":           event.Name,
				"semester":       event.Semester,
				"type":           event.Type,
				"call_time":      event.CallTime,
				"release_time":   event.ReleaseTime,
				"points":         event.Points,
				"comments":       event.Comments,
				"location":       event.Location,
				"gig_count":      event.GigCount,
				"default_attend": event.DefaultAttend,
				"section":        event.Section,
			})
		if result.Error != nil {
			return fmt.Errorf("tx.Update event -> %w", mapWriteError(result.Error))
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

// Delete removes the event row. Gig, attendance and absence request rows go
// with it through the foreign keys' ON DELETE CASCADE.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
