package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// CreateForNewEvent adds one attendance row for every member active in the
// event's semester. It runs on tx so that it commits or rolls back with the
// event insert.
func (d *AttendanceDAO) CreateForNewEvent(ctx context.Context, tx *gorm.DB, event Event) error {
	var members []string
	result := tx.WithContext(ctx).
		Model(&ActiveSemester{}).
		Where("semester = ?", event.Semester).
		Pluck("member", &members)
	if result.Error != nil {
		return result.Error
	}
	if len(members) == 0 {
		return nil
	}

	rows := make([]Attendance, len(members))
	for i, member := range members {
		rows[i] = Attendance{
			Member:       member,
			EventID:      event.ID,
			ShouldAttend: event.DefaultAttend,
		}
	}

	return mapWriteError(tx.WithContext(ctx).Create(&rows).Error)
}

func (d *AttendanceDAO) FindByMemberAndEvent(ctx context.Context, member string, eventID uint) (Attendance, error) {
	var attendance Attendance

	result := d.db.WithContext(ctx).
		Where("member = ? AND event_id = ?", member, eventID).
		Take(&attendance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Attendance{}, ErrAttendanceNotFound
		}

		return Attendance{}, result.Error
	}

	return attendance, nil
}

// FindEventAttendanceForMember joins every event of the semester with the
// member's attendance row for it. Events without a row are left out.
func (d *AttendanceDAO) FindEventAttendanceForMember(ctx context.Context, member, semester string) ([]EventAttendanceRow, error) {
	var rows []EventAttendanceRow

	result := d.db.WithContext(ctx).
		Table("events").
		Select("events.*, attendances.member, attendances.should_attend, attendances.did_attend, "+
			"attendances.confirmed, attendances.minutes_late").
		Joins("JOIN attendances ON attendances.event_id = events.id AND attendances.member = ?", member).
		Where("events.semester = ?", semester).
		Order("events.call_time ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *AttendanceDAO) FindAbsenceRequestsForMember(ctx context.Context, member, semester string) ([]AbsenceRequest, error) {
	var requests []AbsenceRequest

	result := d.db.WithContext(ctx).
		Select("absence_requests.*").
		Joins("JOIN events ON events.id = absence_requests.event_id").
		Where("absence_requests.member = ? AND events.semester = ?", member, semester).
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}
