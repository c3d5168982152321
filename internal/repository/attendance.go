package repository

import (
	"context"
	"fmt"

	"github.com/gleeclub/grease-api/internal/domain"
	"github.com/gleeclub/grease-api/internal/repository/dao"
)

type AttendanceDAO interface {
	FindByMemberAndEvent(ctx context.Context, member string, eventID uint) (dao.Attendance, error)
	FindEventAttendanceForMember(ctx context.Context, member, semester string) ([]dao.EventAttendanceRow, error)
	FindAbsenceRequestsForMember(ctx context.Context, member, semester string) ([]dao.AbsenceRequest, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) FindByMemberAndEvent(ctx context.Context, member string, eventID uint) (domain.Attendance, error) {
	found, err := r.dao.FindByMemberAndEvent(ctx, member, eventID)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("r.dao.FindByMemberAndEvent -> %w", translate(err, fmt.Sprintf("%s/%d", member, eventID)))
	}

	return attendanceDaoToDomain(found), nil
}

func (r *AttendanceRepository) FindEventAttendanceForMember(ctx context.Context, member, semester string) ([]domain.EventAttendance, error) {
	rows, err := r.dao.FindEventAttendanceForMember(ctx, member, semester)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventAttendanceForMember -> %w", err)
	}

	result := make([]domain.EventAttendance, len(rows))
	for i, row := range rows {
		result[i] = domain.EventAttendance{
			Event: domain.Event{
				ID:            row.ID,
				Name:          row.Name,
				Semester:      row.Semester,
				Type:          row.Type,
				CallTime:      row.CallTime,
				ReleaseTime:   row.ReleaseTime,
				Points:        row.Points,
				Comments:      row.Comments,
				Location:      row.Location,
				GigCount:      row.GigCount,
				DefaultAttend: row.DefaultAttend,
				Section:       row.Section,
			},
			Attendance: domain.Attendance{
				Member:       row.Member,
				EventID:      row.ID,
				ShouldAttend: row.ShouldAttend,
				DidAttend:    row.DidAttend,
				Confirmed:    row.Confirmed,
				MinutesLate:  row.MinutesLate,
			},
		}
	}
	return result, nil
}

func (r *AttendanceRepository) FindAbsenceRequestsForMember(ctx context.Context, member, semester string) ([]domain.AbsenceRequest, error) {
	found, err := r.dao.FindAbsenceRequestsForMember(ctx, member, semester)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAbsenceRequestsForMember -> %w", err)
	}

	result := make([]domain.AbsenceRequest, len(found))
	for i, req := range found {
		result[i] = domain.AbsenceRequest{
			Member:  req.Member,
			EventID: req.EventID,
			Time:    req.Time,
			Reason:  req.Reason,
			State:   domain.AbsenceRequestState(req.State),
		}
	}
	return result, nil
}

func attendanceDaoToDomain(a dao.Attendance) domain.Attendance {
	return domain.Attendance{
		Member:       a.Member,
		EventID:      a.EventID,
		ShouldAttend: a.ShouldAttend,
		DidAttend:    a.DidAttend,
		Confirmed:    a.Confirmed,
		MinutesLate:  a.MinutesLate,
	}
}
