package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Member struct {
	Email     string `gorm:"primaryKey;size:50"`
	FirstName string `gorm:"size:25;not null"`
	LastName  string `gorm:"size:25;not null"`
	Phone     string `gorm:"size:16;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `"members_pkey"`) {
			return Member{}, ErrMemberEmailExists
		}

		return Member{}, result.Error
	}

	return member, nil
}

// AddToSemester marks the member active for semester.
func (d *MemberDAO) AddToSemester(ctx context.Context, active ActiveSemester) error {
	return mapWriteError(d.db.WithContext(ctx).Create(&active).Error)
}

func (d *MemberDAO) FindByEmail(ctx context.Context, email string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}
