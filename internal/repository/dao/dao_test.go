package dao

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSemester = "Fall 2026"

// newTestDB opens a private in-memory database with every table created.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

// seed adds the current semester with two active members, a member of
// another semester and a uniform.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	start := time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]Semester{
		{Name: testSemester, StartDate: start, EndDate: start.AddDate(0, 4, 0), GigRequirement: 5, IsCurrent: true},
		{Name: "Spring 2026", StartDate: start.AddDate(0, -7, 0), EndDate: start.AddDate(0, -3, 0), GigRequirement: 5},
	}).Error)

	require.NoError(t, db.Create(&[]Member{
		{Email: "alto@example.com", FirstName: "Ada", LastName: "Alto", Phone: "4045550101"},
		{Email: "bass@example.com", FirstName: "Bo", LastName: "Bass", Phone: "4045550102"},
		{Email: "gone@example.com", FirstName: "Gil", LastName: "Gone", Phone: "4045550103"},
	}).Error)

	require.NoError(t, db.Create(&[]ActiveSemester{
		{Member: "alto@example.com", Semester: testSemester, Enrollment: "class"},
		{Member: "bass@example.com", Semester: testSemester, Enrollment: "club"},
		{Member: "gone@example.com", Semester: "Spring 2026", Enrollment: "club"},
	}).Error)

	require.NoError(t, db.Create(&Uniform{ID: 1, Name: "Jackets"}).Error)
}

func at(day, hour int) time.Time {
	return time.Date(2026, time.September, day, hour, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func newDAOEvent(name, eventType string, call time.Time, release *time.Time) Event {
	return Event{
		Name:          name,
		Semester:      testSemester,
		Type:          eventType,
		CallTime:      call,
		ReleaseTime:   release,
		Points:        10,
		GigCount:      true,
		DefaultAttend: true,
	}
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
