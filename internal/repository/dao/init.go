package dao

import "gorm.io/gorm"

// InitTables creates the tables through gorm. Production databases are
// migrated with cmd/migrate instead, which also installs the foreign keys.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Semester{},
		&ActiveSemester{},
		&Uniform{},
		&Event{},
		&Gig{},
		&GigRequest{},
		&Attendance{},
		&AbsenceRequest{},
	)
}
