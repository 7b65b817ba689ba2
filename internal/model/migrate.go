package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models.
// The composite unique indexes on leads (phone, promotion_id) and enrollments
// (student_id, bootcamp_session_id) come from the struct tags; they are the
// backstop against duplicate concurrent submissions, not the preceding
// application-level checks.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Promotion{},
		&Lead{},
		&Student{},
		&BootcampSession{},
		&Enrollment{},
	)
}
