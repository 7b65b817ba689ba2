package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
)

func newEnrollmentService(db *gorm.DB) EnrollmentService {
	return NewEnrollmentService(
		repository.NewPGEnrollmentRepository(db),
		repository.NewPGStudentRepository(db),
		repository.NewPGBootcampRepository(db),
	)
}

func sessionCapacity(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var session model.BootcampSession
	require.NoError(t, db.First(&session, "id = ?", id).Error)
	return session.CurrentCapacity
}

func TestCreateEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	ctx := context.Background()

	staff := createTestStaff(t, db)
	student := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 20)

	enrollment, err := svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusEnrolled, enrollment.Status)
	assert.False(t, enrollment.EnrollmentDate.IsZero())
	assert.Equal(t, student.ID, enrollment.Student.ID)
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))
}

func TestCreateEnrollment_CapacityLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	ctx := context.Background()

	staff := createTestStaff(t, db)
	first := createTestStudent(t, db, staff.ID)
	second := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 1)

	enrollment, err := svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         first.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))

	// The single seat is taken.
	_, err = svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         second.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	assert.ErrorIs(t, err, ErrBootcampFull)
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))

	// Deleting frees the seat again.
	require.NoError(t, svc.Delete(ctx, enrollment.ID))
	assert.Equal(t, 0, sessionCapacity(t, db, session.ID))

	_, err = svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         second.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))
}

func TestCreateEnrollment_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	ctx := context.Background()

	staff := createTestStaff(t, db)
	student := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 5)

	_, err := svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))
}

func TestCreateEnrollment_MissingReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	ctx := context.Background()

	staff := createTestStaff(t, db)
	student := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 5)

	_, err := svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         uuid.New(),
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: uuid.New(),
		EnrolledByID:      staff.ID,
	})
	assert.ErrorIs(t, err, ErrBootcampNotFound)
}

func TestCreateEnrollment_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	staff := createTestStaff(t, db)
	student := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 5)

	bogus := model.EnrollmentStatus("bogus")
	_, err := svc.Create(context.Background(), CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
		Status:            &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidEnrollmentStatus)
	assert.Equal(t, 0, sessionCapacity(t, db, session.ID))
}

func TestUpdateEnrollment_DoesNotTouchCapacity(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	ctx := context.Background()

	staff := createTestStaff(t, db)
	student := createTestStudent(t, db, staff.ID)
	session := createTestBootcamp(t, db, 5)

	enrollment, err := svc.Create(ctx, CreateEnrollmentInput{
		StudentID:         student.ID,
		BootcampSessionID: session.ID,
		EnrolledByID:      staff.ID,
	})
	require.NoError(t, err)

	dropped := model.EnrollmentStatusDropped
	notes := "left after week two"
	updated, err := svc.Update(ctx, enrollment.ID, UpdateEnrollmentInput{
		Status: &dropped,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentStatusDropped, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// Status changes do not release the seat; only deletion does.
	assert.Equal(t, 1, sessionCapacity(t, db, session.ID))
}

func TestDeleteEnrollment_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrEnrollmentNotFound)
}
