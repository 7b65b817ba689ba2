package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or revoked")
	ErrUserNotFound        = errors.New("user not found")

	ErrEmailTaken           = errors.New("email already registered")
	ErrReferralCodeTaken    = errors.New("referral code already taken")
	ErrReferralCodeFormat   = errors.New("referral code must be 4-20 alphanumeric characters")
	ErrReferralCodeNotFound = errors.New("invalid referral code")

	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromotionInactive = errors.New("invalid or inactive promotion")

	ErrLeadNotFound      = errors.New("lead not found")
	ErrDuplicateLead     = errors.New("this phone number is already registered for this promotion")
	ErrSelfReferral      = errors.New("self-referral is not allowed")
	ErrInvalidLeadStatus = errors.New("invalid lead status")

	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentEmailTaken = errors.New("a student with this email already exists")

	ErrBootcampNotFound      = errors.New("bootcamp not found")
	ErrBootcampFull          = errors.New("bootcamp is at full capacity")
	ErrInvalidBootcampStatus = errors.New("invalid bootcamp status")

	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this bootcamp")
	ErrInvalidEnrollmentStatus = errors.New("invalid enrollment status")
)
