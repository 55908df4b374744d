package controllers

import "errors"

// Workflow errors. Handlers map these to HTTP statuses; nothing else is
// surfaced to callers as a distinct condition.
var (
	ErrCourseNotFound     = errors.New("course not found or not published")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrDuplicateEnrollment = errors.New("already enrolled in this course")
	ErrAlreadyRated        = errors.New("course already rated")
	ErrDuplicateSubmission = errors.New("assignment already submitted")
	ErrSubmissionGraded    = errors.New("submission already graded")

	ErrNotEnrolled            = errors.New("not enrolled in this course")
	ErrPriorLessonsIncomplete = errors.New("prior lessons not completed")

	ErrScoreOutOfRange  = errors.New("score outside assignment bounds")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	ErrCourseNotCompleted = errors.New("course not completed yet")
	ErrCertificateExists  = errors.New("certificate already issued")
)
