// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// REST endpoint paths. The backend is a fixed origin with a fixed surface;
// paths are compile-time constants rather than discovered configuration.
const (
	epLogin          = "/api/auth/login"
	epVerifyLogin    = "/api/auth/verify-login"
	epRegister       = "/api/auth/register"
	epForgotPassword = "/api/auth/forgot-password"
	epResetPassword  = "/api/auth/reset-password"
	epRefresh        = "/api/auth/refresh"

	epProfile        = "/api/user/profile"
	epChangePassword = "/api/user/change-password"
	epUploadImage    = "/api/user/upload-image"
	epRemoveImage    = "/api/user/remove-image"

	epDashboardStats = "/api/dashboard/stats"
	epInstructors    = "/api/instructors"
	epStudents       = "/api/students"
	epCourseStats    = "/api/courses/stats"
	epTransactions   = "/api/transactions"

	epNotifications       = "/api/notifications"
	epNotificationsRecent = "/api/notifications/recent"
	epMarkAllRead         = "/api/notifications/mark-all-read"
)
