// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetDashboardStats fetches the aggregate dashboard counters.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	data, err := c.doJSON(ctx, http.MethodGet, epDashboardStats, true, nil)
	if err != nil {
		return DashboardStats{}, err
	}
	return decodePayload[DashboardStats](data, "dashboard stats")
}

// GetInstructors lists instructors, optionally filtered by verification
// status and a search term. An empty status means all.
func (c *Client) GetInstructors(ctx context.Context, status, search string) (InstructorList, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("search", search)
	}
	data, err := c.doJSON(ctx, http.MethodGet, withQuery(epInstructors, q), true, nil)
	if err != nil {
		return InstructorList{}, err
	}
	return decodePayload[InstructorList](data, "instructors")
}

// InstructorStatus values accepted by UpdateInstructorStatus.
const (
	InstructorVerified = "verified"
	InstructorRejected = "rejected"
	InstructorPending  = "pending"
)

// UpdateInstructorStatus moves an instructor between verification states:
// approve (verified), reject (rejected) or revoke back to pending.
func (c *Client) UpdateInstructorStatus(ctx context.Context, instructorID, status string) (StatusUpdateResult, error) {
	path := fmt.Sprintf("%s/%s/status", epInstructors, url.PathEscape(instructorID))
	data, err := c.doJSON(ctx, http.MethodPut, path, true, map[string]string{"status": status})
	if err != nil {
		return StatusUpdateResult{}, err
	}
	return decodePayload[StatusUpdateResult](data, "instructor status")
}

// GetStudents lists students, optionally filtered by status and search term.
func (c *Client) GetStudents(ctx context.Context, status, search string) (StudentList, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("search", search)
	}
	data, err := c.doJSON(ctx, http.MethodGet, withQuery(epStudents, q), true, nil)
	if err != nil {
		return StudentList{}, err
	}
	return decodePayload[StudentList](data, "students")
}

// GetCourseStats fetches the course review-state counters. The backend has
// shipped this payload both nested under "stats" and at the top level, so
// both shapes are accepted.
func (c *Client) GetCourseStats(ctx context.Context) (CourseStats, error) {
	data, err := c.doJSON(ctx, http.MethodGet, epCourseStats, true, nil)
	if err != nil {
		return CourseStats{}, err
	}
	type wrapped struct {
		Stats *CourseStats `json:"stats"`
	}
	if w, err := decodePayload[wrapped](data, "course stats"); err == nil && w.Stats != nil {
		return *w.Stats, nil
	}
	return decodePayload[CourseStats](data, "course stats")
}

// GetTransactions lists orders page by page. Pagination values in the
// result are echoed from the backend, not recomputed here.
func (c *Client) GetTransactions(ctx context.Context, page, limit int, status, search string) (TransactionList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("search", search)
	}
	data, err := c.doJSON(ctx, http.MethodGet, withQuery(epTransactions, q), true, nil)
	if err != nil {
		return TransactionList{}, err
	}
	return decodePayload[TransactionList](data, "transactions")
}

// GetNotifications lists notifications up to limit, optionally filtered by
// read status ("read" or "unread"; empty means all).
func (c *Client) GetNotifications(ctx context.Context, limit int, status string) (NotificationList, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if status != "" {
		q.Set("status", status)
	}
	data, err := c.doJSON(ctx, http.MethodGet, withQuery(epNotifications, q), true, nil)
	if err != nil {
		return NotificationList{}, err
	}
	return decodePayload[NotificationList](data, "notifications")
}

// GetRecentNotifications fetches the short recent-activity feed.
func (c *Client) GetRecentNotifications(ctx context.Context) (NotificationList, error) {
	data, err := c.doJSON(ctx, http.MethodGet, epNotificationsRecent, true, nil)
	if err != nil {
		return NotificationList{}, err
	}
	return decodePayload[NotificationList](data, "recent notifications")
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	path := fmt.Sprintf("%s/%s/read", epNotifications, url.PathEscape(notificationID))
	_, err := c.doJSON(ctx, http.MethodPut, path, true, nil)
	return err
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPut, epMarkAllRead, true, nil)
	return err
}

// withQuery appends encoded query parameters to a path when any are set.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
