// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// User is the backend's user object as returned by auth and profile calls.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// LoginResult is the first-factor login payload. The session token is
// short-lived and only valid for completing code verification.
type LoginResult struct {
	SessionToken string `json:"sessionToken"`
	MaskedEmail  string `json:"maskedEmail"`
}

// VerifyResult is issued once second-factor verification succeeds.
type VerifyResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// RegisterResult echoes the newly created account.
type RegisterResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ForgotPasswordResult carries the backend's confirmation message.
type ForgotPasswordResult struct {
	Message string `json:"message"`
}

// RefreshResult carries the renewed access token. The refresh token itself
// is not rotated by this backend.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}

// UploadImageResult is the stored location of an uploaded profile image.
type UploadImageResult struct {
	ImageURL string `json:"imageUrl"`
}

// DashboardStats is the aggregate counters for the dashboard landing view.
type DashboardStats struct {
	Instructors InstructorCounts `json:"instructors"`
	Students    StudentCounts    `json:"students"`
	Courses     CourseCounts     `json:"courses"`
	Revenue     RevenueTotals    `json:"revenue"`
}

// InstructorCounts breaks down instructors by verification state.
type InstructorCounts struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
}

// StudentCounts breaks down students by activity.
type StudentCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// CourseCounts breaks down courses by publication state.
type CourseCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Draft  int `json:"draft"`
}

// RevenueTotals carries revenue aggregates in the backend's currency.
type RevenueTotals struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"thisMonth"`
}

// Instructor is a single instructor row.
type Instructor struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Image            string `json:"image"`
	InstructorStatus string `json:"instructorStatus"`
	CreatedAt        string `json:"createdAt"`
}

// InstructorStats summarizes the instructor population.
type InstructorStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}

// InstructorList is the combined instructors listing payload.
type InstructorList struct {
	Stats       InstructorStats `json:"stats"`
	Instructors []Instructor    `json:"instructors"`
}

// StatusUpdateResult acknowledges an instructor status change.
type StatusUpdateResult struct {
	Message string `json:"message"`
}

// Student is a single student row.
type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// StudentStats summarizes the student population.
type StudentStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// StudentList is the combined students listing payload.
type StudentList struct {
	Stats    StudentStats `json:"stats"`
	Students []Student    `json:"students"`
}

// CourseStats breaks down courses by review state.
type CourseStats struct {
	Total         int `json:"total"`
	Draft         int `json:"draft"`
	PendingReview int `json:"pendingReview"`
	Published     int `json:"published"`
	Rejected      int `json:"rejected"`
}

// TransactionSummary aggregates revenue over the filtered transaction set.
type TransactionSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	ThisMonthRevenue  float64 `json:"thisMonthRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
}

// TransactionStudent is the purchaser embedded in a transaction.
type TransactionStudent struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// TransactionCourse is a purchased course line item.
type TransactionCourse struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
}

// Transaction is a single order row.
type Transaction struct {
	OrderID       string              `json:"orderId"`
	OrderNumber   string              `json:"orderNumber"`
	Amount        float64             `json:"amount"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     string              `json:"createdAt"`
	Student       TransactionStudent  `json:"student"`
	Courses       []TransactionCourse `json:"courses"`
}

// Pagination is echoed back from the backend verbatim; the client never
// recomputes these values.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// TransactionList is the paginated transactions payload.
type TransactionList struct {
	Summary      TransactionSummary `json:"summary"`
	Transactions []Transaction      `json:"transactions"`
	Pagination   Pagination         `json:"pagination"`
}

// Notification is a single notification row.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	ActionURL string `json:"actionUrl"`
	CreatedAt string `json:"createdAt"`
}

// NotificationList is the notifications payload with the unread counter.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}
