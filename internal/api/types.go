// Package api defines the JSON request and response types exchanged
// with API clients.
package api

// SignupRequest is the request body for POST /api/users/signup.
// Profile fields are stored as-is and are not validated beyond binding.
type SignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
}

// LoginRequest is the request body for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by signup and login on success.
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserResponse is the authenticated user's profile, returned by
// GET /api/users/me. The password hash is never part of it.
type UserResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
}

// JobRequest is the request body for creating or replacing a job.
// Any owner information supplied by the client is ignored; ownership
// always comes from the authenticated user.
type JobRequest struct {
	Title        string `json:"title" binding:"required"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
}

// JobResponse is a single job as returned by the API.
type JobResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	CompanyName  string `json:"company_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	CreatedAt    string `json:"created_at"`
}

// ErrorResponse is the uniform error body for all failure statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
