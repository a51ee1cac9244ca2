// Package models defines the client-side data model for memopad:
// users, memos, design templates, and the request payloads exchanged
// with the memo service.
package models

import "time"

// User is the authenticated identity as reported by the service.
// ID is immutable once assigned.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credential carries a login request. It is transient: never persisted,
// never logged.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData carries a registration request.
type RegisterData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the server reply to login/register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Template is a visual decoration for memos. Templates are immutable
// after fetch and referenced from memos by id only.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	BorderStyle     string `json:"borderStyle"`
	ShadowStyle     string `json:"shadowStyle"`
	Preview         string `json:"preview"`
}

// Memo is a short note decorated with a template. TemplateID is a soft
// reference: an unresolvable id falls back to the first cached template.
type Memo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	TemplateID string    `json:"templateId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateMemoData is the payload for creating a memo. All three fields
// are required; see Validate.
type CreateMemoData struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	TemplateID string `json:"templateId"`
}
