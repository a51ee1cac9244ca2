package models

import (
	"sort"
	"strings"
)

// ValidationError reports empty required fields, keyed by field name.
// It is produced before any network call and never reaches the gateway.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Validate checks that title, content and templateId are all non-empty.
// Returns a *ValidationError listing every offending field, or nil.
func (d CreateMemoData) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(d.Content) == "" {
		fields["content"] = "content is required"
	}
	if strings.TrimSpace(d.TemplateID) == "" {
		fields["templateId"] = "template is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks that username and password are non-empty.
func (c Credential) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(c.Username) == "" {
		fields["username"] = "username is required"
	}
	if c.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks that username, email and password are non-empty.
func (d RegisterData) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(d.Username) == "" {
		fields["username"] = "username is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		fields["email"] = "email is required"
	}
	if d.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
