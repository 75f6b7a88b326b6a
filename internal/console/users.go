package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"report-console/internal/api"
	"report-console/internal/models"
)

const MinPasswordLength = 6

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required for a new user")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrInvalidRole      = errors.New("role must be admin or user")
	ErrProtectedUser    = errors.New("the default administrator account cannot be deleted")
	ErrMissingUserID    = errors.New("no user id given")
)

type UserRow struct {
	models.User
	Deletable bool
}

type UserPage struct {
	Users   []UserRow
	Total   int
	Admins  int
	Regular int
}

func LoadUsers(ctx context.Context, dir UserDirectory, limit int, loc *time.Location) (UserPage, error) {
	list, err := dir.ListUsers(ctx, 1, limit)
	if err != nil {
		return UserPage{}, fmt.Errorf("load users: %w", err)
	}

	page := UserPage{Total: len(list.Users)}
	for _, u := range list.Users {
		switch u.Role {
		case models.RoleAdmin:
			page.Admins++
		case models.RoleUser:
			page.Regular++
		}
		page.Users = append(page.Users, UserRow{User: u, Deletable: !u.Protected()})
	}
	sortNewestFirst(page.Users, func(r UserRow) string { return r.CreatedAt }, loc)
	return page, nil
}

// SaveUserInput is the add/edit form. An empty ID means add.
type SaveUserInput struct {
	ID       string
	Username string
	Email    string
	Password string
	Role     models.UserRole
}

// SaveUser adds or edits a user and returns its id. On edit the username is
// never sent and a blank password keeps the current one.
func SaveUser(ctx context.Context, in SaveUserInput, dir UserDirectory) (string, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if !in.Role.Valid() {
		return "", ErrInvalidRole
	}
	if in.Password != "" && len(in.Password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	if in.ID != "" {
		err := dir.UpdateUser(ctx, in.ID, api.UserUpdate{
			Email:    strings.TrimSpace(in.Email),
			Password: in.Password,
			Role:     in.Role,
		})
		if err != nil {
			return "", fmt.Errorf("update user: %w", err)
		}
		slog.Info("user_event", "event", "updated", "user_id", in.ID)
		return in.ID, nil
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return "", ErrUsernameRequired
	}
	if in.Password == "" {
		return "", ErrPasswordRequired
	}
	id, err := dir.CreateUser(ctx, api.UserInput{
		Username: username,
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	slog.Info("user_event", "event", "created", "user_id", id, "username", username)
	return id, nil
}

// UserRef identifies a user as shown in the list.
type UserRef struct {
	ID       string
	Username string
}

// ConfirmDelete is the first step of a deletion. It refuses the protected
// account without asking the backend.
func ConfirmDelete(ref UserRef) (UserRef, error) {
	if ref.ID == "" {
		return UserRef{}, ErrMissingUserID
	}
	if ref.Username == models.ProtectedUsername {
		return UserRef{}, ErrProtectedUser
	}
	return ref, nil
}

// DeleteUser re-checks the protected account, first against the confirmed
// name and then against the stored record, before deleting.
func DeleteUser(ctx context.Context, ref UserRef, dir UserDirectory) error {
	if _, err := ConfirmDelete(ref); err != nil {
		return err
	}

	u, err := dir.GetUser(ctx, ref.ID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if u.Protected() {
		return ErrProtectedUser
	}

	if err := dir.DeleteUser(ctx, ref.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	slog.Info("user_event", "event", "deleted", "user_id", ref.ID, "username", u.Username)
	return nil
}
