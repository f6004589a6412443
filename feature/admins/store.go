package admins

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"mc-panel/core/database"
	"mc-panel/feature/admins/models"

	"gorm.io/gorm"
)

var (
	// ErrAdminNotFound is returned when the username does not exist.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrUsernameTaken is returned when the username is already in use.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidInput is returned for an empty username or password.
	ErrInvalidInput = errors.New("invalid admin input")
)

// SaltSize is the length of a generated salt in bytes.
const SaltSize = 16

var requiredColumns = []string{"username", "password", "salt"}

// Migrate creates the admins table when missing and checks that an existing
// table carries the expected columns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		return fmt.Errorf("migrate admins: %w", err)
	}
	missing, err := database.MissingColumns(db, models.Admin{}.TableName(), requiredColumns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("admins table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword returns the hex encoded SHA-256 digest of salt || password.
func HashPassword(salt []byte, password string) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// Store persists admin credentials.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db, which may be a transaction.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create adds a new admin with a fresh salt.
func (s *Store) Create(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	db := s.db.WithContext(ctx)

	taken, err := s.exists(db, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	salt, err := NewSalt()
	if err != nil {
		return err
	}
	admin := models.Admin{Username: username, Password: HashPassword(salt, password), Salt: salt}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin %s: %w", username, err)
	}
	return nil
}

// Update renames oldUsername to newUsername. A non-empty newPassword also
// replaces the salt and the digest; an empty one leaves both untouched.
func (s *Store) Update(ctx context.Context, oldUsername, newUsername, newPassword string) error {
	if newUsername == "" {
		return ErrInvalidInput
	}
	db := s.db.WithContext(ctx)

	found, err := s.exists(db, oldUsername)
	if err != nil {
		return err
	}
	if !found {
		return ErrAdminNotFound
	}
	if newUsername != oldUsername {
		taken, err := s.exists(db, newUsername)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}
	}

	updates := map[string]any{"username": newUsername}
	if newPassword != "" {
		salt, err := NewSalt()
		if err != nil {
			return err
		}
		updates["password"] = HashPassword(salt, newPassword)
		updates["salt"] = salt
	}

	res := db.Model(&models.Admin{}).Where("username = ?", oldUsername).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update admin %s: %w", oldUsername, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin.
func (s *Store) Delete(ctx context.Context, username string) error {
	res := s.db.WithContext(ctx).Where("username = ?", username).Delete(&models.Admin{})
	if res.Error != nil {
		return fmt.Errorf("delete admin %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// List returns all usernames in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Order("username").Pluck("username", &names).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return names, nil
}

// Get loads one admin.
func (s *Store) Get(ctx context.Context, username string) (*models.Admin, error) {
	var admins []models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("get admin %s: %w", username, err)
	}
	if len(admins) == 0 {
		return nil, ErrAdminNotFound
	}
	return &admins[0], nil
}

// Validate reports whether password matches the stored digest. An unknown
// username is reported as a mismatch.
func (s *Store) Validate(ctx context.Context, username, password string) (bool, error) {
	admin, err := s.Get(ctx, username)
	if errors.Is(err, ErrAdminNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	got := HashPassword(admin.Salt, password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(admin.Password)) == 1, nil
}

// Exists reports whether username has credentials.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	return s.exists(s.db.WithContext(ctx), username)
}

// Count returns the number of admins.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

// Bootstrap creates the configured admin when the table is empty and
// reports whether it did.
func (s *Store) Bootstrap(ctx context.Context, cfg Config) (bool, error) {
	if !cfg.HasBootstrap() {
		return false, nil
	}
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.Create(ctx, cfg.BootstrapUser, cfg.BootstrapPassword); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) exists(db *gorm.DB, username string) (bool, error) {
	var n int64
	if err := db.Model(&models.Admin{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, fmt.Errorf("lookup admin %s: %w", username, err)
	}
	return n > 0, nil
}
