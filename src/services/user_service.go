package services

import (
	"context"

	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user CRUD. Passwords are bcrypt-hashed before they
// reach the store. Deletion goes through the cascade service.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create inserts a new user. Email and username must both be free; a
// conflict fails with already_exists.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	existing, err := s.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil && !models.HasCode(err, models.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("email or username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.users.Insert(ctx, in.Username, in.Email, string(hash))
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, skip, limit int64) (*models.PaginatedUsers, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedUsers{Total: total, Skip: skip, Limit: limit, Data: data}, nil
}

// Update writes the provided fields. A new password is hashed before being
// stored.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		hashed := string(hash)
		upd.Password = &hashed
	}
	return s.users.Update(ctx, id, upd)
}
