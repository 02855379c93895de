package registry

import (
	"context"
	"time"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// User DTOs
// =============================================================================

// CreateUserRequest represents a request to create a new user account
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email,max=30"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedBy string `json:"created_by" binding:"omitempty,max=50"`
}

// UpdateUserRequest represents a partial update of a user account. A new
// password, when present, is hashed before it reaches storage.
type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=3,max=30"`
	Email     *string `json:"email" binding:"omitempty,email,max=30"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	IsAdmin   *bool   `json:"is_admin"`
	UpdatedBy *string `json:"updated_by" binding:"omitempty,max=50"`
}

// UserResponse represents a user in API responses. Password hashes never
// leave the service layer.
type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"is_admin"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedBy *string    `json:"updated_by"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *registry.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		CreatedBy: u.CreatedBy,
		UpdatedBy: u.UpdatedBy,
	}
}

// =============================================================================
// User Service
// =============================================================================

// UserService handles user business operations, including enterprise
// membership
type UserService struct {
	users       shared.Repository[registry.User]
	enterprises shared.Repository[registry.Enterprise]
	links       shared.AssociationRepository
}

// NewUserService creates a new UserService
func NewUserService(
	users shared.Repository[registry.User],
	enterprises shared.Repository[registry.Enterprise],
	links shared.AssociationRepository,
) *UserService {
	return &UserService{
		users:       users,
		enterprises: enterprises,
		links:       links,
	}
}

// Create persists a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := registry.NewUser(req.Name, req.Email, req.Password, req.CreatedBy, req.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List returns every user, active and inactive
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses, nil
}

// GetByID returns one user or a NotFoundError
func (s *UserService) GetByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.requireUser(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update applies a partial update and returns the refreshed user
func (s *UserService) Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.requireUser(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setString(changes, "name", req.Name)
	setString(changes, "email", req.Email)
	setBool(changes, "is_admin", req.IsAdmin)
	setString(changes, "updated_by", req.UpdatedBy)
	if req.Password != nil {
		hash, err := registry.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hash
	}

	updated, err := s.users.Update(ctx, user, changes)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(updated)
	return &resp, nil
}

// LogicalDelete marks the user inactive
func (s *UserService) LogicalDelete(ctx context.Context, id uint) error {
	user, err := s.requireUser(ctx, id)
	if err != nil {
		return err
	}
	return s.users.LogicalDelete(ctx, user)
}

// Delete physically removes the user and, via cascade, its enterprise links
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.requireUser(ctx, id)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user)
}

// LinkEnterprise grants the user membership of an enterprise after verifying
// both sides exist
func (s *UserService) LinkEnterprise(ctx context.Context, userID, enterpriseID uint) error {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	enterprise, err := s.enterprises.FindByID(ctx, enterpriseID)
	if err != nil {
		return err
	}
	if enterprise == nil {
		return shared.NewNotFoundError("Enterprise", enterpriseID)
	}
	return s.links.Link(ctx, registry.UserEnterprises, userID, enterpriseID)
}

// UnlinkEnterprise removes the user↔enterprise link; absent pairs are a no-op
func (s *UserService) UnlinkEnterprise(ctx context.Context, userID, enterpriseID uint) error {
	return s.links.Unlink(ctx, registry.UserEnterprises, userID, enterpriseID)
}

// ListEnterprises returns the ids of enterprises the user belongs to
func (s *UserService) ListEnterprises(ctx context.Context, userID uint) ([]uint, error) {
	return s.links.Links(ctx, registry.UserEnterprises, userID)
}

func (s *UserService) requireUser(ctx context.Context, id uint) (*registry.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.NewNotFoundError("User", id)
	}
	return user, nil
}
