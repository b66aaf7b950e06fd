package services

import (
	"context"
	"errors"
	"time"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/models"
	"ecommerce-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserListResponse is a paginated user listing.
type UserListResponse struct {
	Users []models.User `json:"users"`
	Meta  MetaData      `json:"meta"`
}

// MetaData carries pagination info for list endpoints.
type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// UserOrderSummary is the order projection returned with a user.
type UserOrderSummary struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
}

// UserWithOrders is the reduced user view including order summaries.
type UserWithOrders struct {
	ID     uuid.UUID          `json:"id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Orders []UserOrderSummary `json:"orders"`
}

// UpdateUserRequest carries the mutable user fields.
type UpdateUserRequest struct {
	Name    string `json:"name" binding:"omitempty,max=50"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// UserService manages user accounts.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUsers retrieves paginated users (admin only at the route level).
func (s *UserService) GetUsers(ctx context.Context, page, limit int) (*UserListResponse, *apperrors.Error) {
	users, total, err := s.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, apperrors.Failed("Failed to fetch users", err)
	}
	return &UserListResponse{
		Users: users,
		Meta:  buildMeta(page, limit, total),
	}, nil
}

// GetUser retrieves a user with their order summaries.
func (s *UserService) GetUser(ctx context.Context, userID string) (*UserWithOrders, *apperrors.Error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid user ID format")
	}
	user, err := s.userRepo.FindByIDWithOrders(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Failed("Failed to fetch user", err)
	}

	out := &UserWithOrders{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Orders: make([]UserOrderSummary, 0, len(user.Orders)),
	}
	for _, o := range user.Orders {
		out.Orders = append(out.Orders, UserOrderSummary{ID: o.ID, Date: o.Date})
	}
	return out, nil
}

// UpdateUser applies the mutable fields of a user.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req *UpdateUserRequest) (*models.User, *apperrors.Error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid user ID format")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Failed("Failed to fetch user", err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.City != "" {
		user.City = req.City
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Failed("Failed to update user", err)
	}
	return user, nil
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(ctx context.Context, userID string) *apperrors.Error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.InvalidArgument("Invalid user ID format")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("User not found")
		}
		return apperrors.Failed("Failed to delete user", err)
	}
	return nil
}

func buildMeta(page, limit int, total int64) MetaData {
	return MetaData{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: calculateTotalPages(total, limit),
		HasMore:    total > int64(page*limit),
	}
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
