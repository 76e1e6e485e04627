package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/model"
	"outreach/internal/repository"
	"outreach/pkg/util"
)

// Caller is the verified identity performing an operation, with its resolved
// role.
type Caller struct {
	UID  primitive.ObjectID
	Role string
}

// IsAdmin reports whether the caller may perform admin-only operations.
func (c Caller) IsAdmin() bool { return c.Role == model.RoleAdmin }

// UserUpdate carries the fields a PATCH may change. Nil pointers leave the
// field untouched.
type UserUpdate struct {
	Name *string
	Role *string
}

// UserService manages identity accounts and their mirrored user documents.
type UserService struct {
	accounts repository.IAccountRepository
	users    repository.IUserRepository
	log      *zap.Logger
}

func NewUserService(log *zap.Logger, accounts repository.IAccountRepository, users repository.IUserRepository) *UserService {
	return &UserService{accounts: accounts, users: users, log: log}
}

// Create provisions an identity account and writes the mirrored user document
// under the same id. Role defaults to staff when omitted.
func (s *UserService) Create(ctx context.Context, email, password, role string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperror.New(apperror.InvalidInput, "email and password are required")
	}
	if role == "" {
		role = model.RoleStaff
	}
	if role != model.RoleAdmin && role != model.RoleStaff {
		return nil, apperror.Newf(apperror.InvalidInput, "unknown role %q", role)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFailure, "failed to hash password", err)
	}

	account, err := s.accounts.Create(ctx, &model.Account{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		ID:    account.ID,
		Email: email,
		Role:  role,
	})
	if err != nil {
		// The account survives without its mirror; later reads report
		// NotFound for the document rather than rolling anything back.
		s.log.Error("account created without mirrored user document",
			zap.String("uid", account.ID.Hex()), zap.Error(err))
		return nil, err
	}

	return user, nil
}

// List returns all user documents.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns a single user document.
func (s *UserService) Get(ctx context.Context, uid primitive.ObjectID) (*model.User, error) {
	return s.users.FindByID(ctx, uid)
}

// Update applies a partial edit to the target document. Owners may change
// their own non-role fields; role changes and cross-user edits require an
// admin caller.
func (s *UserService) Update(ctx context.Context, caller Caller, target primitive.ObjectID, upd UserUpdate) error {
	if upd.Role != nil && !caller.IsAdmin() {
		return apperror.New(apperror.Unauthorized, "only admins may change roles")
	}
	if caller.UID != target && !caller.IsAdmin() {
		return apperror.New(apperror.Unauthorized, "cannot edit another user's profile")
	}

	fields := bson.M{}
	if upd.Name != nil {
		fields["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Role != nil {
		if *upd.Role != model.RoleAdmin && *upd.Role != model.RoleStaff {
			return apperror.Newf(apperror.InvalidInput, "unknown role %q", *upd.Role)
		}
		fields["role"] = *upd.Role
	}
	if len(fields) == 0 {
		return apperror.New(apperror.InvalidInput, "no fields to update")
	}

	return s.users.UpdateFields(ctx, target, fields)
}

// SubscribePrivateCalendar flips the subscription flag on the caller's own
// document. NotFound surfaces when the account has no mirrored document.
func (s *UserService) SubscribePrivateCalendar(ctx context.Context, uid primitive.ObjectID) error {
	return s.users.UpdateFields(ctx, uid, bson.M{
		"subscribedToPrivateCalendar": true,
		"updatedAt":                   time.Now(),
	})
}
