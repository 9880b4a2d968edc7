package graph

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphblog/api/internal/database/models"
	"github.com/graphblog/api/internal/database/repository"
	"github.com/graphblog/api/internal/database/service"
	"github.com/graphblog/api/internal/middleware"
)

// Resolver is the GraphQL root. Every query/mutation method performs an
// authentication check where required and delegates to one service call.
type Resolver struct {
	auth    service.AuthService
	users   service.UserService
	posts   service.PostService
	limiter middleware.LoginLimiter
	logger  *slog.Logger
}

// NewResolver creates the root resolver
func NewResolver(
	auth service.AuthService,
	users service.UserService,
	posts service.PostService,
	limiter middleware.LoginLimiter,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		auth:    auth,
		users:   users,
		posts:   posts,
		limiter: limiter,
		logger:  logger,
	}
}

func (r *Resolver) user(u *models.User) *UserResolver {
	return &UserResolver{u: *u, root: r}
}

func (r *Resolver) post(p *models.Post) *PostResolver {
	return &PostResolver{p: *p, root: r}
}

// ==================== QUERIES ====================

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated("Unauthenticated user")
	}

	user, err := r.auth.Me(claims)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errNotFound("User not found")
		}
		return nil, err
	}

	return r.user(user), nil
}

func (r *Resolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.posts.ListPosts()
	if err != nil {
		return nil, err
	}

	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{p: p, root: r})
	}
	return resolvers, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ PostID int32 }) (*PostResolver, error) {
	post, err := r.posts.GetPost(uint(args.PostID))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errNotFound("Post not found")
		}
		return nil, err
	}
	return r.post(post), nil
}

// ==================== AUTH MUTATIONS ====================

func (r *Resolver) Signup(ctx context.Context, args struct {
	Name     string
	Email    string
	Password string
}) (*UserResolver, error) {
	user, err := r.auth.Signup(args.Name, args.Email, args.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return nil, errInput("Account already exists", map[string]interface{}{
				"email": "Email address already exists! Try another email.",
			})
		}
		return nil, err
	}
	return r.user(user), nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*LoginResponseResolver, error) {
	allowed, err := r.limiter.Allow(ctx, args.Email)
	if err != nil {
		r.logger.Error("❌ [Resolver] Login limiter unavailable", "error", err)
	}
	if !allowed {
		return nil, errRateLimited("Too many failed login attempts. Try again later.")
	}

	user, token, err := r.auth.Login(args.Email, args.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return nil, errInput("Account not found", map[string]interface{}{
				"email": "Email address is incorrect",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			if lerr := r.limiter.RecordFailure(ctx, args.Email); lerr != nil {
				r.logger.Error("❌ [Resolver] Failed to record login attempt", "error", lerr)
			}
			return nil, errInput("Invalid credentials", map[string]interface{}{
				"password": "Password is incorrect",
			})
		}
		return nil, err
	}

	if lerr := r.limiter.Reset(ctx, args.Email); lerr != nil {
		r.logger.Error("❌ [Resolver] Failed to reset login attempts", "error", lerr)
	}

	return &LoginResponseResolver{token: token, u: *user, root: r}, nil
}

// ==================== POST MUTATIONS ====================

func (r *Resolver) CreatePost(ctx context.Context, args struct {
	Title string
	Body  string
	Image string
}) (*PostResolver, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated("Login first to create a new post")
	}

	post, err := r.posts.CreatePost(claims.UserID, args.Title, args.Body, args.Image)
	if err != nil {
		return nil, err
	}
	return r.post(post), nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	PostID int32
	Title  string
	Body   string
	Image  string
}) (*PostResolver, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated("Login first to update a post")
	}

	post, err := r.posts.UpdatePost(claims.UserID, uint(args.PostID), args.Title, args.Body, args.Image)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			return nil, errNotFound("Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			return nil, errForbidden("You are not the author of this post")
		}
		return nil, err
	}
	return r.post(post), nil
}

func (r *Resolver) RemovePost(ctx context.Context, args struct{ PostID int32 }) (string, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return "", errUnauthenticated("Login first to delete a post")
	}

	if err := r.posts.RemovePost(claims.UserID, uint(args.PostID)); err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			return "", errNotFound("Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			return "", errForbidden("You are not the author of this post")
		}
		return "", err
	}
	return "Post removed successfully!", nil
}

// ==================== USER MUTATIONS ====================

func (r *Resolver) UpdateProfile(ctx context.Context, args struct {
	ID    int32
	Email string
	Name  string
}) (*UserResolver, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated("Login first to update your profile")
	}

	user, err := r.users.UpdateProfile(claims.UserID, uint(args.ID), args.Email, args.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotProfileOwner):
			return nil, errForbidden("You are not the owner of this profile")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errNotFound("User not found")
		case errors.Is(err, service.ErrEmailAlreadyExists):
			return nil, errInput("Account already exists", map[string]interface{}{
				"email": "Email address already exists! Try another email.",
			})
		}
		return nil, err
	}
	return r.user(user), nil
}

func (r *Resolver) RemoveProfile(ctx context.Context, args struct{ ID int32 }) (string, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return "", errUnauthenticated("Login first to delete your profile")
	}

	if err := r.users.RemoveProfile(claims.UserID, uint(args.ID)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotProfileOwner):
			return "", errForbidden("You are not the owner of this profile")
		case errors.Is(err, repository.ErrUserNotFound):
			return "", errNotFound("User not found")
		}
		return "", err
	}
	return "Profile removed successfully!", nil
}

func (r *Resolver) ChangePassword(ctx context.Context, args struct {
	ID          int32
	OldPassword string
	NewPassword string
}) (*UserResolver, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated("Login first to change your password")
	}

	user, err := r.users.ChangePassword(claims.UserID, uint(args.ID), args.OldPassword, args.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotProfileOwner):
			return nil, errForbidden("You are not the owner of this profile")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errNotFound("User not found")
		case errors.Is(err, service.ErrIncorrectPassword):
			return nil, errInput("Incorrect password", map[string]interface{}{
				"oldPassword": "The old password you provided is incorrect",
			})
		}
		return nil, err
	}
	return r.user(user), nil
}
