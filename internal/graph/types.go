package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/graphblog/api/internal/database/models"
)

// UserResolver resolves the User type. The password hash is deliberately
// absent from the schema.
type UserResolver struct {
	u    models.User
	root *Resolver
}

func (r *UserResolver) ID() int32     { return int32(r.u.ID) }
func (r *UserResolver) Name() string  { return r.u.Name }
func (r *UserResolver) Email() string { return r.u.Email }
func (r *UserResolver) IsAdmin() bool { return r.u.IsAdmin }

func (r *UserResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.u.CreatedAt} }
func (r *UserResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.u.UpdatedAt} }

// Posts resolves the user → posts relation from the store.
func (r *UserResolver) Posts() ([]*PostResolver, error) {
	posts, err := r.root.posts.PostsByAuthor(r.u.ID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{p: p, root: r.root})
	}
	return resolvers, nil
}

// PostResolver resolves the Post type.
type PostResolver struct {
	p    models.Post
	root *Resolver
}

func (r *PostResolver) ID() int32     { return int32(r.p.ID) }
func (r *PostResolver) Title() string { return r.p.Title }
func (r *PostResolver) Body() string  { return r.p.Body }
func (r *PostResolver) Image() string { return r.p.Image }

func (r *PostResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.p.CreatedAt} }
func (r *PostResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.p.UpdatedAt} }

// Author resolves the post → author relation from the store.
func (r *PostResolver) Author() (*UserResolver, error) {
	user, err := r.root.users.GetUser(r.p.AuthorID)
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: *user, root: r.root}, nil
}

// LoginResponseResolver resolves the login payload.
type LoginResponseResolver struct {
	token string
	u     models.User
	root  *Resolver
}

func (r *LoginResponseResolver) Token() string { return r.token }

func (r *LoginResponseResolver) User() *UserResolver {
	return &UserResolver{u: r.u, root: r.root}
}
