package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"

	"blogql/internal/middleware"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/service"
)

type userInput struct {
	Email    string
	Password string
	Name     string
}

type postInput struct {
	Title    string
	Content  string
	ImageURL string
}

// Resolver is the root resolver behind both RootQuery and RootMutation.
type Resolver struct {
	users    service.UserService
	posts    service.PostService
	userRepo repository.UserRepository
}

func NewResolver(svc *service.Service, repo *repository.Repository) *Resolver {
	return &Resolver{
		users:    svc.User,
		posts:    svc.Post,
		userRepo: repo.User,
	}
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput userInput }) (*UserResolver, error) {
	user, err := r.users.CreateUser(ctx, args.UserInput.Email, args.UserInput.Password, args.UserInput.Name)
	if err != nil {
		return nil, err
	}

	return &UserResolver{user: user, userRepo: r.userRepo}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*AuthDataResolver, error) {
	token, userID, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}

	return &AuthDataResolver{token: token, userID: userID}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput postInput }) (*PostResolver, error) {
	identity := middleware.IdentityFromContext(ctx)

	post, err := r.posts.CreatePost(ctx, identity, args.PostInput.Title, args.PostInput.Content, args.PostInput.ImageURL)
	if err != nil {
		return nil, err
	}

	return &PostResolver{post: post, userRepo: r.userRepo}, nil
}

func (r *Resolver) GetPosts(ctx context.Context, args struct{ Page *int32 }) (*PostDataResolver, error) {
	identity := middleware.IdentityFromContext(ctx)

	page := 1
	if args.Page != nil {
		page = int(*args.Page)
	}

	posts, total, err := r.posts.GetPosts(ctx, identity, page)
	if err != nil {
		return nil, err
	}

	return &PostDataResolver{posts: posts, totalItems: total, userRepo: r.userRepo}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	identity := middleware.IdentityFromContext(ctx)

	post, err := r.posts.GetPost(ctx, identity, string(args.ID))
	if err != nil {
		return nil, err
	}

	return &PostResolver{post: post, userRepo: r.userRepo}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID        graphql.ID
	PostInput postInput
}) (*PostResolver, error) {
	identity := middleware.IdentityFromContext(ctx)

	post, err := r.posts.UpdatePost(ctx, identity, string(args.ID), args.PostInput.Title, args.PostInput.Content, args.PostInput.ImageURL)
	if err != nil {
		return nil, err
	}

	return &PostResolver{post: post, userRepo: r.userRepo}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	identity := middleware.IdentityFromContext(ctx)

	return r.posts.DeletePost(ctx, identity, string(args.ID))
}

func (r *Resolver) GetStatus(ctx context.Context) (string, error) {
	identity := middleware.IdentityFromContext(ctx)

	return r.users.GetStatus(ctx, identity)
}

func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ StatusInput string }) (*UserResolver, error) {
	identity := middleware.IdentityFromContext(ctx)

	user, err := r.users.UpdateStatus(ctx, identity, args.StatusInput)
	if err != nil {
		return nil, err
	}

	return &UserResolver{user: user, userRepo: r.userRepo}, nil
}

type UserResolver struct {
	user     *models.User
	userRepo repository.UserRepository
}

func (u *UserResolver) ID() graphql.ID {
	return graphql.ID(u.user.UserID)
}

func (u *UserResolver) Name() string {
	return u.user.Name
}

func (u *UserResolver) Email() string {
	return u.user.Email
}

func (u *UserResolver) Status() string {
	return u.user.Status
}

func (u *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := u.userRepo.GetPostsByCreator(ctx, u.user.UserID)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*PostResolver, 0, len(posts))
	for i := range posts {
		post := posts[i]
		post.Creator = u.user
		resolvers = append(resolvers, &PostResolver{post: &post, userRepo: u.userRepo})
	}

	return resolvers, nil
}

type PostResolver struct {
	post     *models.Post
	userRepo repository.UserRepository
}

func (p *PostResolver) ID() graphql.ID {
	return graphql.ID(p.post.PostID)
}

func (p *PostResolver) Title() string {
	return p.post.Title
}

func (p *PostResolver) Content() string {
	return p.post.Content
}

func (p *PostResolver) ImageURL() string {
	return p.post.ImageURL
}

func (p *PostResolver) Creator(ctx context.Context) (*UserResolver, error) {
	if p.post.Creator != nil {
		return &UserResolver{user: p.post.Creator, userRepo: p.userRepo}, nil
	}

	user, err := p.userRepo.GetByID(ctx, p.post.CreatorID)
	if err != nil {
		return nil, err
	}

	return &UserResolver{user: user, userRepo: p.userRepo}, nil
}

func (p *PostResolver) CreatedAt() string {
	return p.post.CreatedAt.UTC().Format(time.RFC3339)
}

func (p *PostResolver) UpdatedAt() string {
	return p.post.UpdatedAt.UTC().Format(time.RFC3339)
}

type AuthDataResolver struct {
	token  string
	userID string
}

func (a *AuthDataResolver) Token() string {
	return a.token
}

func (a *AuthDataResolver) UserID() string {
	return a.userID
}

type PostDataResolver struct {
	posts      []models.Post
	totalItems int
	userRepo   repository.UserRepository
}

func (d *PostDataResolver) Posts() []*PostResolver {
	resolvers := make([]*PostResolver, 0, len(d.posts))
	for i := range d.posts {
		resolvers = append(resolvers, &PostResolver{post: &d.posts[i], userRepo: d.userRepo})
	}
	return resolvers
}

func (d *PostDataResolver) TotalItems() int32 {
	return int32(d.totalItems)
}
