package service

import (
	"context"
	"errors"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"
	"V_Arcade/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo       *mysql.UserRepository
	followRepo *mysql.FollowRepository
	libRepo    *mysql.LibraryRepository
	rUser      *redis.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:       &mysql.UserRepository{DB: db},
		followRepo: &mysql.FollowRepository{DB: db},
		libRepo:    &mysql.LibraryRepository{DB: db},
		rUser:      &redis.UserRepository{},
	}
}

// LoginResult 登录响应：token 对 + 用户标识
type LoginResult struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Refresh  string `json:"refreshToken"`
}

// Profile 公开主页视图
type Profile struct {
	ID             uint64             `json:"id"`
	Username       string             `json:"username"`
	Bio            string             `json:"bio"`
	CreatedAt      any                `json:"createdAt"`
	FollowersCount int64              `json:"followersCount"`
	FollowingCount int64              `json:"followingCount"`
	Followers      []model.PublicUser `json:"followers"`
	Following      []model.PublicUser `json:"following"`
	Games          []model.UserGame   `json:"games"`
	IsFollowing    bool               `json:"isFollowing"`
}

func (s *UserService) Register(ctx context.Context, email, username, password string) error {
	if email == "" || username == "" || password == "" {
		return pkg.Validation("All fields are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.Conflict("Email or username already exists")
		}
		return err
	}
	return nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, pkg.Validation("Email and password are required")
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, &pkg.AppError{Err: pkg.ErrUnauthenticated, Message: "Invalid credentials"}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, &pkg.AppError{Err: pkg.ErrUnauthenticated, Message: "Invalid credentials"}
	}

	pair, err := pkg.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	// 登录态写入 redis，同账号后登录踢前登录
	if redis.Client != nil {
		if err = s.rUser.AddUserToken(user.ID, pair.AccessToken); err != nil {
			return nil, err
		}
	}
	return &LoginResult{
		UserID:   user.ID,
		Username: user.Username,
		Token:    pair.AccessToken,
		Refresh:  pair.RefreshToken,
	}, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	if redis.Client == nil {
		return nil
	}
	return s.rUser.DeleteUserToken(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// Search 用户名模糊搜索，最多 10 条，排除自己
func (s *UserService) Search(ctx context.Context, query string, viewerID uint64) ([]model.PublicUser, error) {
	if query == "" {
		return []model.PublicUser{}, nil
	}
	users, err := s.repo.Search(ctx, query, viewerID, 10)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// GetProfile 公开主页：基础信息 + 关注关系 + 游戏库
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint64) (*Profile, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("User not found")
		}
		return nil, err
	}

	following, followers, err := s.followRepo.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followingRows, err := s.followRepo.ListFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followerRows, err := s.followRepo.ListFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	games, _, err := s.libRepo.ListByUser(ctx, user.ID, "all", "", 0, 200)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		CreatedAt:      user.CreatedAt,
		FollowersCount: followers,
		FollowingCount: following,
		Followers:      make([]model.PublicUser, 0, len(followerRows)),
		Following:      make([]model.PublicUser, 0, len(followingRows)),
		Games:          games,
	}
	for i := range followerRows {
		if followerRows[i].Follower != nil {
			p.Followers = append(p.Followers, followerRows[i].Follower.Public())
		}
	}
	for i := range followingRows {
		if followingRows[i].Following != nil {
			p.Following = append(p.Following, followingRows[i].Following.Public())
		}
	}

	if viewerID != 0 && viewerID != user.ID {
		if ok, err := s.followRepo.IsFollowing(ctx, viewerID, user.ID); err == nil {
			p.IsFollowing = ok
		}
	}
	return p, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
