package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// FollowService 关注关系维护，关注成功后发通知和可选邮件
type FollowService struct {
	repo     *mysql.FollowRepository
	userRepo *mysql.UserRepository
	notif    *NotificationService
	smtp     pkg.SMTPConfig
}

func NewFollowService(db *gorm.DB, smtp pkg.SMTPConfig) *FollowService {
	return &FollowService{
		repo:     &mysql.FollowRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
		notif:    NewNotificationService(db),
		smtp:     smtp,
	}
}

func (s *FollowService) Follow(ctx context.Context, followerID uint64, actorName string, targetID uint64) error {
	if followerID == targetID {
		return pkg.Validation("Cannot follow yourself.")
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("User not found")
		}
		return err
	}

	created, err := s.repo.Follow(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if !created {
		return pkg.Conflict("Already following.")
	}

	content := fmt.Sprintf("%s started following you", actorName)
	_ = s.notif.Push(ctx, targetID, "follow", content, fmt.Sprintf("/user/%s", actorName))

	// 邮件提醒异步发，失败只记日志
	if s.smtp.Enabled() {
		go func(to, follower string) {
			if mailErr := pkg.SendEmail(s.smtp, to, "You have a new follower", pkg.NewFollowerHTML(follower)); mailErr != nil {
				log.Printf("follow email to %s failed: %v", to, mailErr)
			}
		}(target.Email, actorName)
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint64) error {
	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("User not found")
		}
		return err
	}
	removed, err := s.repo.Unfollow(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return pkg.NotFound("Not following")
	}
	return nil
}

// Followers 粉丝列表
func (s *FollowService) Followers(ctx context.Context, userID uint64) ([]model.PublicUser, error) {
	rows, err := s.repo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(rows))
	for i := range rows {
		if rows[i].Follower != nil {
			out = append(out, rows[i].Follower.Public())
		}
	}
	return out, nil
}

// Following 关注列表
func (s *FollowService) Following(ctx context.Context, userID uint64) ([]model.PublicUser, error) {
	rows, err := s.repo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(rows))
	for i := range rows {
		if rows[i].Following != nil {
			out = append(out, rows[i].Following.Public())
		}
	}
	return out, nil
}
