package service

import (
	"context"
	"errors"
	"fmt"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// CommentItem 评论视图
type CommentItem struct {
	ID        uint64           `json:"id"`
	Content   string           `json:"content"`
	CreatedAt any              `json:"createdAt"`
	Author    model.PublicUser `json:"author"`
}

type CommentService struct {
	repo     *mysql.CommentRepository
	artRepo  *mysql.ArtRepository
	notif    *NotificationService
	activity *ActivityService
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{DB: db},
		artRepo:  &mysql.ArtRepository{DB: db},
		notif:    NewNotificationService(db),
		activity: NewActivityService(db),
	}
}

func (s *CommentService) List(ctx context.Context, artID uint64) ([]CommentItem, error) {
	if _, err := s.artRepo.FindByID(ctx, artID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Art not found")
		}
		return nil, err
	}
	return listComments(ctx, s.repo, artID)
}

// Create 发表评论，通知作者并记一条动态
func (s *CommentService) Create(ctx context.Context, artID, userID uint64, actorName, content string) (*CommentItem, error) {
	if content == "" {
		return nil, pkg.Validation("Comment content is required")
	}
	art, err := s.artRepo.FindByID(ctx, artID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Art not found")
		}
		return nil, err
	}

	comment := &model.Comment{Content: content, ArtID: artID, AuthorID: userID}
	if err = s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("/art/%d", artID)
	if art.AuthorID != userID {
		_ = s.notif.Push(ctx, art.AuthorID, "comment", fmt.Sprintf("%s commented on your art", actorName), link)
	}
	_ = s.activity.Record(ctx, userID, "comment", fmt.Sprintf("%s commented on art", actorName), link)

	full, err := s.repo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	item := CommentItem{ID: full.ID, Content: full.Content, CreatedAt: full.CreatedAt}
	if full.Author != nil {
		item.Author = full.Author.Public()
	}
	return &item, nil
}

// Delete 仅评论作者可删
func (s *CommentService) Delete(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("Comment not found")
		}
		return err
	}
	if comment.AuthorID != userID {
		return pkg.Forbidden("You can only delete your own comments")
	}
	return s.repo.Delete(ctx, commentID)
}

func listComments(ctx context.Context, repo *mysql.CommentRepository, artID uint64) ([]CommentItem, error) {
	comments, err := repo.ListByArt(ctx, artID)
	if err != nil {
		return nil, err
	}
	out := make([]CommentItem, 0, len(comments))
	for i := range comments {
		item := CommentItem{
			ID:        comments[i].ID,
			Content:   comments[i].Content,
			CreatedAt: comments[i].CreatedAt,
		}
		if comments[i].Author != nil {
			item.Author = comments[i].Author.Public()
		}
		out = append(out, item)
	}
	return out, nil
}
