package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// ArtService 同人图上传、详情、删除与点赞
type ArtService struct {
	repo     *mysql.ArtRepository
	likeRepo *mysql.ArtLikeRepository
	gameRepo *mysql.GameRepository
	commRepo *mysql.CommentRepository
	notif    *NotificationService
	activity *ActivityService
	uploader *pkg.CloudinaryClient
}

func NewArtService(db *gorm.DB, uploader *pkg.CloudinaryClient) *ArtService {
	return &ArtService{
		repo:     &mysql.ArtRepository{DB: db},
		likeRepo: &mysql.ArtLikeRepository{DB: db},
		gameRepo: &mysql.GameRepository{DB: db},
		commRepo: &mysql.CommentRepository{DB: db},
		notif:    NewNotificationService(db),
		activity: NewActivityService(db),
		uploader: uploader,
	}
}

// ArtDetail 详情视图：基础字段加上评论
type ArtDetail struct {
	ArtItem
	Comments []CommentItem `json:"comments"`
}

// Upload 上传同人图。file 非空则走 Cloudinary，否则直接使用 imageURL
func (s *ArtService) Upload(ctx context.Context, userID uint64, actorName, apiID, tags, imageURL string, file io.Reader) (*ArtItem, error) {
	game, err := s.gameRepo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.Validation("Game must be in database first.")
		}
		return nil, err
	}

	if file != nil {
		if s.uploader == nil {
			return nil, errors.New("image upload is not configured")
		}
		imageURL, err = s.uploader.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
	}
	if imageURL == "" {
		return nil, pkg.Validation("Image is required")
	}

	art := &model.CustomArt{
		ImageURL: imageURL,
		GameID:   game.ID,
		AuthorID: userID,
		Tags:     tags,
	}
	if err = s.repo.Create(ctx, art); err != nil {
		return nil, err
	}

	// 发布动态，失败不阻塞上传
	content := fmt.Sprintf("%s posted new art for %s", actorName, game.Name)
	_ = s.activity.Record(ctx, userID, "post", content, fmt.Sprintf("/art/%d", art.ID))

	full, err := s.repo.FindByID(ctx, art.ID)
	if err != nil {
		return nil, err
	}
	items, err := annotateArts(ctx, s.likeRepo, []model.CustomArt{*full}, userID)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Detail 单图详情，含点赞和评论
func (s *ArtService) Detail(ctx context.Context, artID, viewerID uint64) (*ArtDetail, error) {
	art, err := s.repo.FindByID(ctx, artID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("Art not found")
		}
		return nil, err
	}
	items, err := annotateArts(ctx, s.likeRepo, []model.CustomArt{*art}, viewerID)
	if err != nil {
		return nil, err
	}
	comments, err := listComments(ctx, s.commRepo, artID)
	if err != nil {
		return nil, err
	}
	return &ArtDetail{ArtItem: items[0], Comments: comments}, nil
}

// ByGame 某游戏下的全部同人图
func (s *ArtService) ByGame(ctx context.Context, apiID string, viewerID uint64) ([]ArtItem, error) {
	game, err := s.gameRepo.FindByApiID(ctx, apiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ArtItem{}, nil
		}
		return nil, err
	}
	arts, err := s.repo.ListByGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	return annotateArts(ctx, s.likeRepo, arts, viewerID)
}

// Delete 仅作者可删，连带清理点赞、评论和封面引用
func (s *ArtService) Delete(ctx context.Context, artID, userID uint64) error {
	art, err := s.repo.FindByID(ctx, artID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("Art not found")
		}
		return err
	}
	if art.AuthorID != userID {
		return pkg.Forbidden("You can only delete your own art")
	}
	return s.repo.DeleteCascade(ctx, artID)
}

// Like 点赞，重复点赞报冲突，成功后通知作者并返回最新计数
func (s *ArtService) Like(ctx context.Context, artID, userID uint64, actorName string) (int64, error) {
	art, err := s.repo.FindByID(ctx, artID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkg.NotFound("Art not found")
		}
		return 0, err
	}

	created, err := s.likeRepo.Like(ctx, userID, artID)
	if err != nil {
		return 0, err
	}
	if !created {
		return 0, pkg.Conflict("Already liked")
	}

	if art.AuthorID != userID {
		content := fmt.Sprintf("%s liked your art", actorName)
		_ = s.notif.Push(ctx, art.AuthorID, "like", content, fmt.Sprintf("/art/%d", artID))
	}
	return s.likeRepo.Count(ctx, artID)
}

// Unlike 取消点赞，未点过报 404
func (s *ArtService) Unlike(ctx context.Context, artID, userID uint64) (int64, error) {
	if _, err := s.repo.FindByID(ctx, artID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkg.NotFound("Art not found")
		}
		return 0, err
	}
	removed, err := s.likeRepo.Unlike(ctx, userID, artID)
	if err != nil {
		return 0, err
	}
	if !removed {
		return 0, pkg.NotFound("Not liked")
	}
	return s.likeRepo.Count(ctx, artID)
}
