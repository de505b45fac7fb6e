package pkg

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CloudinaryClient 图床上传客户端（签名上传）
type CloudinaryClient struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	http      *http.Client
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func NewCloudinaryClient(cfg CloudinaryConfig) *CloudinaryClient {
	folder := cfg.Folder
	if folder == "" {
		folder = "v-art"
	}
	return &CloudinaryClient{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    folder,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload 上传一张图片，返回 https 直链
func (c *CloudinaryClient) Upload(ctx context.Context, file io.Reader) (string, error) {
	publicID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	// 签名串按参数名字典序拼接
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", c.folder, publicID, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(sum[:])

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", publicID)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(part, file); err != nil {
		return "", err
	}
	_ = w.WriteField("api_key", c.apiKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("public_id", publicID)
	_ = w.WriteField("folder", c.folder)
	_ = w.WriteField("signature", signature)
	if err = w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		SecureURL string `json:"secure_url"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: empty secure_url in response")
	}
	return body.SecureURL, nil
}
