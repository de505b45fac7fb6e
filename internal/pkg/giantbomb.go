package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const giantBombBaseURL = "https://www.giantbomb.com/api"

// GiantBombClient 第三方游戏图鉴 API 的只读客户端
type GiantBombClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewGiantBombClient(apiKey, baseURL string) *GiantBombClient {
	if baseURL == "" {
		baseURL = giantBombBaseURL
	}
	return &GiantBombClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Search 游戏搜索，返回原始响应体和条目总数
func (c *GiantBombClient) Search(ctx context.Context, query string, page, limit int) (map[string]any, int64, error) {
	offset := (page - 1) * limit
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("query", query)
	params.Set("resources", "game")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if v, ok := body["number_of_total_results"].(float64); ok {
		total = int64(v)
	}
	return body, total, nil
}

// Game 游戏详情
func (c *GiantBombClient) Game(ctx context.Context, id string) (map[string]any, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	return c.get(ctx, "/game/"+url.PathEscape(id), params)
}

func (c *GiantBombClient) get(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("giantbomb: unexpected status %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
