package wechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Tokens are refreshed this long before the platform's reported expiry to
// avoid racing in-flight requests against an expiring credential.
const tokenSafetyMargin = 600 * time.Second

// Client talks to the WeChat Official Account API. The access token is a
// short-lived credential cached on the client together with its expiry and
// refreshed lazily inside each call; it is never shared through globals.
// The client is not safe for concurrent use, which matches the pipeline's
// single-writer model.
type Client struct {
	appID      string
	appSecret  string
	baseURL    string
	httpClient *http.Client

	token        string
	tokenExpires time.Time
}

// NewClient creates a platform client. baseURL is overridable so tests can
// point at a local server; pass nil for the default HTTP client.
func NewClient(appID, appSecret, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		appID:      appID,
		appSecret:  appSecret,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.token != "" && time.Now().Before(c.tokenExpires) {
		return c.token, nil
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/token?grant_type=client_credential&appid=%s&secret=%s",
		c.baseURL, url.QueryEscape(c.appID), url.QueryEscape(c.appSecret))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var result tokenResponse
	if err := c.do(req, &result); err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	if err := result.Err(); err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("failed to obtain access token: empty token in response")
	}

	c.token = result.AccessToken
	c.tokenExpires = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenSafetyMargin)

	return c.token, nil
}

// UploadImage uploads an inline image and returns its remote URL.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/media/uploadimg?access_token=%s", c.baseURL, url.QueryEscape(token))

	var result uploadImageResponse
	if err := c.postMedia(ctx, endpoint, path, &result); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if err := result.Err(); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return result.URL, nil
}

// UploadThumb uploads a thumbnail as permanent material and returns its
// media id, the value the draft API requires.
func (c *Client) UploadThumb(ctx context.Context, path string) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/material/add_material?access_token=%s&type=thumb", c.baseURL, url.QueryEscape(token))

	var result uploadThumbResponse
	if err := c.postMedia(ctx, endpoint, path, &result); err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	if err := result.Err(); err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	return result.MediaID, nil
}

// AddDraft creates a single-article draft and returns its media id.
func (c *Client) AddDraft(ctx context.Context, draft Draft) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/draft/add?access_token=%s", c.baseURL, url.QueryEscape(token))

	payload := struct {
		Articles []Draft `json:"articles"`
	}{Articles: []Draft{draft}}

	var result draftResponse
	if err := c.postJSON(ctx, endpoint, payload, &result); err != nil {
		return "", fmt.Errorf("failed to create draft: %w", err)
	}
	if err := result.Err(); err != nil {
		return "", fmt.Errorf("failed to create draft: %w", err)
	}

	return result.MediaID, nil
}

// PublishDraft submits a draft for publication and returns the publish id.
// The platform may refuse this independently of draft creation when the
// account lacks auto-publish permission.
func (c *Client) PublishDraft(ctx context.Context, mediaID string) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/freepublish/submit?access_token=%s", c.baseURL, url.QueryEscape(token))

	payload := map[string]string{"media_id": mediaID}

	var result publishResponse
	if err := c.postJSON(ctx, endpoint, payload, &result); err != nil {
		return "", fmt.Errorf("failed to submit draft for publication: %w", err)
	}
	if err := result.Err(); err != nil {
		return "", fmt.Errorf("failed to submit draft for publication: %w", err)
	}

	return strconv.FormatInt(result.PublishID, 10), nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload, result any) error {
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	return c.do(req, result)
}

func (c *Client) postMedia(ctx context.Context, endpoint, path string, result any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open media file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read media file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
