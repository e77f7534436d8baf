package wechat

import "fmt"

// APIError is the error payload shared by every platform endpoint. Success
// responses carry no errcode field, so a zero code means no error.
type APIError struct {
	Code    int    `json:"errcode"`
	Message string `json:"errmsg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wechat api error %d: %s", e.Code, e.Message)
}

// Err returns the payload as an error when it represents a failure.
func (e *APIError) Err() error {
	if e.Code != 0 {
		return e
	}
	return nil
}

type tokenResponse struct {
	APIError
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type uploadImageResponse struct {
	APIError
	URL string `json:"url"`
}

type uploadThumbResponse struct {
	APIError
	MediaID string `json:"media_id"`
}

type draftResponse struct {
	APIError
	MediaID string `json:"media_id"`
}

type publishResponse struct {
	APIError
	PublishID int64 `json:"publish_id"`
}

// Draft is one article in a draft/add request.
type Draft struct {
	Title              string `json:"title"`
	Author             string `json:"author"`
	Digest             string `json:"digest"`
	Content            string `json:"content"`
	ContentSourceURL   string `json:"content_source_url"`
	ThumbMediaID       string `json:"thumb_media_id"`
	NeedOpenComment    int    `json:"need_open_comment"`
	OnlyFansCanComment int    `json:"only_fans_can_comment"`
}
