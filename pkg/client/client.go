// Package client 는 huffman 서버 HTTP API 클라이언트.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cb17225/huffman-compression/internal/handler"
	"github.com/cb17225/huffman-compression/internal/model"
	"github.com/cb17225/huffman-compression/internal/service"
	"github.com/cb17225/huffman-compression/pkg/huffman"
)

// 요청 시 Payload 구조체
type ReqPayload interface {
	handler.EncodeReq | handler.DecodeReq | handler.StatsReq | handler.ProfileReq
}

// 응답 시 받는 데이터 구조체
type RespObject interface {
	handler.EncodeResp | handler.DecodeResp | service.Stats | model.Profile | []model.Profile | map[string]string
}

// APIError 는 2xx 가 아닌 응답.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("huffman api: %d: %s", e.Status, e.Message) }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func do[R RespObject](c *Client, method, path string, body io.Reader) (*R, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = string(data)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	var out R
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: [%s %s]: %w", method, path, err)
	}
	return &out, nil
}

func post[T ReqPayload, R RespObject](c *Client, path string, payload T) (*R, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return do[R](c, http.MethodPost, path, bytes.NewReader(b))
}

func get[R RespObject](c *Client, path string) (*R, error) {
	return do[R](c, http.MethodGet, path, nil)
}

func (c *Client) Encode(req handler.EncodeReq) (*handler.EncodeResp, error) {
	return post[handler.EncodeReq, handler.EncodeResp](c, "/api/v1/encode", req)
}

func (c *Client) Decode(req handler.DecodeReq) (string, error) {
	resp, err := post[handler.DecodeReq, handler.DecodeResp](c, "/api/v1/decode", req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *Client) Stats(text string) (*service.Stats, error) {
	return post[handler.StatsReq, service.Stats](c, "/api/v1/stats", handler.StatsReq{Text: text})
}

func (c *Client) SaveProfile(req handler.ProfileReq) (*model.Profile, error) {
	return post[handler.ProfileReq, model.Profile](c, "/api/v1/profiles", req)
}

func (c *Client) Profile(name string) (*model.Profile, error) {
	return get[model.Profile](c, "/api/v1/profiles/"+url.PathEscape(name))
}

func (c *Client) Profiles() ([]model.Profile, error) {
	list, err := get[[]model.Profile](c, "/api/v1/profiles")
	if err != nil {
		return nil, err
	}
	return *list, nil
}

// Codes 는 서버 응답("심볼번호": 코드)을 CodeTable 로 바꾼다.
func (c *Client) Codes(name string) (huffman.CodeTable, error) {
	raw, err := get[map[string]string](c, "/api/v1/profiles/"+url.PathEscape(name)+"/codes")
	if err != nil {
		return nil, err
	}
	out := make(huffman.CodeTable, len(*raw))
	for k, code := range *raw {
		sym, err := strconv.Atoi(k)
		if err != nil || sym < 0 || sym >= huffman.AlphabetSize {
			return nil, fmt.Errorf("codes: bad symbol %q", k)
		}
		out[byte(sym)] = code
	}
	return out, nil
}
