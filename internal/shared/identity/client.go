// Package identity 封装身份服务商（Google Identity Toolkit）客户端
//
// 会员账号由前端直接在身份服务商注册，服务端数据库只保存业务档案。
// 删除会员时需要同步删除服务商侧的账号，否则该邮箱可以重新登录。
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"members-admin/internal/config"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// scope 覆盖 Identity Toolkit 的账号管理接口
const scope = "https://www.googleapis.com/auth/identitytoolkit"

// ErrUserNotFound 服务商侧没有该邮箱对应的账号
var ErrUserNotFound = errors.New("identity: user not found")

// Client Google Identity Toolkit 客户端
type Client struct {
	hc        *http.Client
	baseURL   string
	projectID string
}

// NewClient 创建客户端
// 凭据来源：cfg.CredentialsFile（服务账号 JSON），为空时走默认凭据链
func NewClient(ctx context.Context, cfg config.IdentityConfig) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("identity project_id is required")
	}

	var ts oauth2.TokenSource
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, scope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials: %w", err)
		}
		ts = creds.TokenSource
	} else {
		creds, err := google.FindDefaultCredentials(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("find default credentials: %w", err)
		}
		ts = creds.TokenSource
	}

	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = 10 * time.Second

	return &Client{hc: hc, baseURL: defaultBaseURL, projectID: cfg.ProjectID}, nil
}

// DeleteUser 按服务商侧账号 ID（localId / uid）删除账号
func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	return c.deleteAccount(ctx, uid)
}

// DeleteUserByEmail 删除邮箱对应的服务商账号
// 先 accounts:lookup 取 localId，再 accounts:delete。
// 服务商侧查无此账号时返回 ErrUserNotFound，由调用方决定是否忽略。
func (c *Client) DeleteUserByEmail(ctx context.Context, email string) error {
	localID, err := c.lookupByEmail(ctx, email)
	if err != nil {
		return err
	}
	return c.deleteAccount(ctx, localID)
}

func (c *Client) lookupByEmail(ctx context.Context, email string) (string, error) {
	var resp struct {
		Users []struct {
			LocalID string `json:"localId"`
		} `json:"users"`
	}
	err := c.post(ctx, "accounts:lookup", map[string]any{"email": []string{email}}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Users) == 0 {
		return "", ErrUserNotFound
	}
	return resp.Users[0].LocalID, nil
}

func (c *Client) deleteAccount(ctx context.Context, localID string) error {
	return c.post(ctx, "accounts:delete", map[string]any{"localId": localID}, nil)
}

func (c *Client) post(ctx context.Context, method string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/projects/%s/%s", c.baseURL, c.projectID, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("identity %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error.Message == "USER_NOT_FOUND" || apiErr.Error.Message == "EMAIL_NOT_FOUND" {
			return ErrUserNotFound
		}
		return fmt.Errorf("identity %s: status %d: %s", method, resp.StatusCode, apiErr.Error.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("identity %s: decode response: %w", method, err)
		}
	}
	return nil
}
