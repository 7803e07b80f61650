package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const maxResponseSize = 1 << 20

// ClerkClient ходит в Backend API, совместимый с Clerk:
// GET {baseURL}/v1/users/{id} с секретным ключом в Authorization.
type ClerkClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClerkClient(baseURL, secretKey string, timeout time.Duration) *ClerkClient {
	return &ClerkClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ClerkClient) GetUser(ctx context.Context, userID string) (*Profile, error) {
	endpoint := c.baseURL + "/v1/users/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read identity response: %w", err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, fmt.Errorf("identity provider returned status %d", res.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("identity provider returned invalid json")
	}

	fields := gjson.GetManyBytes(body, "id", "first_name", "last_name", "username", "profile_image_url", "image_url")
	profile := &Profile{
		ID:              fields[0].String(),
		FirstName:       fields[1].String(),
		LastName:        fields[2].String(),
		Username:        fields[3].String(),
		ProfileImageURL: fields[4].String(),
	}
	if profile.ProfileImageURL == "" {
		profile.ProfileImageURL = fields[5].String()
	}
	if profile.ID == "" {
		profile.ID = userID
	}
	return profile, nil
}
