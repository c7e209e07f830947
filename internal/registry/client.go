// Package registry implements the Docker Hub lookups the facade needs:
// an anonymous tag existence probe and the token-exchange manifest digest
// resolution used for freshness comparison.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	defaultHubURL      = "https://registry.hub.docker.com"
	defaultAuthURL     = "https://auth.docker.io"
	defaultRegistryURL = "https://registry-1.docker.io"

	authService       = "registry.docker.io"
	manifestMediaType = "application/vnd.docker.distribution.manifest.v2+json"
)

// Client talks to the registry. Both flows are stateless and uncached;
// each call is independent.
type Client struct {
	httpClient  *http.Client
	hubURL      string
	authURL     string
	registryURL string
}

// NewClient returns a client bound to the public Docker Hub endpoints.
func NewClient() *Client {
	return NewClientWithEndpoints(defaultHubURL, defaultAuthURL, defaultRegistryURL)
}

// NewClientWithEndpoints overrides the hub, auth service, and registry
// base URLs. Tests point these at local servers.
func NewClientWithEndpoints(hubURL, authURL, registryURL string) *Client {
	return &Client{
		httpClient:  http.DefaultClient,
		hubURL:      hubURL,
		authURL:     authURL,
		registryURL: registryURL,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type manifestResponse struct {
	Config struct {
		Digest string `json:"digest"`
	} `json:"config"`
}

// TagExists issues the anonymous existence probe for repositoryPath:tag.
// Any 2xx status means the tag is present.
func (c *Client) TagExists(ctx context.Context, repositoryPath, tag string) (bool, error) {
	endpoint := fmt.Sprintf("%s/v2/repositories/%s/tags/%s/", c.hubURL, repositoryPath, tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build tag request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to reach registry: %w", err)
	}
	defer resp.Body.Close()

	// Drain the body so the connection is released for reuse.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return false, fmt.Errorf("failed to read tag response: %w", err)
	}

	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}

// ManifestDigest resolves the config digest for repositoryPath:tag through
// the two-step pull-token exchange: fetch an anonymous pull token, then
// fetch the v2 manifest with it.
func (c *Client) ManifestDigest(ctx context.Context, repositoryPath, tag string) (string, error) {
	token, err := c.pullToken(ctx, repositoryPath)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v2/%s/manifests/%s", c.registryURL, repositoryPath, tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build manifest request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", manifestMediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("manifest request failed with status: %d %s", resp.StatusCode, resp.Status)
	}

	var manifest manifestResponse
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return "", fmt.Errorf("failed to parse manifest: %w", err)
	}

	return manifest.Config.Digest, nil
}

// pullToken fetches an anonymous bearer token scoped to pulling
// repositoryPath.
func (c *Client) pullToken(ctx context.Context, repositoryPath string) (string, error) {
	scope := url.QueryEscape(fmt.Sprintf("repository:%s:pull", repositoryPath))
	endpoint := fmt.Sprintf("%s/token?service=%s&scope=%s", c.authURL, authService, scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status: %d %s", resp.StatusCode, resp.Status)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	return token.Token, nil
}
