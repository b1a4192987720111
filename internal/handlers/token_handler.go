package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/Keoroanthony/go-orders/configs"
)

// TokenHandler exchanges client credentials for an access token by
// forwarding the request to the identity provider and relaying its status
// code and body unchanged. No local validation, no caching.
type TokenHandler struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Audience     string
	Client       *http.Client
}

func NewTokenHandler(cfg *config.Settings) *TokenHandler {
	return &TokenHandler{
		TokenURL:     fmt.Sprintf("https://%s/oauth/token", cfg.Auth0Domain),
		ClientID:     cfg.Auth0ClientID,
		ClientSecret: cfg.Auth0ClientSecret,
		Audience:     cfg.Auth0APIAudience,
		Client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
}

func (h *TokenHandler) Exchange(c *gin.Context) {
	var req TokenRequest

	// An empty body is allowed: every field has a configured default.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.GrantType == "" {
		req.GrantType = "client_credentials"
	}
	if req.ClientID == "" {
		req.ClientID = h.ClientID
	}
	if req.ClientSecret == "" {
		req.ClientSecret = h.ClientSecret
	}
	if req.Audience == "" {
		req.Audience = h.Audience
	}

	body, err := json.Marshal(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.TokenURL, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "identity provider unreachable"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read identity provider response"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	c.Data(resp.StatusCode, contentType, respBody)
}
