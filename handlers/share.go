// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"

	"github.com/danielhkuo/starvote/cliparse"
	"github.com/danielhkuo/starvote/middleware"
	"github.com/danielhkuo/starvote/models"
)

// QRServiceURL renders QR codes for the share dialog
const QRServiceURL = "https://api.qrserver.com/v1/create-qr-code/"

type ShareHandler struct {
	cfg cliparse.Config
}

func NewShareHandler(cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{cfg: cfg}
}

// GetShare handles GET /api/share
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, ShareLinks(r, h.cfg))
}

// ShareLinks returns the page URL and the QR image URL that encodes it.
// The configured public URL wins over the request host.
func ShareLinks(r *http.Request, cfg cliparse.Config) models.ShareResponse {
	pageURL := cfg.PublicURL
	if pageURL == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		pageURL = scheme + "://" + r.Host + "/"
	}
	return models.ShareResponse{
		URL:        pageURL,
		QRImageURL: QRImageURL(pageURL),
	}
}

// QRImageURL builds the external QR endpoint URL for data
func QRImageURL(data string) string {
	q := url.Values{}
	q.Set("size", "180x180")
	q.Set("data", data)
	q.Set("color", "0f172a")
	return QRServiceURL + "?" + q.Encode()
}
