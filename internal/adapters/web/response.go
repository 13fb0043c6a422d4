package web

import "github.com/gin-gonic/gin"

// languageOption is one selector entry, labeled in its own language.
type languageOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// languageResponse is the payload of GET and PUT /api/v1/language.
type languageResponse struct {
	Current  string           `json:"current"`
	Fallback string           `json:"fallback"`
	Options  []languageOption `json:"options"`
}

type changeLanguageRequest struct {
	Locale string `json:"locale" binding:"required"`
}

type translateRequest struct {
	Key    string            `json:"key" binding:"required"`
	Locale string            `json:"locale"`
	Params map[string]string `json:"params"`
}

type translateResponse struct {
	Key     string `json:"key"`
	Locale  string `json:"locale,omitempty"`
	Outcome string `json:"outcome"`
	Text    string `json:"text"`
}

type healthResponse struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Version string   `json:"version"`
	Locale  string   `json:"locale"`
	Locales []string `json:"locales"`
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
