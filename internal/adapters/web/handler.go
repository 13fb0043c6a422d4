package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"passerelle/internal/ports/input"
)

const (
	// localeCookieName is read by the site's pages to restore the visitor's
	// choice on load.
	localeCookieName   = "passerelle_lang"
	localeCookieMaxAge = 365 * 24 * 60 * 60
)

// Handler exposes the localization service over HTTP.
type Handler struct {
	localizer input.Localizer
}

func NewHandler(localizer input.Localizer) *Handler {
	return &Handler{localizer: localizer}
}

// RegisterRoutes mounts the localization endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/locales/:file", h.LocaleDocument)

	api := r.Group("/api/v1")
	{
		api.GET("/language", h.Language)
		api.PUT("/language", h.ChangeLanguage)
		api.POST("/translate", h.Translate)
	}
}

// Health reports the service identity and its locale state.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: version,
		Locale:  h.localizer.CurrentLocale(),
		Locales: h.localizer.Locales(),
	})
}

// Language reports the locale state and the selector options. Exactly one
// option is active.
func (h *Handler) Language(c *gin.Context) {
	c.JSON(http.StatusOK, h.languagePayload())
}

// ChangeLanguage applies the requested locale and answers with the state
// actually applied (the fallback when the locale is unknown). The effective
// locale is also written to a one-year cookie.
func (h *Handler) ChangeLanguage(c *gin.Context) {
	var req changeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "locale requise")
		return
	}

	effective := h.localizer.SetLocale(c.Request.Context(), req.Locale)
	setLocaleCookie(c, effective)
	c.JSON(http.StatusOK, h.languagePayload())
}

// Translate resolves one key, optionally pinned to an explicit locale.
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "clé de traduction requise")
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = h.localizer.CurrentLocale()
	}

	res := h.localizer.Resolve(locale, req.Key, req.Params)
	c.JSON(http.StatusOK, translateResponse{
		Key:     res.Key,
		Locale:  res.Locale,
		Outcome: res.Outcome.String(),
		Text:    res.Text,
	})
}

// LocaleDocument serves the raw translation table as <locale>.json, the
// document the site fetches at startup.
func (h *Handler) LocaleDocument(c *gin.Context) {
	locale, found := strings.CutSuffix(c.Param("file"), ".json")
	if !found {
		errorResponse(c, http.StatusNotFound, "document de traduction introuvable")
		return
	}

	table, err := h.localizer.Table(locale)
	if err != nil {
		errorResponse(c, http.StatusNotFound, "locale inconnue")
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) languagePayload() languageResponse {
	current := h.localizer.CurrentLocale()
	locales := h.localizer.Locales()

	options := make([]languageOption, 0, len(locales))
	for _, id := range locales {
		options = append(options, languageOption{
			Code:   id,
			Label:  h.localizer.TranslateIn(id, "language."+id, nil),
			Active: id == current,
		})
	}

	return languageResponse{
		Current:  current,
		Fallback: h.localizer.FallbackLocale(),
		Options:  options,
	}
}

func setLocaleCookie(c *gin.Context, locale string) {
	c.SetSameSite(http.SameSiteLaxMode)
	// Not HttpOnly: the page script reads it to apply the locale without a
	// round trip.
	c.SetCookie(localeCookieName, locale, localeCookieMaxAge, "/", "", false, false)
}
