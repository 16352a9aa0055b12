package security

import (
	"net/http"
	"strings"
	"time"

	"videohub/config"
	"videohub/internal/model"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieManager выставляет и очищает cookie с токенами.
// Обе cookie всегда HttpOnly
type CookieManager struct {
	secure   bool
	domain   string
	path     string
	sameSite http.SameSite
	now      func() time.Time
}

func NewCookieManager(cfg *config.CookieConfig) *CookieManager {
	path := cfg.Path
	if path == "" {
		path = "/"
	}

	return &CookieManager{
		secure:   cfg.Secure,
		domain:   cfg.Domain,
		path:     path,
		sameSite: parseSameSite(cfg.SameSite),
		now:      time.Now,
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

// SetAuthCookies : записывает оба токена, срок жизни cookie совпадает со сроком токена
func (m *CookieManager) SetAuthCookies(w http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(w, m.cookie(AccessTokenCookie, tokens.AccessToken, tokens.AccessTokenExpiresAt))
	http.SetCookie(w, m.cookie(RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshTokenExpiresAt))
}

// ClearAuthCookies : просит клиента удалить обе cookie
func (m *CookieManager) ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     m.path,
			Domain:   m.domain,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: m.sameSite,
		})
	}
}

func (m *CookieManager) cookie(name, value string, expiresAt time.Time) *http.Cookie {
	maxAge := int(expiresAt.Sub(m.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}

// ReadRefreshToken : refresh-токен из cookie, пустая строка если cookie нет
func ReadRefreshToken(r *http.Request) string {
	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
