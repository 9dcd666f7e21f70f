package sessions

import (
	"time"

	"github.com/gin-gonic/gin"
)

func setSessionCookie(c *gin.Context, token string, expiry time.Duration) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(CookieName, token, int(expiry.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
