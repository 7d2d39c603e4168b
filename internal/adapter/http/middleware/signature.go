package middleware

import (
	"bytes"
	"io"
	"net/http"

	"brokerage_crm/internal/infrastructure/browserbase"
	"brokerage_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBody = 1 << 20

var errInvalidSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)

// VerifySignature checks the HMAC-SHA256 signature of the raw body against secret.
// An empty secret disables the check. The body is restored for the next handler.
func VerifySignature(secret string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unreadable request body", http.StatusBadRequest).ToHTTPError())
			return
		}
		if !browserbase.Verify(secret, body, c.GetHeader(browserbase.SignatureHeader)) {
			if log != nil {
				log.Warn("webhook signature rejected", zap.String("path", c.Request.URL.Path))
			}
			c.AbortWithStatusJSON(errInvalidSignature.HTTPStatus, errInvalidSignature.ToHTTPError())
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}
