package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/MarisolRV/crossover/internal"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// RateLimiterMiddleware limits the number of operation
// per second
func RateLimiterMiddleware(rps int) gin.HandlerFunc {
	limit := ratelimit.New(rps)
	return func(c *gin.Context) {
		limit.Take()
	}
}

// SecurityMiddleware adds essential security headers to every response
func SecurityMiddleware() gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "same-origin",
	})
	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		// For redirection avoid Header rewrite
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}

// RequestLoggerMiddleware logs each request once it has been served
func RequestLoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", resolveIP(c.Request)),
		)
	}
}

// ErrorMiddleware is a post middleware
// that handles errors for every requests
func ErrorMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Execute whatever endpoint is hit
		c.Next()

		// If no errors occurred then return early
		if len(c.Errors) == 0 {
			return
		}
		// The last error generated on the route wins
		err := c.Errors.Last().Err

		var coded *internal.Error
		if errors.As(err, &coded) {
			status := StatusOf(coded.Code())
			if status == http.StatusInternalServerError {
				log.Error("request failed", zap.Error(err))
			}
			c.JSON(status, HttpResponse{
				Success: false,
				Error: &HttpClientError{
					StatusCode:  status,
					Summary:     string(coded.Code()),
					Description: coded.Message(),
				},
			})
			return
		}

		var clientErr *HttpClientError
		if errors.As(err, &clientErr) {
			c.JSON(clientErr.StatusCode, HttpResponse{
				Success: false,
				Error:   clientErr,
			})
			return
		}

		// Anything else is a 500 with the detail kept out of the response
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, HttpResponse{
			Success: false,
			Error: &HttpClientError{
				StatusCode:  http.StatusInternalServerError,
				Summary:     "internal_server_error",
				Description: "Oops! Something went wrong. Please try again later.",
			},
		})
	}
}
