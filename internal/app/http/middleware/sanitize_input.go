package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeAndCleanInputMiddleware strips markup from every string field in a
// JSON body, including nested objects and arrays. Applied to public write
// routes; submitted profile text ends up rendered on public pages.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}

		var body any
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, _ := json.Marshal(sanitizeValue(body))
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return sanitizePolicy.Sanitize(v)
	case map[string]any:
		for k, item := range v {
			v[k] = sanitizeValue(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = sanitizeValue(item)
		}
		return v
	default:
		return v
	}
}
