package utils

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// PickQuery copies the allowed query parameters off the dashboard request
// so they can be relayed upstream. Unknown parameters are dropped rather
// than forwarded blindly.
func PickQuery(c *gin.Context, keys ...string) url.Values {
	q := url.Values{}
	for _, key := range keys {
		if value, ok := c.GetQuery(key); ok {
			q.Set(key, value)
		}
	}
	return q
}

// CollectFormFields gathers the named text fields from a multipart form
// into the field map handed to the upload body builder. Absent fields are
// omitted so partial updates stay partial.
func CollectFormFields(c *gin.Context, names ...string) map[string]any {
	fields := make(map[string]any)
	for _, name := range names {
		if value, ok := c.GetPostForm(name); ok {
			fields[name] = value
		}
	}
	return fields
}
