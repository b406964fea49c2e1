package cache

import (
	"context"
	"time"

	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const pageKeyPrefix = "page:"

type cachedPage struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
}

func pageKey(c *fiber.Ctx) string {
	return pageKeyPrefix + c.OriginalURL()
}

// PageCache returns middleware that serves whole rendered pages from
// Redis. Only successful GET responses are cached, and entries live
// for the given TTL rather than being invalidated on writes, so a
// freshly published post can take up to the TTL to appear.
func PageCache(ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || client == nil {
			observability.PageCacheHits.WithLabelValues("bypass").Inc()
			return c.Next()
		}

		key := pageKey(c)
		var page cachedPage
		if err := GetJSON(c.UserContext(), key, &page); err == nil {
			observability.PageCacheHits.WithLabelValues("hit").Inc()
			c.Set(fiber.HeaderContentType, page.ContentType)
			c.Set("X-Page-Cache", "hit")
			return c.Send(page.Body)
		}
		observability.PageCacheHits.WithLabelValues("miss").Inc()

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			_ = SetJSON(c.UserContext(), key, cachedPage{
				Body:        body,
				ContentType: string(c.Response().Header.ContentType()),
			}, ttl)
		}
		return nil
	}
}

// ClearPages removes every cached page. Tests and the seed tool use it
// to avoid serving stale content after bulk writes.
func ClearPages(ctx context.Context) error {
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, pageKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return Delete(ctx, keys...)
}
