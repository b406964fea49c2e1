package cache

import (
	"context"
	"fmt"
	"time"
)

// Key builders and TTLs for the application's cached objects. Entity
// caches are invalidated explicitly on writes; page caches expire on
// their own short TTL.
const (
	GroupTTL   = 5 * time.Minute
	ProfileTTL = 2 * time.Minute
)

func GroupKey(slug string) string {
	return fmt.Sprintf("group:slug:%s", slug)
}

func GroupListKey() string {
	return "group:list"
}

func ProfileKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

// InvalidateGroup drops the cached group entry and the group listing.
func InvalidateGroup(ctx context.Context, slug string) {
	_ = Delete(ctx, GroupKey(slug), GroupListKey())
}

// InvalidateProfile drops the cached profile for a username.
func InvalidateProfile(ctx context.Context, username string) {
	_ = Delete(ctx, ProfileKey(username))
}
