package photos

import (
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte         = 1024 * 1024
	imageCacheExpire = 60 * 60 // seconds
)

type variant string

const (
	variantFull  variant = "full"
	variantThumb variant = "thumb"
)

// ImageCache keeps recently served photo bytes in memory. freecache rejects
// entries over 1/1024 of its size, so full images are only cached when the
// cache is big enough; thumbnails always fit.
type ImageCache struct {
	cache *freecache.Cache
}

func NewImageCache(sizeMB int) *ImageCache {
	if sizeMB <= 0 {
		sizeMB = 64
	}
	return &ImageCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func cacheKey(userID int64, id string, v variant) []byte {
	return []byte(fmt.Sprintf("photo::%d::%s::%s", userID, id, v))
}

func (c *ImageCache) get(userID int64, id string, v variant) ([]byte, bool) {
	image, err := c.cache.Get(cacheKey(userID, id, v))
	if err != nil {
		return nil, false
	}
	return image, true
}

func (c *ImageCache) set(userID int64, id string, v variant, image []byte) {
	if err := c.cache.Set(cacheKey(userID, id, v), image, imageCacheExpire); err != nil {
		log.Tracef("photo %s [%s] not cached: %s", id, v, err)
	}
}

func (c *ImageCache) del(userID int64, id string) {
	c.cache.Del(cacheKey(userID, id, variantFull))
	c.cache.Del(cacheKey(userID, id, variantThumb))
}

func (c *ImageCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
