package file

import (
	"BikeShare/src/config"
	"sync"
)

// Cache 缓存已加载的城市数据；数据文件变化时由 FileMonitor 失效
type Cache struct {
	cfg  *config.Config
	data map[string]*Dataset
	mu   sync.RWMutex
	load func(*config.Config, string) (*Dataset, error)
}

func NewCache(cfg *config.Config) *Cache {
	return &Cache{
		cfg:  cfg,
		data: make(map[string]*Dataset),
		load: LoadCity,
	}
}

// Load 返回城市数据，未缓存时从文件读取。第二个返回值表示是否命中缓存
func (c *Cache) Load(city string) (*Dataset, bool, error) {
	c.mu.RLock()
	ds, ok := c.data[city]
	c.mu.RUnlock()
	if ok {
		return ds, true, nil
	}

	ds, err := c.load(c.cfg, city)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.data[city] = ds
	c.mu.Unlock()
	return ds, false, nil
}

// Invalidate 删除某个城市的缓存
func (c *Cache) Invalidate(city string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, city)
}

// InvalidateFile 根据变化的文件路径失效对应城市，返回城市名
func (c *Cache) InvalidateFile(path string) (string, bool) {
	city, ok := c.cfg.CityForFile(path)
	if ok {
		c.Invalidate(city)
	}
	return city, ok
}
