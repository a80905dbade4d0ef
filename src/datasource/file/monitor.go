// monitor.go
package file

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// 关心的文件事件：写入、新建、删除、重命名都会让缓存过期
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

type FileMonitor struct {
	watchDir string
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	closed   bool
}

func NewFileMonitor(dir string) (*FileMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &FileMonitor{
		watchDir: dir,
		watcher:  watcher,
	}, nil
}

// Watch 阻塞监听目录变化，文件变化时调用 handler，直到 Close。
// 监听出错时交给 onError 处理并继续监听
func (m *FileMonitor) Watch(handler func(string), onError func(error)) {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&changeOps != 0 {
				handler(event.Name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close 停止监听
func (m *FileMonitor) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	return m.watcher.Close()
}
