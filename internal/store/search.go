package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"quickbite-client/internal/domain"
)

// SearchDebouncer 搜索框防抖：停止输入一个间隔后才真正下发
// fetchProducts。不满两个字符的输入只取消挂起的查询。
type SearchDebouncer struct {
	mu    sync.Mutex
	s     *Store
	delay time.Duration
	timer *time.Timer
}

func NewSearchDebouncer(s *Store, delay time.Duration) *SearchDebouncer {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &SearchDebouncer{s: s, delay: delay}
}

func (d *SearchDebouncer) Query(ctx context.Context, q string) {
	q = strings.TrimSpace(q)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if len([]rune(q)) < 2 {
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		_ = d.s.FetchProducts(ctx, domain.ProductQuery{Search: q})
	})
}

// Stop 取消尚未触发的查询（组件卸载时调用）。
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
