// Package ratelimiter は、クライアントごとのリクエスト頻度を制限します。
package ratelimiter

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"review_backend/internal/platform/apperror"
)

// ErrTooManyRequests は上限を超えたリクエストに返されます。
var ErrTooManyRequests = apperror.New(apperror.KindRateLimited, "too many requests, try again later")

// window は1クライアント分の固定ウィンドウです。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、キー(クライアントIP等)ごとに interval あたり limit 回まで許可します。
// 複数のゴルーチンから安全に使用できます。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow はキーのリクエストを1回数え、許可されるかを返します。
// 拒否された場合はウィンドウがリセットされるまでの残り時間も返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	return true, 0
}

// Sweep は期限切れのウィンドウを破棄し、破棄した数を返します。
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, key)
			removed++
		}
	}
	return removed
}

// Middleware はクライアントIPごとに頻度を制限するGinミドルウェアを返します。
// 上限を超えた場合は429とRetry-Afterヘッダーを返します。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := rl.Allow(c.ClientIP())
		if !ok {
			secs := int(retryAfter.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			apperror.Abort(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
