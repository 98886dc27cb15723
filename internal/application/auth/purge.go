package auth

import (
	"context"
	"log"
	"time"

	"github.com/zhangwei/bookshop/internal/domain/token"
	"github.com/zhangwei/bookshop/pkg/metrics"
)

// StartPurgeLoop 启动黑名单定时清理任务
// 周期性删除已过期的吊销记录(Token本身过期后黑名单记录失去意义)。
// 固定周期的后台任务,清理耗时不落在任何用户请求的关键路径上;
// ctx取消时退出,阻塞调用,应以goroutine方式启动
func StartPurgeLoop(ctx context.Context, tokenService token.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Token黑名单清理任务已启动: interval=%s", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Token黑名单清理任务退出")
			return
		case <-ticker.C:
			purged, err := tokenService.PurgeExpired(ctx)
			if err != nil {
				log.Printf("Token黑名单清理失败: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Token黑名单清理完成: 删除%d条过期记录", purged)
				if metrics.TokensPurgedTotal != nil {
					metrics.TokensPurgedTotal.Add(float64(purged))
				}
			}
		}
	}
}
