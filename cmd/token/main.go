// token 用配置中的JWT密钥签发访问令牌,供调用写接口使用
//
//	go run ./cmd/token -sub librarian -name "Front Desk"
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "admin", "令牌主体")
	name := flag.String("name", "", "显示名称")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	manager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpire)
	token, err := manager.GenerateToken(*subject, *name)
	if err != nil {
		log.Fatalf("签发令牌失败: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(token); err != nil {
		log.Fatalf("输出令牌失败: %v", err)
	}
}
