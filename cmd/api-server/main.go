// Package main API Server 入口
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/apiserver/committee"
	"members-admin/internal/apiserver/member"
	"members-admin/internal/apiserver/server"
	"members-admin/internal/config"
	"members-admin/internal/shared/identity"
	objstore "members-admin/internal/shared/minio"
	"members-admin/internal/shared/storage/mongostore"
)

func main() {
	// 加载配置（自动加载 .env，根据 APP_ENV 选择 YAML）
	cfg := config.Load()

	log.Printf("Starting API Server... [env=%s]", cfg.Env)
	log.Printf("Config: %s", cfg.String())

	// 初始化 MongoDB
	store, err := mongostore.NewStore(cfg.DatabaseURL, cfg.DatabaseDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close()
	log.Println("Connected to MongoDB")

	authCfg := auth.Config{
		JWTSecret:      cfg.Auth.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL(),
	}
	if !authCfg.Enabled() {
		log.Println("WARNING: JWT_SECRET not set, running without authentication")
	}

	// 对象存储（可选，委员会头像清理）
	var photos committee.ObjectStore
	if cfg.MinIO.Endpoint != "" {
		client, err := objstore.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to create object store client: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := client.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatalf("Failed to ensure bucket: %v", err)
		}
		cancel()
		photos = client
		log.Printf("Connected to object store: %s", cfg.MinIO.Endpoint)
	}

	// 身份服务商（可选，账号删除）
	var provider member.IdentityProvider
	if cfg.Identity.ProjectID != "" {
		client, err := identity.NewClient(context.Background(), cfg.Identity)
		if err != nil {
			log.Fatalf("Failed to create identity client: %v", err)
		}
		provider = client
		log.Printf("Identity provider enabled: project %s", cfg.Identity.ProjectID)
	}

	h := server.NewHandler(store, photos, provider, authCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 优雅关闭
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("API Server listening on :%s", cfg.APIPort)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server stopped")
}
