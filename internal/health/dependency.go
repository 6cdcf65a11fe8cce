package health

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type DBChecker struct {
	db *gorm.DB
}

func NewDBChecker(db *gorm.DB) Checker {
	if db == nil {
		return nil
	}
	return &DBChecker{db: db}
}

func (c *DBChecker) Check(ctx context.Context) CheckResult {
	res := CheckResult{Name: "db", Healthy: true}
	sqlDB, err := c.db.DB()
	if err != nil {
		return unhealthy(res, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unhealthy(res, err)
	}
	return res
}

// CatalogSchemaChecker reports unhealthy until the catalog tables exist.
type CatalogSchemaChecker struct {
	db     *gorm.DB
	tables []string
}

func NewCatalogSchemaChecker(db *gorm.DB, tables ...string) Checker {
	if db == nil {
		return nil
	}
	return &CatalogSchemaChecker{db: db, tables: tables}
}

func (c *CatalogSchemaChecker) Check(ctx context.Context) CheckResult {
	res := CheckResult{Name: "catalog_schema", Healthy: true}
	m := c.db.WithContext(ctx).Migrator()
	for _, table := range c.tables {
		if !m.HasTable(table) {
			return unhealthy(res, fmt.Errorf("table %s missing", table))
		}
	}
	return res
}

type RedisChecker struct {
	client redis.UniversalClient
}

func NewRedisChecker(client redis.UniversalClient) Checker {
	if client == nil {
		return nil
	}
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Check(ctx context.Context) CheckResult {
	res := CheckResult{Name: "redis", Healthy: true}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return unhealthy(res, err)
	}
	return res
}

func unhealthy(res CheckResult, err error) CheckResult {
	res.Healthy = false
	res.Error = err.Error()
	return res
}
