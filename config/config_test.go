package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "airsim",
		Username: "root",
		Password: "1",
		Options: []MySQLOption{
			{Key: "loc", Value: "Asia/Ho_Chi_Minh"},
			{Key: "timeout", Value: "5s"},
		},
	}
	assert.Equal(t,
		"root:1@tcp(localhost:3306)/airsim?loc=Asia%2FHo_Chi_Minh&timeout=5s&parseTime=true",
		c.DSN())
	assert.Equal(t,
		"mysql://root:1@tcp(localhost:3306)/airsim?loc=Asia%2FHo_Chi_Minh&timeout=5s&parseTime=true",
		c.MigrateURL())
}

func TestServerListen(t *testing.T) {
	l := ServerListen{Host: "localhost", Port: 4000}
	assert.Equal(t, ":4000", l.ListenString())
	assert.Equal(t, "localhost:4000", l.String())
}

func TestLoad__Defaults_And_File(t *testing.T) {
	dir := t.TempDir()
	content := `
mysql:
  host: db
  port: 3307
engine:
  world_id: 7
  delta_window: 2s
`
	err := os.WriteFile(path.Join(dir, "config.test.yml"), []byte(content), 0o600)
	assert.Equal(t, nil, err)

	conf := LoadTestConfig(dir)

	assert.Equal(t, "db", conf.MySQL.Host)
	assert.Equal(t, uint16(3307), conf.MySQL.Port)
	assert.Equal(t, int64(7), conf.Engine.WorldID)
	assert.Equal(t, 2*time.Second, conf.Engine.DeltaWindow)
	assert.Equal(t, time.Second, conf.Engine.HeadCacheTTL)
	assert.Equal(t, 15*time.Minute, conf.Engine.FuelPriceInterval)
	assert.Equal(t, int64(200), conf.Engine.FuelBasePrice)
	assert.Equal(t, uint16(4000), conf.Server.HTTP.Port)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestLoad__Invalid_Delta_Window_Panics(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(path.Join(dir, "config.test.yml"), []byte("engine:\n  delta_window: 0s\n"), 0o600)
	assert.Equal(t, nil, err)

	assert.Panics(t, func() {
		LoadTestConfig(dir)
	})
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(LogConfig{Level: "debug", Development: true})
	assert.NotNil(t, logger)

	assert.Panics(t, func() {
		NewLogger(LogConfig{Level: "verbose"})
	})
}
