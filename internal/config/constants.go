// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "Darae API"
	AppVersion = "2.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8000"
	DefaultLogLevel         = "info"
	DefaultDatabaseDriver   = "postgres"
	DefaultListLimit        = 100
	DefaultAccessTokenTTL   = 7 * 24 * time.Hour
	DefaultCORSAllowOrigin  = "http://localhost:5173"
	DefaultCORSMaxAgeSecond = 300
)
