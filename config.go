package buildlog

import "github.com/devforge/buildlog/internal/runtimeconfig"

var (
	ErrContentDirRequired         = runtimeconfig.ErrContentDirRequired
	ErrGeneratorOutputDirRequired = runtimeconfig.ErrGeneratorOutputDirRequired
	ErrGeneratorBaseURLInvalid    = runtimeconfig.ErrGeneratorBaseURLInvalid
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrServerDebounceInvalid      = runtimeconfig.ErrServerDebounceInvalid
)

type (
	Config          = runtimeconfig.Config
	ContentConfig   = runtimeconfig.ContentConfig
	SiteConfig      = runtimeconfig.SiteConfig
	MarkdownConfig  = runtimeconfig.MarkdownConfig
	GeneratorConfig = runtimeconfig.GeneratorConfig
	ServerConfig    = runtimeconfig.ServerConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
