package core

var (
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}
	_ RawConfigLoader = (*EnvRawConfigLoader)(nil)
	_ RawConfigLoader = staticRawConfigLoader{}
)
