package admins

// Config holds the optional bootstrap credential.
type Config struct {
	// BootstrapUser is created at start-up when no admin exists yet.
	BootstrapUser string `mapstructure:"bootstrap_user" default:""`
	// BootstrapPassword is the password of BootstrapUser.
	BootstrapPassword string `mapstructure:"bootstrap_password" default:""`
}

// HasBootstrap reports whether both bootstrap fields are set.
func (c Config) HasBootstrap() bool {
	return c.BootstrapUser != "" && c.BootstrapPassword != ""
}
