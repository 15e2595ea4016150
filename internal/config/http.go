package config

// HTTPConfig holds the public listener timeouts.
type HTTPConfig struct {
	ReadTimeout     Duration
	WriteTimeout    Duration
	IdleTimeout     Duration
	ShutdownTimeout Duration
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		ReadTimeout:     durationEnvOrDefault(envHTTPReadTimeout, defaultHTTPReadTimeout),
		WriteTimeout:    durationEnvOrDefault(envHTTPWriteTimeout, defaultHTTPWriteTimeout),
		IdleTimeout:     durationEnvOrDefault(envHTTPIdleTimeout, defaultHTTPIdleTimeout),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
	}
}
