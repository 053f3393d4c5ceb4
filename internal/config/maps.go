package config

type MapsConfig struct {
	GoogleAPIKey string `yaml:"google_api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		GoogleAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
	}
}
