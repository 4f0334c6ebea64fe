package configuration

type Configuration struct {
	HttpAddr          string `json:"http_addr" usage:"HTTP address"`
	Statics           string `json:"statics" usage:"statics directory, embedded page when empty"`
	ApiKey            string `json:"api_key" usage:"API key, authentication is disabled when key and secret are empty"`
	ApiSecret         string `json:"-" usage:"API secret"`
	Prefix            string `json:"prefix" usage:"formset prefix"`
	Placeholder       string `json:"placeholder" usage:"placeholder token in the blank row template"`
	EnableCompression bool   `json:"enable_compression" usage:"gzip responses"`
	Version           bool   `json:"version" usage:"show version and exit"`
	ShowBanner        bool   `json:"show_banner" usage:"show big banner"`
	ShowConfig        bool   `json:"show_config" usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		Statics:           "",
		Prefix:            "proofline_set",
		Placeholder:       "__prefix__",
		EnableCompression: true,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
