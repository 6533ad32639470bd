package config

import "maps"

// SiteConfig holds per-domain overrides for page fetching.
// Keys in File.Sites are bare hostnames (e.g., "example.com").
type SiteConfig struct {
	// Cookie is an HTTP cookie to send when fetching this site.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are custom HTTP headers to include in requests to this site.
	Headers map[string]string `yaml:"headers,omitempty"`

	// UserAgent overrides the global User-Agent for this site.
	UserAgent string `yaml:"userAgent,omitempty"`

	// TimeoutSeconds overrides the global fetch timeout for this site.
	// Zero means use the global timeout.
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`
}

// File represents the structure of the .webboost configuration file.
type File struct {
	// Sites maps hostnames to their site-specific configurations.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains default site configuration applied to all sites
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`

	// Weights overrides individual criterion weights. Criteria not
	// listed keep their default weight.
	Weights map[string]float64 `yaml:"weights,omitempty"`
}

// GetSiteConfig returns the configuration for a specific hostname,
// merging the site-specific configuration with defaults.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	result := cf.Defaults
	// The struct copy above still shares the Headers map with Defaults.
	// Clone it so merging site headers never mutates the defaults and
	// concurrent lookups stay safe.
	result.Headers = maps.Clone(cf.Defaults.Headers)

	if siteConfig, ok := cf.Sites[host]; ok {
		if siteConfig.Cookie != "" {
			result.Cookie = siteConfig.Cookie
		}
		if siteConfig.UserAgent != "" {
			result.UserAgent = siteConfig.UserAgent
		}
		if siteConfig.TimeoutSeconds != 0 {
			result.TimeoutSeconds = siteConfig.TimeoutSeconds
		}
		if len(siteConfig.Headers) > 0 {
			if result.Headers == nil {
				result.Headers = make(map[string]string)
			}
			for k, v := range siteConfig.Headers {
				result.Headers[k] = v
			}
		}
	}

	return result
}
