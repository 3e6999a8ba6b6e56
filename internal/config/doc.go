// Package config manages user-level settings stored at ~/.td/config.yaml.
// Values can be overridden with TD_* environment variables; the application
// id and tenant also honour the CLIMICROSOFTTODO_* names.
package config
