// Package config manages user-level settings stored at ~/.couchapp/config.yaml.
// Values may also come from COUCHAPP_* environment variables. It provides the
// default template set for init, extra template search roots, and verbosity.
package config
