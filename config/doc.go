// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// Every section has defaults, so a missing file path yields a usable
// configuration. Routing settings here are used when a request document
// carries no routing_settings of its own.
package config
