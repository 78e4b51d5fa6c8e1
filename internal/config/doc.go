// Package config loads the hsmanager configuration.
//
// Configuration is resolved in this order, later sources overriding earlier
// ones:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. The YAML file at ~/.config/hsmanager/config.yaml, or the file given
//     with --config
//  3. Environment variables (HSMANAGER_PROFILES, HSMANAGER_LOG_LEVEL,
//     HSMANAGER_COLOR)
//  4. Command line flags, applied by the cmd package
//
// A missing configuration file is not an error. A malformed or invalid file
// yields a ConfigurationError describing the problem.
//
// Example file:
//
//	storage:
//	  profilesFile: /srv/hsmanager/profiles.json
//	  atomicWrites: true
//	registry:
//	  missingPolicy: report
//	shell:
//	  prompt: "> "
//	  inspectBack: true
//	  fatalLoadErrors: false
//	  color: auto
//	logging:
//	  level: info
package config
