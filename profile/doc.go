// Package profile loads named formatter settings from jv config files.
//
// A config file may be YAML, JSON or TOML:
//
//	indent: 4
//	profiles:
//	  wide:
//	    before-array-values: " "
//	    after-array-values: " "
//	    field-value-separator: " : "
//	  min:
//	    layout: compact
package profile
