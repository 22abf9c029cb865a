// Package config loads the YAML run configuration for the crucible CLI:
// which grid file to read, which move policies to evaluate, and how to log
// and report metrics.
//
// Loading sequence: read file → yaml.Unmarshal → ApplyDefaults → Validate.
// A missing file is not an error for LoadOrDefault; the defaults evaluate
// the standard and extended policies.
//
// Example file:
//
//	input: day17.txt
//	policies:
//	  - name: standard
//	  - name: extended
//	  - name: wobbly
//	    min_run: 2
//	    max_run: 5
//	logging:
//	  level: debug
//	  format: json
//	metrics:
//	  enabled: true
//	  namespace: crucible
package config
