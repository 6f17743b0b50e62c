// Package config provides configuration parsing for welgo projects.
//
// The configuration is stored in welgo.yaml (or welgo.json) at the project
// root. This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	name: docs
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	render:
//	  concurrency: 16
//	  sanitizeRawHTML: true
//	metrics:
//	  enabled: true
//	routes:
//	  - path: /
//	    document: pages/home.yaml
//	  - path: /about
//	    document: pages/about.yaml
//	build:
//	  output: dist
//	  s3:
//	    bucket: my-site
//	    region: eu-west-1
//	context:
//	  siteName: Docs
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
