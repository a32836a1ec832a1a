// Package config provides configuration parsing for tagtree sites.
//
// The configuration is stored in site.json at the site root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-site",
//	  "documents": "content",
//	  "static": {
//	    "dir": "static",
//	    "prefix": "/static/"
//	  },
//	  "preview": {
//	    "port": 8000,
//	    "host": "127.0.0.1",
//	    "watch": ["content", "static"],
//	    "hotReload": true
//	  },
//	  "publish": {
//	    "backend": "s3",
//	    "bucket": "my-site",
//	    "region": "us-east-1",
//	    "prefix": "prod"
//	  },
//	  "assets": {
//	    "fingerprint": true
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Preview.Port)
package config
