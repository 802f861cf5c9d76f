// Package config handles loading and validating thermoparam configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Decoding parameter values by YAML tag (int, float, option list)
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Device.Name)
package config
