// Package config loads and validates the YAML configuration for the
// inventory demo driver.
//
// # Example
//
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  enabled: true
//	  port: 9090
//	  path: /metrics
//	persistence:
//	  dir: /var/lib/inventory
//	warehouses:
//	  - name: Mumbai
//	    products:
//	      - id: P-1001
//	        name: Laptop
//	        quantity: 0
//	        reorder_threshold: 5
//	  - name: Delhi
//	    products:
//	      - id: P-1001
//	        name: Laptop
//	        quantity: 3
//	        reorder_threshold: 5
//	      - id: P-2002
//	        name: Mouse
//	        quantity: 25
//	        reorder_threshold: 10
//
// Missing fields keep the defaults from Default(). All validation errors
// use errors.WrapInvalid for consistent error handling.
package config
