// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package docfile implements config.Loader for YAML and TOML documents, and
// reads declaration lists used by the render command.
//
// Both formats share one document shape:
//
//	emitters:
//	  - key: js
//	    default: true
//	    converters:
//	      - type: join
//	        properties: { terminator: ";" }
//	    writers:
//	      - type: script_tag
//	bundles:
//	  - key: footer
//	    emitters: [a, b]
//	    writers:
//	      - type: script_tag
package docfile
