// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl_adapter implements config.Loader for HCL files.
//
// A configuration is a set of emitter and bundle blocks. Each stage is a
// nested block labelled with its registered type name:
//
//	emitter "js" {
//	  default = true
//	  converter "join" { terminator = ";" }
//	  writer "script_tag" {}
//	}
//
//	bundle "footer" {
//	  emitters = ["a", "b"]
//	  writer "script_tag" {}
//	}
package hcl_adapter
