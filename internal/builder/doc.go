// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package builder turns a loaded configuration model into the immutable
// emitter catalog that every request registry renders through.
//
// # Why Builder Exists
//
// Loaders only describe stages by type name and properties. The builder is
// the single place where those descriptions meet the registered Go factories,
// where emit modes are applied, and where the configuration is rejected if it
// cannot produce a working pipeline. Doing this once per process means a
// request never pays for, or fails on, configuration problems.
//
// # Responsibilities
//
//   - **Uniqueness:** emitter keys and bundle keys are unique; at most one
//     emitter is flagged default.
//   - **Instantiation:** every configured stage and custom object is built
//     through the handlers catalogue, with properties bound onto its options.
//   - **Mode gating:** stages whose emit mode does not match the debug
//     context are dropped. The decision is final for the catalog's lifetime.
//   - **Cardinality:** after gating, an emitter has exactly one converter and
//     at most one writer, and a bundle has exactly one writer. An emitter may
//     lack a writer only when some bundle lists it as a member.
//
// # Example
//
//	emitter "js" {
//	  converter "join" {}
//	  writer "script_tag" { emit_mode = "live_only" }
//	  writer "raw"        { emit_mode = "debug_only" }
//	}
//
// Both writers are configured, but only one survives gating in either
// context, so the configuration is valid. Without the emit_mode attributes it
// is rejected with a MultipleActiveStagesError.
package builder
