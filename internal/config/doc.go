// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic configuration model for emitters
// and bundles, along with the Loader interface that format-specific packages
// implement.
//
// The config.Model is the single input of the builder package. Stage and
// custom object properties are kept as cty values so every loader, whatever
// its source format, hands the builder the same representation.
package config
