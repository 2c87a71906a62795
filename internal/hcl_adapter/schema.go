// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Emitters []*emitterBlock `hcl:"emitter,block"`
	Bundles  []*bundleBlock  `hcl:"bundle,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type emitterBlock struct {
	Key           string        `hcl:"key,label"`
	Default       bool          `hcl:"default,optional"`
	CustomObject  *stageBlock   `hcl:"custom_object,block"`
	PreModifiers  []*stageBlock `hcl:"pre_modifier,block"`
	Converters    []*stageBlock `hcl:"converter,block"`
	PostModifiers []*stageBlock `hcl:"post_modifier,block"`
	Writers       []*stageBlock `hcl:"writer,block"`
}

type bundleBlock struct {
	Key           string        `hcl:"key,label"`
	Emitters      []string      `hcl:"emitters"`
	CustomObject  *stageBlock   `hcl:"custom_object,block"`
	PostModifiers []*stageBlock `hcl:"post_modifier,block"`
	Writers       []*stageBlock `hcl:"writer,block"`
}

// stageBlock is any block labelled with a registered type name. Its body is
// read attribute by attribute since the attribute set depends on the type.
type stageBlock struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}
