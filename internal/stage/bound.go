// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package stage

// Bound is a stage placed in an emitter or bundle slot together with the
// configuration that governs it.
type Bound[T any] struct {
	// Type is the registered type name the stage was built from. It is only
	// used for diagnostics.
	Type string

	Stage T
	Mode  EmitMode

	// UseWhenBundled keeps the stage active when its emitter is processed as
	// a bundle member. Ignored for converters and writers.
	UseWhenBundled bool
}

// Bind wraps a stage with the defaults a configuration block gets when it
// sets nothing: always active, used when bundled.
func Bind[T any](typeName string, s T) Bound[T] {
	return Bound[T]{Type: typeName, Stage: s, Mode: Always, UseWhenBundled: true}
}

// FoldPre runs the pre-modifiers left to right, each receiving the previous
// result. When bundled is true, modifiers with UseWhenBundled unset are skipped.
func FoldPre(args PreArgs, mods []Bound[PreModifier], bundled bool) (PreArgs, error) {
	var err error
	for _, m := range mods {
		if bundled && !m.UseWhenBundled {
			continue
		}
		if args, err = m.Stage.ModifyPre(args); err != nil {
			return args, &Error{Type: m.Type, Err: err}
		}
	}
	return args, nil
}

// FoldPost is FoldPre for post-modifiers.
func FoldPost(args PostArgs, mods []Bound[PostModifier], bundled bool) (PostArgs, error) {
	var err error
	for _, m := range mods {
		if bundled && !m.UseWhenBundled {
			continue
		}
		if args, err = m.Stage.ModifyPost(args); err != nil {
			return args, &Error{Type: m.Type, Err: err}
		}
	}
	return args, nil
}

// Error reports which stage failed.
type Error struct {
	Type string
	Err  error
}

func (e *Error) Error() string {
	if e.Type == "" {
		return "stage failed: " + e.Err.Error()
	}
	return "stage '" + e.Type + "' failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
