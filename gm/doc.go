// Package gm (stands for geometry math) provides the geometry primitives of
// the graph library.
//
// It includes a 2d vector type called Vec, a 2d matrix type Mat and a mutable
// affine transform named Affine. Functions that accept vectors take a VecLike,
// which is either a Vec or one of the loose forms Splat, Pair, Size or Fields.
//
// There is also a type named Rad to represent angle values in radian.
//
// None of the functions in this package fail. Degenerate input results in
// IEEE 754 values: normalizing a zero vector or dividing by a zero component
// yields NaN or ±Inf, and callers must check for degenerate geometry first.
package gm
