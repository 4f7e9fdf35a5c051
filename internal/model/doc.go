// Package model holds the format-agnostic representation of a property
// package: its components, phases, reactions, state bounds and property
// method configuration.
//
// A ParameterBlock is built once from a PackageDef (hand-written in tests,
// or translated from an HCL file by the hcl package) and is immutable for
// the life of the model. Everything downstream, from method resolution to
// the VLE estimators, only reads it, which is what makes concurrent
// evaluation against a shared model safe by construction.
package model
