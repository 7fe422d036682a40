// Package model defines the domain types for the face-export CLI.
//
// The central entities are surface colors, named face groups, and the
// per-target error and result types produced by the export pipeline.
// All types here are plain values with no I/O; they are shared by the
// document, classify, export, and cli packages.
package model
