// Package builderbench compares approaches for providing fluent setters and
// builders over one fixed demonstration data model: a Root aggregate with
// scalar, optional, list and map fields, and a nested Item entity.
//
// Each approach lives in its own package and defines its own copy of the
// data model, so the packages stay independent and directly comparable:
//
//   - blueprint/setter: hand-written in-place fluent setters. The reference
//     for what a setter generator should produce.
//   - blueprint/builder: hand-written staged builder with default-then-
//     overlay semantics. The reference for what a builder generator should
//     produce.
//   - lannbuilder: builders layered on github.com/lann/builder, the
//     reflection-backed immutable builder library.
//   - funcopt: functional options, the surface Go option generators emit.
//
// Feature comparison:
//
//	feature               blueprint  lannbuilder  funcopt
//	----------------------------------------------------
//	builder entry point   yes        yes          yes
//	optional fields       yes        yes          yes
//	defaults on build     yes        partial (1)  yes
//	list accumulation     yes        yes          yes
//	map accumulation      yes        partial (2)  yes
//	nested builders       yes        no           yes
//	chained calls         yes        yes          no
//	infallible build      yes        no (1)       yes
//
//	(1) lannbuilder treats unset non-optional fields as an error on Build,
//	    so defaulting must be spelled out by setting every required field.
//	(2) map entries are accumulated by copying and re-setting the whole
//	    field on each insert.
//
// The root package carries no code; the cross-approach equivalence test and
// benchmarks live alongside it.
package builderbench
